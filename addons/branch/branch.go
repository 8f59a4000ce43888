// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package branch partitions master data by company branch. Partners and
// products can be restricted to branches, users carry a working branch
// which pre-fills new records and tags point of sale configurations.
package branch

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "branch"

var log logging.Logger

func init() {
	log = logging.GetLogger("branch")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	branch := models.NewModel("Branch")
	branch.AddFields(map[string]models.FieldDefinition{
		"Name":    fields.Char{Required: true},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Street":  fields.Char{},
		"City":    fields.Char{},
		"Zip":     fields.Char{},
		"Phone":   fields.Char{},
	})
	branch.AddSQLConstraint("branch_name_company_uniq",
		"UNIQUE(name, company_id)",
		"A branch with the same name already exists in this company")

	partner := models.Registry.MustGet("Partner")
	partner.AddFields(map[string]models.FieldDefinition{
		"Branches": fields.Many2Many{RelationModel: branch},
	})

	productTemplate := models.Registry.MustGet("ProductTemplate")
	productTemplate.AddFields(map[string]models.FieldDefinition{
		"Branches": fields.Many2Many{RelationModel: branch},
	})

	user := models.Registry.MustGet("User")
	user.AddFields(map[string]models.FieldDefinition{
		"Branch":   fields.Many2One{RelationModel: branch, String: "Working Branch"},
		"Branches": fields.Many2Many{RelationModel: branch, String: "Allowed Branches"},
	})

	posConfig := models.Registry.MustGet("PosConfig")
	posConfig.AddFields(map[string]models.FieldDefinition{
		"Branch": fields.Many2One{RelationModel: branch},
	})

	partner.Methods().MustGet("DefaultGet").Extend(
		func(rc *models.RecordCollection) *models.ModelData {
			res := rc.Super().Call("DefaultGet").(*models.ModelData)
			if userBranch := currentUserBranch(rc); !userBranch.IsEmpty() {
				res.Set(res.Model.FieldName("Branches"), userBranch)
			}
			return res
		})

	productTemplate.Methods().MustGet("DefaultGet").Extend(
		func(rc *models.RecordCollection) *models.ModelData {
			res := rc.Super().Call("DefaultGet").(*models.ModelData)
			if userBranch := currentUserBranch(rc); !userBranch.IsEmpty() {
				res.Set(res.Model.FieldName("Branches"), userBranch)
			}
			return res
		})

	user.Methods().MustGet("SessionInfo").Extend(
		func(rc *models.RecordCollection) map[string]interface{} {
			res := rc.Super().Call("SessionInfo").(map[string]interface{})
			if userBranch := rc.Get(rc.Model().FieldName("Branch")).(models.RecordSet).Collection(); !userBranch.IsEmpty() {
				res["branch_id"] = userBranch.Ids()[0]
				res["branch_name"] = userBranch.Get(userBranch.Model().FieldName("Name")).(string)
			}
			return res
		})
}

// currentUserBranch returns the working branch of the environment's user.
func currentUserBranch(rc *models.RecordCollection) *models.RecordCollection {
	users := rc.Env().Pool("User")
	currentUser := users.Search(users.Model().Field(users.Model().FieldName("ID")).Equals(rc.Env().Uid()))
	if currentUser.IsEmpty() {
		return rc.Env().Pool("Branch")
	}
	return currentUser.Get(currentUser.Model().FieldName("Branch")).(models.RecordSet).Collection()
}
