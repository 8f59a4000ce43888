// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package analytic makes analytic distribution mandatory per account.
// Accounts can demand an analytic account or tags, and journal entries on
// those accounts cannot be posted without them.
package analytic

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "analytic"

var log logging.Logger

func init() {
	log = logging.GetLogger("analytic")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	account := models.Registry.MustGet("AccountAccount")
	account.AddFields(map[string]models.FieldDefinition{
		"RequiredAnalyticAccount": fields.Boolean{String: "Analytic Account Required"},
		"RequiredAnalyticTag":     fields.Boolean{String: "Analytic Tags Required"},
	})

	line := models.Registry.MustGet("AccountMoveLine")
	line.AddFields(map[string]models.FieldDefinition{
		"RequiredAnalyticAccount": fields.Boolean{Related: "Account.RequiredAnalyticAccount"},
		"RequiredAnalyticTag":     fields.Boolean{Related: "Account.RequiredAnalyticTag"},
	})

	line.NewMethod("CheckAnalyticRequired",
		func(rc *models.RecordCollection) {
			for _, l := range rc.Records() {
				account := l.Get(l.Model().FieldName("Account")).(models.RecordSet).Collection()
				if account.Get(account.Model().FieldName("RequiredAnalyticAccount")).(bool) &&
					l.Get(l.Model().FieldName("AnalyticAccount")).(models.RecordSet).Collection().IsEmpty() {
					log.Panic(rc.T("Analytic Account is required on account %s",
						account.Get(account.Model().FieldName("Code"))), "line", l.Get(l.Model().FieldName("Name")))
				}
				if account.Get(account.Model().FieldName("RequiredAnalyticTag")).(bool) &&
					l.Get(l.Model().FieldName("AnalyticTags")).(models.RecordSet).Collection().IsEmpty() {
					log.Panic(rc.T("Analytic Tags are required on account %s",
						account.Get(account.Model().FieldName("Code"))), "line", l.Get(l.Model().FieldName("Name")))
				}
			}
		})

	move := models.Registry.MustGet("AccountMove")
	move.Methods().MustGet("ActionPost").Extend(
		func(rc *models.RecordCollection) {
			for _, m := range rc.Records() {
				m.Get(m.Model().FieldName("Lines")).(models.RecordSet).Collection().Call("CheckAnalyticRequired")
			}
			rc.Super().Call("ActionPost")
		})
}
