// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package stockapproval adds an approval step on stock transfers together
// with a rejection wizard collecting the reviewer's comment.
package stockapproval

import (
	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "stockapproval"

var log logging.Logger

func init() {
	log = logging.GetLogger("stockapproval")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	picking := models.Registry.MustGet("StockPicking")

	picking.AddFields(map[string]models.FieldDefinition{
		"ApprovalState": fields.Selection{Selection: types.Selection{
			"pending":  "Waiting Approval",
			"approved": "Approved",
			"reject":   "Rejected"},
			Default: models.DefaultValue("pending"), ReadOnly: true},
		"RejectComment": fields.Char{String: "Reject Comment", ReadOnly: true},
	})

	picking.NewMethod("ActionApprove",
		func(rc *models.RecordCollection) {
			for _, picking := range rc.Records() {
				picking.Set(picking.Model().FieldName("ApprovalState"), "approved")
			}
		})

	picking.Methods().MustGet("ButtonValidate").Extend(
		func(rc *models.RecordCollection) {
			for _, picking := range rc.Records() {
				if picking.Get(picking.Model().FieldName("ApprovalState")).(string) == "reject" {
					log.Panic(rc.T("A rejected transfer cannot be processed."),
						"picking", picking.Get(picking.Model().FieldName("Name")))
				}
			}
			rc.Super().Call("ButtonValidate")
		})

	wizard := models.NewTransientModel("StockRejectWizard")

	wizard.AddFields(map[string]models.FieldDefinition{
		"Comment": fields.Text{String: "Reject Comment", Required: true},
	})

	wizard.NewMethod("ActionReject",
		func(rc *models.RecordCollection) *actions.Action {
			comment := rc.Get(rc.Model().FieldName("Comment")).(string)
			if comment == "" {
				log.Panic(rc.T("Please provide a rejection comment."))
			}
			ids := rc.Env().Context().GetIntegerSlice("active_ids")
			pickings := rc.Env().Pool("StockPicking").Call("Browse", ids).(models.RecordSet).Collection()
			for _, picking := range pickings.Records() {
				picking.Set(picking.Model().FieldName("RejectComment"), comment)
				picking.Set(picking.Model().FieldName("ApprovalState"), "reject")
			}
			return &actions.Action{
				Type: actions.ActionCloseWindow,
			}
		})
}
