// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package reportpreview adds per user report preferences and exposes them
// to the web client through the session payload.
package reportpreview

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	"github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "reportpreview"

var log logging.Logger

func init() {
	log = logging.GetLogger("reportpreview")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	user := models.Registry.MustGet("User")
	user.AddFields(map[string]models.FieldDefinition{
		"ReportPreview": fields.Boolean{String: "Preview Reports",
			Help: "Open reports in a preview tab instead of downloading them"},
		"ReportAutomaticPrinting": fields.Boolean{String: "Automatic Printing",
			Help: "Send reports straight to the printer"},
	})

	user.Methods().MustGet("SessionInfo").Extend(
		func(rc *models.RecordCollection) map[string]interface{} {
			res := rc.Super().Call("SessionInfo").(map[string]interface{})
			if security.Registry.HasMembership(rc.Ids()[0], erpbase.GroupUser) {
				res["report_preview"] = rc.Get(rc.Model().FieldName("ReportPreview")).(bool)
				res["report_automatic_printing"] = rc.Get(rc.Model().FieldName("ReportAutomaticPrinting")).(bool)
			}
			return res
		})
}
