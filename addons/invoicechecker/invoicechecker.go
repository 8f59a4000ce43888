// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package invoicechecker protects the identity of billed partners: once a
// partner has posted invoices, only members of a dedicated group may change
// its name or tax identification number.
package invoicechecker

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	"github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "invoicechecker"

var log logging.Logger

// GroupEditBilledPartner allows changing the name and TIN of partners that
// already have posted invoices.
var GroupEditBilledPartner *security.Group

func init() {
	log = logging.GetLogger("invoicechecker")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	GroupEditBilledPartner = security.Registry.NewGroup(
		"invoicechecker_group_edit_billed_partner", "Edit Billed Partners",
		erpbase.GroupUser)

	partner := models.Registry.MustGet("Partner")

	partner.Methods().MustGet("Write").Extend(
		func(rc *models.RecordCollection, data models.RecordData) bool {
			vals := data.Underlying()
			if vals.Has(vals.Model.FieldName("Name")) || vals.Has(vals.Model.FieldName("VAT")) {
				uid := rc.Env().Uid()
				if uid != security.SuperUserID &&
					!security.Registry.HasMembership(uid, GroupEditBilledPartner) {
					for _, partner := range rc.Records() {
						if partner.Get(partner.Model().FieldName("TotalInvoiced")).(float64) > 0 {
							log.Panic(rc.T("You can not update Partner have invoices posted."),
								"partner", partner.Get(partner.Model().FieldName("Name")), "uid", uid)
						}
					}
				}
			}
			return rc.Super().Call("Write", data).(bool)
		})
}
