// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package erpbase

import (
	"fmt"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types"
	"github.com/hexya-erp/hexya/src/models/types/dates"
)

func declareStockModels() {
	picking := models.Registry.MustGet("StockPicking")

	picking.NewMethod("ButtonValidate",
		func(rc *models.RecordCollection) {
			for _, picking := range rc.Records() {
				state := picking.Get(picking.Model().FieldName("State")).(string)
				if state == "done" || state == "cancel" {
					log.Panic(rc.T("This transfer has already been processed."),
						"picking", picking.Get(picking.Model().FieldName("Name")))
				}
				picking.Set(picking.Model().FieldName("State"), "done")
				picking.Set(picking.Model().FieldName("DateDone"), dates.Now())
			}
		})

	picking.NewMethod("ActionCancel",
		func(rc *models.RecordCollection) {
			for _, picking := range rc.Records() {
				if picking.Get(picking.Model().FieldName("State")).(string) == "done" {
					log.Panic(rc.T("A processed transfer cannot be cancelled."),
						"picking", picking.Get(picking.Model().FieldName("Name")))
				}
				picking.Set(picking.Model().FieldName("State"), "cancel")
			}
		})

	picking.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Reference", Required: true, NoCopy: true,
			Default: func(env models.Environment) interface{} {
				return fmt.Sprintf("TRANS%05d", env.Pool("StockPicking").SearchAll().SearchCount()+1)
			}},
		"Partner": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
		"Origin":  fields.Char{String: "Source Document"},
		"PickingType": fields.Selection{Selection: types.Selection{
			"incoming": "Receipt",
			"outgoing": "Delivery",
			"internal": "Internal Transfer"},
			Default: models.DefaultValue("internal"), Required: true},
		"State": fields.Selection{Selection: types.Selection{
			"draft":     "Draft",
			"waiting":   "Waiting",
			"confirmed": "Waiting Availability",
			"assigned":  "Ready",
			"done":      "Done",
			"cancel":    "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"ScheduledDate": fields.DateTime{Default: func(env models.Environment) interface{} {
			return dates.Now()
		}},
		"DateDone":      fields.DateTime{String: "Date of Transfer", ReadOnly: true},
		"Company":       fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"SaleOrder":     fields.Many2One{RelationModel: models.Registry.MustGet("SaleOrder")},
		"PurchaseOrder": fields.Many2One{RelationModel: models.Registry.MustGet("PurchaseOrder")},
	})
}
