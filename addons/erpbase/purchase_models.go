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

func declarePurchaseModels() {
	order := models.Registry.MustGet("PurchaseOrder")
	orderLine := models.Registry.MustGet("PurchaseOrderLine")

	order.NewMethod("ComputeAmounts",
		func(rc *models.RecordCollection) *models.ModelData {
			var untaxed float64
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				untaxed += line.Get(line.Model().FieldName("PriceSubtotal")).(float64)
			}
			res := models.NewModelDataFromRS(rc)
			res.Set(res.Model.FieldName("AmountUntaxed"), untaxed)
			res.Set(res.Model.FieldName("AmountTotal"), untaxed)
			return res
		})

	order.NewMethod("ButtonConfirm",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				if order.Get(order.Model().FieldName("State")).(string) != "draft" && order.Get(order.Model().FieldName("State")).(string) != "sent" {
					log.Panic(rc.T("Only draft or sent requests can be confirmed."),
						"order", order.Get(order.Model().FieldName("Name")))
				}
				order.Set(order.Model().FieldName("State"), "purchase")
				pickingData := models.NewModelData(models.Registry.MustGet("StockPicking"))
				pickingData.Set(pickingData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
				pickingData.Set(pickingData.Model.FieldName("Origin"), order.Get(order.Model().FieldName("Name")))
				pickingData.Set(pickingData.Model.FieldName("PickingType"), "incoming")
				pickingData.Set(pickingData.Model.FieldName("PurchaseOrder"), order)
				rc.Env().Pool("StockPicking").Call("Create", pickingData)
			}
		})

	order.NewMethod("ButtonCancel",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				order.Set(order.Model().FieldName("State"), "cancel")
			}
		})

	order.NewMethod("ActionCreateInvoice",
		func(rc *models.RecordCollection) *models.RecordCollection {
			bills := rc.Env().Pool("AccountMove")
			for _, order := range rc.Records() {
				if order.Get(order.Model().FieldName("State")).(string) != "purchase" && order.Get(order.Model().FieldName("State")).(string) != "done" {
					log.Panic(rc.T("Only confirmed orders can be billed."), "order", order.Get(order.Model().FieldName("Name")))
				}
				billData := models.NewModelData(models.Registry.MustGet("AccountMove"))
				billData.Set(billData.Model.FieldName("MoveType"), "in_invoice")
				billData.Set(billData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
				billData.Set(billData.Model.FieldName("Ref"), order.Get(order.Model().FieldName("PartnerRef")))
				billData.Set(billData.Model.FieldName("Company"), order.Get(order.Model().FieldName("Company")))
				bill := rc.Env().Pool("AccountMove").Call("Create", billData).(models.RecordSet).Collection()
				for _, line := range order.Get(order.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
					lineData := models.NewModelData(models.Registry.MustGet("AccountMoveLine"))
					lineData.Set(lineData.Model.FieldName("Move"), bill)
					lineData.Set(lineData.Model.FieldName("Name"), line.Get(line.Model().FieldName("Name")))
					lineData.Set(lineData.Model.FieldName("Product"), line.Get(line.Model().FieldName("Product")))
					lineData.Set(lineData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
					lineData.Set(lineData.Model.FieldName("Quantity"), line.Get(line.Model().FieldName("ProductQty")))
					lineData.Set(lineData.Model.FieldName("PriceUnit"), line.Get(line.Model().FieldName("PriceUnit")))
					lineData.Set(lineData.Model.FieldName("Debit"), line.Get(line.Model().FieldName("PriceSubtotal")))
					rc.Env().Pool("AccountMoveLine").Call("Create", lineData)
				}
				order.Set(order.Model().FieldName("Invoices"), order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection().Union(bill))
				bills = bills.Union(bill)
			}
			return bills
		})

	order.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Order Reference", Required: true, NoCopy: true,
			Default: func(env models.Environment) interface{} {
				return fmt.Sprintf("PO%05d", env.Pool("PurchaseOrder").SearchAll().SearchCount()+1)
			}},
		"Partner":    fields.Many2One{RelationModel: models.Registry.MustGet("Partner"), Required: true},
		"PartnerRef": fields.Char{String: "Vendor Reference"},
		"DateOrder": fields.DateTime{String: "Order Date",
			Default: func(env models.Environment) interface{} {
				return dates.Now()
			}},
		"State": fields.Selection{Selection: types.Selection{
			"draft":    "RFQ",
			"sent":     "RFQ Sent",
			"purchase": "Purchase Order",
			"done":     "Locked",
			"cancel":   "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Lines": fields.One2Many{RelationModel: models.Registry.MustGet("PurchaseOrderLine"),
			ReverseFK: "Order", String: "Order Lines"},
		"Pickings": fields.One2Many{RelationModel: models.Registry.MustGet("StockPicking"),
			ReverseFK: "PurchaseOrder"},
		"Invoices": fields.Many2Many{RelationModel: models.Registry.MustGet("AccountMove")},
		"AmountUntaxed": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal"}, Stored: true},
		"AmountTotal": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal"}, Stored: true},
	})

	orderLine.NewMethod("ComputeAmount",
		func(rc *models.RecordCollection) *models.ModelData {
			subtotal := rc.Get(rc.Model().FieldName("ProductQty")).(float64) * rc.Get(rc.Model().FieldName("PriceUnit")).(float64)
			return models.NewModelDataFromRS(rc).Set(rc.Model().FieldName("PriceSubtotal"), subtotal)
		})

	orderLine.AddFields(map[string]models.FieldDefinition{
		"Order": fields.Many2One{RelationModel: models.Registry.MustGet("PurchaseOrder"),
			Required: true, OnDelete: models.Cascade, Index: true},
		"Name":        fields.Char{String: "Description"},
		"Product":     fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct")},
		"ProductQty":  fields.Float{String: "Quantity", Default: models.DefaultValue(1.0)},
		"Uom":         fields.Many2One{RelationModel: models.Registry.MustGet("ProductUom")},
		"PriceUnit":   fields.Float{String: "Unit Price"},
		"QtyReceived": fields.Float{},
		"PriceSubtotal": fields.Float{Compute: orderLine.Methods().MustGet("ComputeAmount"),
			Depends: []string{"ProductQty", "PriceUnit"}, Stored: true},
	})
}
