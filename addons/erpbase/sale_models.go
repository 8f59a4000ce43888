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

func declareSaleModels() {
	order := models.Registry.MustGet("SaleOrder")
	orderLine := models.Registry.MustGet("SaleOrderLine")

	order.NewMethod("ComputeAmounts",
		func(rc *models.RecordCollection) *models.ModelData {
			var untaxed, tax float64
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				untaxed += line.Get(line.Model().FieldName("PriceSubtotal")).(float64)
				tax += line.Get(line.Model().FieldName("PriceTax")).(float64)
			}
			res := models.NewModelDataFromRS(rc)
			res.Set(res.Model.FieldName("AmountUntaxed"), untaxed)
			res.Set(res.Model.FieldName("AmountTax"), tax)
			res.Set(res.Model.FieldName("AmountTotal"), untaxed+tax)
			return res
		})

	order.NewMethod("ActionConfirm",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				if order.Get(order.Model().FieldName("State")).(string) != "draft" && order.Get(order.Model().FieldName("State")).(string) != "sent" {
					log.Panic(rc.T("Only draft or sent quotations can be confirmed."),
						"order", order.Get(order.Model().FieldName("Name")))
				}
				order.Set(order.Model().FieldName("State"), "sale")
				order.Set(order.Model().FieldName("ConfirmationDate"), dates.Now())
				pickingData := models.NewModelData(models.Registry.MustGet("StockPicking"))
				pickingData.Set(pickingData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
				pickingData.Set(pickingData.Model.FieldName("Origin"), order.Get(order.Model().FieldName("Name")))
				pickingData.Set(pickingData.Model.FieldName("PickingType"), "outgoing")
				pickingData.Set(pickingData.Model.FieldName("SaleOrder"), order)
				rc.Env().Pool("StockPicking").Call("Create", pickingData)
			}
		})

	order.NewMethod("ActionCancel",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				order.Set(order.Model().FieldName("State"), "cancel")
			}
		})

	order.NewMethod("CreateInvoices",
		func(rc *models.RecordCollection) *models.RecordCollection {
			invoices := rc.Env().Pool("AccountMove")
			for _, order := range rc.Records() {
				if order.Get(order.Model().FieldName("State")).(string) != "sale" && order.Get(order.Model().FieldName("State")).(string) != "done" {
					log.Panic(rc.T("Only confirmed orders can be invoiced."), "order", order.Get(order.Model().FieldName("Name")))
				}
				invData := models.NewModelData(models.Registry.MustGet("AccountMove"))
				invData.Set(invData.Model.FieldName("MoveType"), "out_invoice")
				invData.Set(invData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
				invData.Set(invData.Model.FieldName("Ref"), order.Get(order.Model().FieldName("ClientOrderRef")))
				invData.Set(invData.Model.FieldName("Company"), order.Get(order.Model().FieldName("Company")))
				invoice := rc.Env().Pool("AccountMove").Call("Create", invData).(models.RecordSet).Collection()
				for _, line := range order.Get(order.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
					lineData := models.NewModelData(models.Registry.MustGet("AccountMoveLine"))
					lineData.Set(lineData.Model.FieldName("Move"), invoice)
					lineData.Set(lineData.Model.FieldName("Name"), line.Get(line.Model().FieldName("Name")))
					lineData.Set(lineData.Model.FieldName("Product"), line.Get(line.Model().FieldName("Product")))
					lineData.Set(lineData.Model.FieldName("Partner"), order.Get(order.Model().FieldName("Partner")))
					lineData.Set(lineData.Model.FieldName("Quantity"), line.Get(line.Model().FieldName("ProductUomQty")))
					lineData.Set(lineData.Model.FieldName("PriceUnit"), line.Get(line.Model().FieldName("PriceUnit")))
					lineData.Set(lineData.Model.FieldName("Credit"), line.Get(line.Model().FieldName("PriceSubtotal")))
					rc.Env().Pool("AccountMoveLine").Call("Create", lineData)
					line.Set(line.Model().FieldName("QtyInvoiced"), line.Get(line.Model().FieldName("ProductUomQty")))
				}
				order.Set(order.Model().FieldName("Invoices"), order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection().Union(invoice))
				invoices = invoices.Union(invoice)
			}
			return invoices
		})

	order.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Order Reference", Required: true, NoCopy: true,
			Default: func(env models.Environment) interface{} {
				return fmt.Sprintf("SO%05d", env.Pool("SaleOrder").SearchAll().SearchCount()+1)
			}},
		"Partner":        fields.Many2One{RelationModel: models.Registry.MustGet("Partner"), Required: true},
		"ClientOrderRef": fields.Char{String: "Customer Reference", NoCopy: true},
		"DateOrder": fields.DateTime{Default: func(env models.Environment) interface{} {
			return dates.Now()
		}},
		"ConfirmationDate": fields.DateTime{ReadOnly: true},
		"State": fields.Selection{Selection: types.Selection{
			"draft":  "Quotation",
			"sent":   "Quotation Sent",
			"sale":   "Sales Order",
			"done":   "Locked",
			"cancel": "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Lines": fields.One2Many{RelationModel: models.Registry.MustGet("SaleOrderLine"),
			ReverseFK: "Order", String: "Order Lines"},
		"Invoices": fields.Many2Many{RelationModel: models.Registry.MustGet("AccountMove")},
		"Pickings": fields.One2Many{RelationModel: models.Registry.MustGet("StockPicking"),
			ReverseFK: "SaleOrder"},
		"AmountUntaxed": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal", "Lines.PriceTax"}, Stored: true},
		"AmountTax": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal", "Lines.PriceTax"}, Stored: true},
		"AmountTotal": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal", "Lines.PriceTax"}, Stored: true},
	})

	orderLine.NewMethod("ComputeAmount",
		func(rc *models.RecordCollection) *models.ModelData {
			qty := rc.Get(rc.Model().FieldName("ProductUomQty")).(float64)
			price := rc.Get(rc.Model().FieldName("PriceUnit")).(float64)
			discount := rc.Get(rc.Model().FieldName("Discount")).(float64)
			subtotal := qty * price * (1 - discount/100)
			var taxAmount float64
			if tax := rc.Get(rc.Model().FieldName("Tax")).(models.RecordSet).Collection(); !tax.IsEmpty() {
				switch tax.Get(tax.Model().FieldName("AmountType")).(string) {
				case "fixed":
					taxAmount = qty * tax.Get(tax.Model().FieldName("Amount")).(float64)
				default:
					taxAmount = subtotal * tax.Get(tax.Model().FieldName("Amount")).(float64) / 100
				}
			}
			res := models.NewModelDataFromRS(rc)
			res.Set(res.Model.FieldName("PriceSubtotal"), subtotal)
			res.Set(res.Model.FieldName("PriceTax"), taxAmount)
			res.Set(res.Model.FieldName("PriceTotal"), subtotal+taxAmount)
			return res
		})

	orderLine.AddFields(map[string]models.FieldDefinition{
		"Order": fields.Many2One{RelationModel: models.Registry.MustGet("SaleOrder"),
			Required: true, OnDelete: models.Cascade, Index: true},
		"Name":          fields.Char{String: "Description"},
		"Product":       fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct")},
		"ProductUomQty": fields.Float{String: "Quantity", Default: models.DefaultValue(1.0)},
		"Uom":           fields.Many2One{RelationModel: models.Registry.MustGet("ProductUom")},
		"PriceUnit":     fields.Float{String: "Unit Price"},
		"Discount":      fields.Float{String: "Discount (%)"},
		"Tax":           fields.Many2One{RelationModel: models.Registry.MustGet("AccountTax")},
		"QtyDelivered":  fields.Float{},
		"QtyInvoiced":   fields.Float{ReadOnly: true},
		"PriceSubtotal": fields.Float{Compute: orderLine.Methods().MustGet("ComputeAmount"),
			Depends: []string{"ProductUomQty", "PriceUnit", "Discount", "Tax"}, Stored: true},
		"PriceTax": fields.Float{Compute: orderLine.Methods().MustGet("ComputeAmount"),
			Depends: []string{"ProductUomQty", "PriceUnit", "Discount", "Tax"}, Stored: true},
		"PriceTotal": fields.Float{Compute: orderLine.Methods().MustGet("ComputeAmount"),
			Depends: []string{"ProductUomQty", "PriceUnit", "Discount", "Tax"}, Stored: true},
	})
}
