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

func declarePosModels() {
	config := models.Registry.MustGet("PosConfig")
	session := models.Registry.MustGet("PosSession")
	order := models.Registry.MustGet("PosOrder")
	orderLine := models.Registry.MustGet("PosOrderLine")
	paymentMethod := models.Registry.MustGet("PosPaymentMethod")
	payment := models.Registry.MustGet("PosPayment")

	config.AddFields(map[string]models.FieldDefinition{
		"Name":    fields.Char{String: "Point of Sale", Required: true},
		"Journal": fields.Many2One{RelationModel: models.Registry.MustGet("AccountJournal")},
		"InvoiceJournal": fields.Many2One{
			RelationModel: models.Registry.MustGet("AccountJournal")},
		"PaymentMethods": fields.Many2Many{
			RelationModel: models.Registry.MustGet("PosPaymentMethod")},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Active":  fields.Boolean{Default: models.DefaultValue(true)},
	})

	session.NewMethod("ComputeTotalPayments",
		func(rc *models.RecordCollection) *models.ModelData {
			var total float64
			for _, payment := range rc.Get(rc.Model().FieldName("Payments")).(models.RecordSet).Collection().Records() {
				total += payment.Get(payment.Model().FieldName("Amount")).(float64)
			}
			return models.NewModelDataFromRS(rc).Set(rc.Model().FieldName("TotalPaymentsAmount"), total)
		})

	session.NewMethod("ActionPosSessionOpen",
		func(rc *models.RecordCollection) {
			for _, session := range rc.Records() {
				if session.Get(session.Model().FieldName("State")).(string) != "opening_control" {
					continue
				}
				session.Set(session.Model().FieldName("State"), "opened")
				session.Set(session.Model().FieldName("StartAt"), dates.Now())
			}
		})

	session.NewMethod("ActionPosSessionClose",
		func(rc *models.RecordCollection) {
			for _, session := range rc.Records() {
				session.Set(session.Model().FieldName("State"), "closed")
				session.Set(session.Model().FieldName("StopAt"), dates.Now())
			}
		})

	session.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Session ID", Required: true, NoCopy: true,
			Default: func(env models.Environment) interface{} {
				return fmt.Sprintf("POS/%05d", env.Pool("PosSession").SearchAll().SearchCount()+1)
			}},
		"Config": fields.Many2One{RelationModel: models.Registry.MustGet("PosConfig"), Required: true},
		"User":   fields.Many2One{RelationModel: models.Registry.MustGet("User"), String: "Opened By"},
		"State": fields.Selection{Selection: types.Selection{
			"opening_control": "Opening Control",
			"opened":          "In Progress",
			"closing_control": "Closing Control",
			"closed":          "Closed & Posted"},
			Default: models.DefaultValue("opening_control"), ReadOnly: true, NoCopy: true},
		"StartAt":        fields.DateTime{String: "Opening Date", ReadOnly: true},
		"StopAt":         fields.DateTime{String: "Closing Date", ReadOnly: true},
		"OpeningBalance": fields.Float{},
		"ClosingBalance": fields.Float{},
		"Orders": fields.One2Many{RelationModel: models.Registry.MustGet("PosOrder"),
			ReverseFK: "Session"},
		"Payments": fields.One2Many{RelationModel: models.Registry.MustGet("PosPayment"),
			ReverseFK: "Session"},
		"TotalPaymentsAmount": fields.Float{
			Compute: session.Methods().MustGet("ComputeTotalPayments"),
			Depends: []string{"Payments", "Payments.Amount"}},
	})

	order.NewMethod("ComputeAmounts",
		func(rc *models.RecordCollection) *models.ModelData {
			var total, paid float64
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				total += line.Get(line.Model().FieldName("PriceSubtotal")).(float64)
			}
			for _, payment := range rc.Get(rc.Model().FieldName("Payments")).(models.RecordSet).Collection().Records() {
				paid += payment.Get(payment.Model().FieldName("Amount")).(float64)
			}
			res := models.NewModelDataFromRS(rc)
			res.Set(res.Model.FieldName("AmountTotal"), total)
			res.Set(res.Model.FieldName("AmountPaid"), paid)
			return res
		})

	order.NewMethod("ActionPosOrderPaid",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				if order.Get(order.Model().FieldName("AmountPaid")).(float64) < order.Get(order.Model().FieldName("AmountTotal")).(float64) {
					log.Panic(rc.T("Order %s is not fully paid.", order.Get(order.Model().FieldName("Name")).(string)))
				}
				order.Set(order.Model().FieldName("State"), "paid")
			}
		})

	order.NewMethod("ActionPosOrderInvoice",
		func(rc *models.RecordCollection) *models.RecordCollection {
			invoices := rc.Env().Pool("AccountMove")
			for _, order := range rc.Records() {
				if !order.Get(order.Model().FieldName("AccountMove")).(models.RecordSet).Collection().IsEmpty() {
					continue
				}
				partner := order.Get(order.Model().FieldName("Partner")).(models.RecordSet).Collection()
				if partner.IsEmpty() {
					log.Panic(rc.T("Please provide a partner for the sale."))
				}
				invData := models.NewModelData(models.Registry.MustGet("AccountMove"))
				invData.Set(invData.Model.FieldName("MoveType"), "out_invoice")
				invData.Set(invData.Model.FieldName("Partner"), partner)
				invData.Set(invData.Model.FieldName("Ref"), order.Get(order.Model().FieldName("Name")))
				invData.Set(invData.Model.FieldName("Journal"), order.Get(order.Model().FieldName("Session")).(models.RecordSet).Collection().
					Get(models.Registry.MustGet("PosSession").FieldName("Config")).(models.RecordSet).Collection().
					Get(models.Registry.MustGet("PosConfig").FieldName("InvoiceJournal")))
				invoice := rc.Env().Pool("AccountMove").Call("Create", invData).(models.RecordSet).Collection()
				for _, line := range order.Get(order.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
					lineData := models.NewModelData(models.Registry.MustGet("AccountMoveLine"))
					lineData.Set(lineData.Model.FieldName("Move"), invoice)
					lineData.Set(lineData.Model.FieldName("Name"), line.Get(line.Model().FieldName("Name")))
					lineData.Set(lineData.Model.FieldName("Product"), line.Get(line.Model().FieldName("Product")))
					lineData.Set(lineData.Model.FieldName("Quantity"), line.Get(line.Model().FieldName("Qty")))
					lineData.Set(lineData.Model.FieldName("PriceUnit"), line.Get(line.Model().FieldName("PriceUnit")))
					lineData.Set(lineData.Model.FieldName("Credit"), line.Get(line.Model().FieldName("PriceSubtotal")))
					rc.Env().Pool("AccountMoveLine").Call("Create", lineData)
				}
				invoice.Call("ActionPost")
				order.Set(order.Model().FieldName("AccountMove"), invoice)
				order.Set(order.Model().FieldName("State"), "invoiced")
				invoices = invoices.Union(invoice)
			}
			return invoices
		})

	order.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Order Ref", Required: true, NoCopy: true,
			Default: func(env models.Environment) interface{} {
				return fmt.Sprintf("Order %05d", env.Pool("PosOrder").SearchAll().SearchCount()+1)
			}},
		"Session": fields.Many2One{RelationModel: models.Registry.MustGet("PosSession"), Required: true},
		"Partner": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
		"DateOrder": fields.DateTime{Default: func(env models.Environment) interface{} {
			return dates.Now()
		}},
		"State": fields.Selection{Selection: types.Selection{
			"draft":    "New",
			"paid":     "Paid",
			"done":     "Posted",
			"invoiced": "Invoiced",
			"cancel":   "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"Lines": fields.One2Many{RelationModel: models.Registry.MustGet("PosOrderLine"),
			ReverseFK: "Order"},
		"Payments": fields.One2Many{RelationModel: models.Registry.MustGet("PosPayment"),
			ReverseFK: "Order"},
		"AccountMove": fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove"),
			String: "Invoice", ReadOnly: true},
		"AmountTotal": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal", "Payments", "Payments.Amount"}, Stored: true},
		"AmountPaid": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.PriceSubtotal", "Payments", "Payments.Amount"}, Stored: true},
	})

	orderLine.NewMethod("ComputeAmount",
		func(rc *models.RecordCollection) *models.ModelData {
			subtotal := rc.Get(rc.Model().FieldName("Qty")).(float64) * rc.Get(rc.Model().FieldName("PriceUnit")).(float64) *
				(1 - rc.Get(rc.Model().FieldName("Discount")).(float64)/100)
			return models.NewModelDataFromRS(rc).Set(rc.Model().FieldName("PriceSubtotal"), subtotal)
		})

	orderLine.AddFields(map[string]models.FieldDefinition{
		"Order": fields.Many2One{RelationModel: models.Registry.MustGet("PosOrder"),
			Required: true, OnDelete: models.Cascade},
		"Name":      fields.Char{String: "Line Ref"},
		"Product":   fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct"), Required: true},
		"Qty":       fields.Float{Default: models.DefaultValue(1.0)},
		"PriceUnit": fields.Float{},
		"Discount":  fields.Float{String: "Discount (%)"},
		"PriceSubtotal": fields.Float{Compute: orderLine.Methods().MustGet("ComputeAmount"),
			Depends: []string{"Qty", "PriceUnit", "Discount"}, Stored: true},
	})

	paymentMethod.AddFields(map[string]models.FieldDefinition{
		"Name":      fields.Char{Required: true},
		"Journal":   fields.Many2One{RelationModel: models.Registry.MustGet("AccountJournal")},
		"IsCashCount": fields.Boolean{String: "Cash"},
		"Company":   fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
	})

	payment.AddFields(map[string]models.FieldDefinition{
		"Order":   fields.Many2One{RelationModel: models.Registry.MustGet("PosOrder")},
		"Session": fields.Many2One{RelationModel: models.Registry.MustGet("PosSession")},
		"Method": fields.Many2One{RelationModel: models.Registry.MustGet("PosPaymentMethod"),
			Required: true},
		"Amount": fields.Float{},
		"PaymentDate": fields.DateTime{Default: func(env models.Environment) interface{} {
			return dates.Now()
		}},
	})
}
