// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package orderflow automates order follow up documents. Per company
// flags have confirmed orders validate their transfers and create, and
// optionally post, the matching invoices in one step.
package orderflow

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "orderflow"

var log logging.Logger

func init() {
	log = logging.GetLogger("orderflow")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	company := models.Registry.MustGet("Company")
	company.AddFields(map[string]models.FieldDefinition{
		"AutoReceive": fields.Boolean{String: "Auto Validate Receipts",
			Help: "Validate incoming transfers when the purchase order is confirmed"},
		"AutoCreateBill": fields.Boolean{String: "Auto Create Bills",
			Help: "Create the vendor bill when the purchase order is confirmed"},
		"AutoValidateBill": fields.Boolean{String: "Auto Validate Bills",
			Help: "Post the vendor bill created on confirmation"},
		"AutoDeliver": fields.Boolean{String: "Auto Validate Deliveries",
			Help: "Validate outgoing transfers when the sales order is confirmed"},
		"AutoCreateInvoice": fields.Boolean{String: "Auto Create Invoices",
			Help: "Invoice the sales order on confirmation"},
		"AutoValidateInvoice": fields.Boolean{String: "Auto Validate Invoices",
			Help: "Post the customer invoice created on confirmation"},
	})

	purchaseOrder := models.Registry.MustGet("PurchaseOrder")
	purchaseOrder.Methods().MustGet("ButtonConfirm").Extend(
		func(rc *models.RecordCollection) {
			rc.Super().Call("ButtonConfirm")
			for _, order := range rc.Records() {
				company := order.Get(order.Model().FieldName("Company")).(models.RecordSet).Collection()
				if company.IsEmpty() {
					continue
				}
				if company.Get(company.Model().FieldName("AutoReceive")).(bool) {
					for _, picking := range order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection().Records() {
						if picking.Get(picking.Model().FieldName("State")).(string) != "done" {
							picking.Call("ButtonValidate")
						}
					}
				}
				if company.Get(company.Model().FieldName("AutoCreateBill")).(bool) {
					bills := order.Call("ActionCreateInvoice").(models.RecordSet).Collection()
					if company.Get(company.Model().FieldName("AutoValidateBill")).(bool) {
						bills.Call("ActionPost")
					}
				}
			}
		})

	saleOrder := models.Registry.MustGet("SaleOrder")
	saleOrder.Methods().MustGet("ActionConfirm").Extend(
		func(rc *models.RecordCollection) {
			rc.Super().Call("ActionConfirm")
			for _, order := range rc.Records() {
				company := order.Get(order.Model().FieldName("Company")).(models.RecordSet).Collection()
				if company.IsEmpty() {
					continue
				}
				if company.Get(company.Model().FieldName("AutoDeliver")).(bool) {
					for _, picking := range order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection().Records() {
						if picking.Get(picking.Model().FieldName("State")).(string) != "done" {
							picking.Call("ButtonValidate")
						}
					}
				}
				if company.Get(company.Model().FieldName("AutoCreateInvoice")).(bool) {
					invoices := order.Call("CreateInvoices").(models.RecordSet).Collection()
					if company.Get(company.Model().FieldName("AutoValidateInvoice")).(bool) {
						invoices.Call("ActionPost")
					}
				}
			}
		})
}
