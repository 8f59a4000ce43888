// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package orderflow

import (
	"testing"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/tests"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	tests.RunTests(m, MODULE_NAME, nil)
}

func createCompany(env models.Environment, flags map[string]interface{}) *models.RecordCollection {
	data := models.NewModelData(models.Registry.MustGet("Company")).
		Set(models.Registry.MustGet("Company").FieldName("Name"), "Automated Co")
	for k, v := range flags {
		data.Set(data.Model.FieldName(k), v)
	}
	return env.Pool("Company").Call("Create", data).(models.RecordSet).Collection()
}

func createSaleOrder(env models.Environment, company *models.RecordCollection) *models.RecordCollection {
	partner := env.Pool("Partner").Call("Create",
		models.NewModelData(models.Registry.MustGet("Partner")).
			Set(models.Registry.MustGet("Partner").FieldName("Name"), "Retail Customer")).(models.RecordSet).Collection()
	order := env.Pool("SaleOrder").Call("Create",
		models.NewModelData(models.Registry.MustGet("SaleOrder")).
			Set(models.Registry.MustGet("SaleOrder").FieldName("Partner"), partner).
			Set(models.Registry.MustGet("SaleOrder").FieldName("Company"), company)).(models.RecordSet).Collection()
	env.Pool("SaleOrderLine").Call("Create",
		models.NewModelData(models.Registry.MustGet("SaleOrderLine")).
			Set(models.Registry.MustGet("SaleOrderLine").FieldName("Order"), order).
			Set(models.Registry.MustGet("SaleOrderLine").FieldName("Name"), "Consulting").
			Set(models.Registry.MustGet("SaleOrderLine").FieldName("ProductUomQty"), 2.0).
			Set(models.Registry.MustGet("SaleOrderLine").FieldName("PriceUnit"), 150.0))
	return order
}

func createPurchaseOrder(env models.Environment, company *models.RecordCollection) *models.RecordCollection {
	vendor := env.Pool("Partner").Call("Create",
		models.NewModelData(models.Registry.MustGet("Partner")).
			Set(models.Registry.MustGet("Partner").FieldName("Name"), "Hardware Vendor")).(models.RecordSet).Collection()
	order := env.Pool("PurchaseOrder").Call("Create",
		models.NewModelData(models.Registry.MustGet("PurchaseOrder")).
			Set(models.Registry.MustGet("PurchaseOrder").FieldName("Partner"), vendor).
			Set(models.Registry.MustGet("PurchaseOrder").FieldName("Company"), company)).(models.RecordSet).Collection()
	env.Pool("PurchaseOrderLine").Call("Create",
		models.NewModelData(models.Registry.MustGet("PurchaseOrderLine")).
			Set(models.Registry.MustGet("PurchaseOrderLine").FieldName("Order"), order).
			Set(models.Registry.MustGet("PurchaseOrderLine").FieldName("Name"), "Screws").
			Set(models.Registry.MustGet("PurchaseOrderLine").FieldName("ProductQty"), 100.0).
			Set(models.Registry.MustGet("PurchaseOrderLine").FieldName("PriceUnit"), 0.2))
	return order
}

func TestPurchaseAutomation(t *testing.T) {
	Convey("Purchase order automation", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			Convey("All flags on: receipt done, bill created and posted", func() {
				company := createCompany(env, map[string]interface{}{
					"AutoReceive": true, "AutoCreateBill": true, "AutoValidateBill": true,
				})
				order := createPurchaseOrder(env, company)
				order.Call("ButtonConfirm")
				picking := order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection()
				So(picking.Get(picking.Model().FieldName("State")).(string), ShouldEqual, "done")
				bills := order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection()
				So(bills.Len(), ShouldEqual, 1)
				So(bills.Get(bills.Model().FieldName("State")).(string), ShouldEqual, "posted")
				So(bills.Get(bills.Model().FieldName("AmountTotal")).(float64), ShouldAlmostEqual, 20.0)
			})

			Convey("Bill creation without validation leaves a draft bill", func() {
				company := createCompany(env, map[string]interface{}{
					"AutoCreateBill": true,
				})
				order := createPurchaseOrder(env, company)
				order.Call("ButtonConfirm")
				picking := order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection()
				So(picking.Get(picking.Model().FieldName("State")).(string), ShouldNotEqual, "done")
				bills := order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection()
				So(bills.Get(bills.Model().FieldName("State")).(string), ShouldEqual, "draft")
			})

			Convey("No flags means plain confirmation", func() {
				company := createCompany(env, nil)
				order := createPurchaseOrder(env, company)
				order.Call("ButtonConfirm")
				So(order.Get(order.Model().FieldName("State")).(string), ShouldEqual, "purchase")
				So(order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection().IsEmpty(), ShouldBeTrue)
			})
		}), ShouldBeNil)
	})
}

func TestSaleAutomation(t *testing.T) {
	Convey("Sales order automation", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			Convey("Auto deliver and invoice on confirmation", func() {
				company := createCompany(env, map[string]interface{}{
					"AutoDeliver": true, "AutoCreateInvoice": true, "AutoValidateInvoice": true,
				})
				order := createSaleOrder(env, company)
				order.Call("ActionConfirm")
				So(order.Get(order.Model().FieldName("State")).(string), ShouldEqual, "sale")
				picking := order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection()
				So(picking.Get(picking.Model().FieldName("State")).(string), ShouldEqual, "done")
				invoices := order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection()
				So(invoices.Len(), ShouldEqual, 1)
				So(invoices.Get(invoices.Model().FieldName("State")).(string), ShouldEqual, "posted")
			})

			Convey("Orders of companies without flags stay manual", func() {
				company := createCompany(env, nil)
				order := createSaleOrder(env, company)
				order.Call("ActionConfirm")
				picking := order.Get(order.Model().FieldName("Pickings")).(models.RecordSet).Collection()
				So(picking.Get(picking.Model().FieldName("State")).(string), ShouldNotEqual, "done")
				So(order.Get(order.Model().FieldName("Invoices")).(models.RecordSet).Collection().IsEmpty(), ShouldBeTrue)
			})
		}), ShouldBeNil)
	})
}
