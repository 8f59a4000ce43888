// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package posextras

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

func TestUomBarcodes(t *testing.T) {
	Convey("Multi unit barcodes", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			unit := env.Pool("ProductUom").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductUom")).
					Set(models.Registry.MustGet("ProductUom").FieldName("Name"), "Unit")).(models.RecordSet).Collection()
			pack := env.Pool("ProductUom").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductUom")).
					Set(models.Registry.MustGet("ProductUom").FieldName("Name"), "Pack of 6").
					Set(models.Registry.MustGet("ProductUom").FieldName("Factor"), 6.0)).(models.RecordSet).Collection()
			soda := env.Pool("ProductTemplate").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductTemplate")).
					Set(models.Registry.MustGet("ProductTemplate").FieldName("Name"), "Soda Can").
					Set(models.Registry.MustGet("ProductTemplate").FieldName("Barcode"), "5000000001")).(models.RecordSet).Collection()
			water := env.Pool("ProductTemplate").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductTemplate")).
					Set(models.Registry.MustGet("ProductTemplate").FieldName("Name"), "Water Bottle")).(models.RecordSet).Collection()

			newBarcode := func(template, uom *models.RecordCollection, code string) func() {
				return func() {
					env.Pool("ProductUomBarcode").Call("Create",
						models.NewModelData(models.Registry.MustGet("ProductUomBarcode")).
							Set(models.Registry.MustGet("ProductUomBarcode").FieldName("ProductTemplate"), template).
							Set(models.Registry.MustGet("ProductUomBarcode").FieldName("Uom"), uom).
							Set(models.Registry.MustGet("ProductUomBarcode").FieldName("Barcode"), code).
							Set(models.Registry.MustGet("ProductUomBarcode").FieldName("Price"), 9.9))
				}
			}

			Convey("Each unit of a product can carry its own barcode", func() {
				So(newBarcode(soda, unit, "5000000010"), ShouldNotPanic)
				So(newBarcode(soda, pack, "5000000011"), ShouldNotPanic)
				So(soda.Get(soda.Model().FieldName("UomBarcodes")).(models.RecordSet).Collection().Len(), ShouldEqual, 2)
			})

			Convey("A barcode cannot point to two products", func() {
				So(newBarcode(soda, unit, "5000000020"), ShouldNotPanic)
				So(newBarcode(water, pack, "5000000020"), ShouldPanic)
			})

			Convey("A unit barcode cannot shadow a product barcode", func() {
				So(newBarcode(water, unit, "5000000001"), ShouldPanic)
			})
		}), ShouldBeNil)
	})
}

func TestOrderLineExport(t *testing.T) {
	Convey("Order line payload for the client", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			journal := env.Pool("AccountJournal").Call("Create",
				models.NewModelData(models.Registry.MustGet("AccountJournal")).
					Set(models.Registry.MustGet("AccountJournal").FieldName("Name"), "Shop Cash").
					Set(models.Registry.MustGet("AccountJournal").FieldName("Code"), "SHC").
					Set(models.Registry.MustGet("AccountJournal").FieldName("Type"), "cash")).(models.RecordSet).Collection()
			config := env.Pool("PosConfig").Call("Create",
				models.NewModelData(models.Registry.MustGet("PosConfig")).
					Set(models.Registry.MustGet("PosConfig").FieldName("Name"), "Main Shop").
					Set(models.Registry.MustGet("PosConfig").FieldName("Journal"), journal).
					Set(models.Registry.MustGet("PosConfig").FieldName("PrintPartnerOnReceipt"), true)).(models.RecordSet).Collection()
			So(config.Get(config.Model().FieldName("PrintPartnerOnReceipt")).(bool), ShouldBeTrue)
			session := env.Pool("PosSession").Call("Create",
				models.NewModelData(models.Registry.MustGet("PosSession")).
					Set(models.Registry.MustGet("PosSession").FieldName("Config"), config)).(models.RecordSet).Collection()
			order := env.Pool("PosOrder").Call("Create",
				models.NewModelData(models.Registry.MustGet("PosOrder")).
					Set(models.Registry.MustGet("PosOrder").FieldName("Session"), session)).(models.RecordSet).Collection()
			pack := env.Pool("ProductUom").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductUom")).
					Set(models.Registry.MustGet("ProductUom").FieldName("Name"), "Pack of 6").
					Set(models.Registry.MustGet("ProductUom").FieldName("Factor"), 6.0)).(models.RecordSet).Collection()
			template := env.Pool("ProductTemplate").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductTemplate")).
					Set(models.Registry.MustGet("ProductTemplate").FieldName("Name"), "Soda Can").
					Set(models.Registry.MustGet("ProductTemplate").FieldName("ListPrice"), 1.5)).(models.RecordSet).Collection()
			product := env.Pool("ProductProduct").Call("Create",
				models.NewModelData(models.Registry.MustGet("ProductProduct")).
					Set(models.Registry.MustGet("ProductProduct").FieldName("Template"), template)).(models.RecordSet).Collection()
			line := env.Pool("PosOrderLine").Call("Create",
				models.NewModelData(models.Registry.MustGet("PosOrderLine")).
					Set(models.Registry.MustGet("PosOrderLine").FieldName("Order"), order).
					Set(models.Registry.MustGet("PosOrderLine").FieldName("Product"), product).
					Set(models.Registry.MustGet("PosOrderLine").FieldName("Qty"), 2.0).
					Set(models.Registry.MustGet("PosOrderLine").FieldName("PriceUnit"), 8.4).
					Set(models.Registry.MustGet("PosOrderLine").FieldName("Uom"), pack)).(models.RecordSet).Collection()

			payload := line.Call("ExportForUi").(map[string]interface{})
			So(payload["qty"], ShouldEqual, 2.0)
			So(payload["uom_id"], ShouldEqual, pack.Ids()[0])
			So(payload["uom_name"], ShouldEqual, "Pack of 6")
			So(payload["price_subtotal"], ShouldAlmostEqual, 16.8)
		}), ShouldBeNil)
	})
}
