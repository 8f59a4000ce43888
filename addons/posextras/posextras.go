// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package posextras adds front end conveniences to the point of sale:
// the customer on the printed receipt and selling products in several
// units of measure, each with its own barcode and price.
package posextras

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "posextras"

var log logging.Logger

func init() {
	log = logging.GetLogger("posextras")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	posConfig := models.Registry.MustGet("PosConfig")
	posConfig.AddFields(map[string]models.FieldDefinition{
		"PrintPartnerOnReceipt": fields.Boolean{String: "Customer on Receipt",
			Help: "Print the customer name on the receipt"},
	})

	uomBarcode := models.NewModel("ProductUomBarcode")

	uomBarcode.NewMethod("CheckBarcodeUnique",
		func(rc *models.RecordCollection) {
			for _, line := range rc.Records() {
				barcode := line.Get(line.Model().FieldName("Barcode")).(string)
				if barcode == "" {
					continue
				}
				template := line.Get(line.Model().FieldName("ProductTemplate")).(models.RecordSet).Collection()
				all := rc.Env().Pool("ProductUomBarcode")
				duplicates := all.Search(all.Model().Field(all.Model().FieldName("Barcode")).Equals(barcode).
					And().Field(all.Model().FieldName("ID")).NotEquals(line.Ids()[0]).
					And().Field(all.Model().FieldName("ProductTemplate")).NotEquals(template.Ids()[0]))
				templates := rc.Env().Pool("ProductTemplate")
				clashes := templates.Search(templates.Model().Field(templates.Model().FieldName("Barcode")).Equals(barcode).
					And().Field(templates.Model().FieldName("ID")).NotEquals(template.Ids()[0]))
				if !duplicates.IsEmpty() || !clashes.IsEmpty() {
					log.Panic(rc.T("A barcode can only be assigned to one product !"),
						"barcode", barcode)
				}
			}
		})

	uomBarcode.AddFields(map[string]models.FieldDefinition{
		"ProductTemplate": fields.Many2One{RelationModel: models.Registry.MustGet("ProductTemplate"),
			Required: true, OnDelete: models.Cascade},
		"Uom": fields.Many2One{RelationModel: models.Registry.MustGet("ProductUom"),
			Required: true, String: "Unit of Measure"},
		"Barcode": fields.Char{Required: true,
			Constraint: uomBarcode.Methods().MustGet("CheckBarcodeUnique")},
		"Price": fields.Float{String: "Unit Price"},
	})

	productTemplate := models.Registry.MustGet("ProductTemplate")
	productTemplate.AddFields(map[string]models.FieldDefinition{
		"UomBarcodes": fields.One2Many{RelationModel: uomBarcode,
			ReverseFK: "ProductTemplate", String: "Unit Barcodes"},
	})

	orderLine := models.Registry.MustGet("PosOrderLine")
	orderLine.AddFields(map[string]models.FieldDefinition{
		"Uom": fields.Many2One{RelationModel: models.Registry.MustGet("ProductUom"),
			String: "Unit of Measure"},
	})

	orderLine.NewMethod("ExportForUi",
		func(rc *models.RecordCollection) map[string]interface{} {
			rc.EnsureOne()
			res := map[string]interface{}{
				"id":             rc.Ids()[0],
				"qty":            rc.Get(rc.Model().FieldName("Qty")).(float64),
				"price_unit":     rc.Get(rc.Model().FieldName("PriceUnit")).(float64),
				"discount":       rc.Get(rc.Model().FieldName("Discount")).(float64),
				"price_subtotal": rc.Get(rc.Model().FieldName("PriceSubtotal")).(float64),
			}
			if product := rc.Get(rc.Model().FieldName("Product")).(models.RecordSet).Collection(); !product.IsEmpty() {
				res["product_id"] = product.Ids()[0]
			}
			if uom := rc.Get(rc.Model().FieldName("Uom")).(models.RecordSet).Collection(); !uom.IsEmpty() {
				res["uom_id"] = uom.Ids()[0]
				res["uom_name"] = uom.Get(uom.Model().FieldName("Name")).(string)
			}
			return res
		})
}
