// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package erpbase

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types"
)

func declareProductModels() {
	category := models.Registry.MustGet("ProductCategory")
	uom := models.Registry.MustGet("ProductUom")
	template := models.Registry.MustGet("ProductTemplate")
	product := models.Registry.MustGet("ProductProduct")

	category.AddFields(map[string]models.FieldDefinition{
		"Name":   fields.Char{Required: true},
		"Parent": fields.Many2One{RelationModel: models.Registry.MustGet("ProductCategory")},
	})

	uom.AddFields(map[string]models.FieldDefinition{
		"Name":     fields.Char{Required: true},
		"Factor":   fields.Float{Default: models.DefaultValue(1.0), Help: "Ratio to the reference unit of measure"},
		"Rounding": fields.Float{Default: models.DefaultValue(0.01)},
	})

	template.AddFields(map[string]models.FieldDefinition{
		"Name":        fields.Char{Required: true, Index: true},
		"Description": fields.Text{},
		"Type": fields.Selection{Selection: types.Selection{
			"consu":   "Consumable",
			"service": "Service",
			"product": "Storable Product"},
			Default: models.DefaultValue("consu")},
		"Category":      fields.Many2One{RelationModel: models.Registry.MustGet("ProductCategory")},
		"Uom":           fields.Many2One{RelationModel: models.Registry.MustGet("ProductUom")},
		"ListPrice":     fields.Float{String: "Sales Price", Default: models.DefaultValue(1.0)},
		"StandardPrice": fields.Float{String: "Cost"},
		"Barcode":       fields.Char{},
		"DefaultCode":   fields.Char{String: "Internal Reference"},
		"Active":        fields.Boolean{Default: models.DefaultValue(true)},
		"SaleOk":        fields.Boolean{Default: models.DefaultValue(true)},
		"PurchaseOk":    fields.Boolean{Default: models.DefaultValue(true)},
		"Variants": fields.One2Many{RelationModel: models.Registry.MustGet("ProductProduct"),
			ReverseFK: "Template"},
	})

	product.AddFields(map[string]models.FieldDefinition{
		"Template": fields.Many2One{RelationModel: models.Registry.MustGet("ProductTemplate"),
			Required: true, OnDelete: models.Cascade},
		"Name":        fields.Char{Related: "Template.Name"},
		"Barcode":     fields.Char{},
		"DefaultCode": fields.Char{String: "Internal Reference"},
		"ListPrice":   fields.Float{Related: "Template.ListPrice"},
		"Active":      fields.Boolean{Default: models.DefaultValue(true)},
	})
}
