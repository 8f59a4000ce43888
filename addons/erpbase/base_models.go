// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package erpbase

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/security"
)

func declareBaseModels() {
	company := models.Registry.MustGet("Company")
	partner := models.Registry.MustGet("Partner")
	user := models.Registry.MustGet("User")

	company.AddFields(map[string]models.FieldDefinition{
		"Name":    fields.Char{String: "Company Name", Required: true, Unique: true},
		"Street":  fields.Char{},
		"Street2": fields.Char{},
		"City":    fields.Char{},
		"Zip":     fields.Char{},
		"Country": fields.Char{},
		"Phone":   fields.Char{},
		"Email":   fields.Char{},
		"VAT":     fields.Char{String: "TIN", Help: "Tax Identification Number"},
		"Partners": fields.One2Many{RelationModel: models.Registry.MustGet("Partner"),
			ReverseFK: "Company"},
	})

	partner.NewMethod("ComputeTotalInvoiced",
		func(rc *models.RecordCollection) *models.ModelData {
			var total float64
			moves := rc.Env().Pool("AccountMove")
			invoices := moves.Search(moves.Model().Field(moves.Model().FieldName("Partner")).Equals(rc.Ids()[0]).
				And().Field(moves.Model().FieldName("State")).Equals("posted").
				And().Field(moves.Model().FieldName("MoveType")).In([]string{"out_invoice", "out_refund"}))
			for _, move := range invoices.Records() {
				amount := move.Get(move.Model().FieldName("AmountTotal")).(float64)
				if move.Get(move.Model().FieldName("MoveType")).(string) == "out_refund" {
					amount = -amount
				}
				total += amount
			}
			return models.NewModelDataFromRS(rc).Set(rc.Model().FieldName("TotalInvoiced"), total)
		})

	partner.AddFields(map[string]models.FieldDefinition{
		"Name":       fields.Char{Required: true, Index: true},
		"Email":      fields.Char{},
		"Phone":      fields.Char{},
		"Mobile":     fields.Char{},
		"Street":     fields.Char{},
		"Street2":    fields.Char{},
		"City":       fields.Char{},
		"Zip":        fields.Char{},
		"Country":    fields.Char{},
		"VAT":        fields.Char{String: "TIN", Help: "Tax Identification Number"},
		"IsCompany":  fields.Boolean{},
		"Customer":   fields.Boolean{Default: models.DefaultValue(true)},
		"Supplier":   fields.Boolean{},
		"Active":     fields.Boolean{Default: models.DefaultValue(true)},
		"Company":    fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"TotalInvoiced": fields.Float{String: "Total Invoiced",
			Compute: partner.Methods().MustGet("ComputeTotalInvoiced")},
	})

	user.NewMethod("HasGroup",
		func(rc *models.RecordCollection, groupID string) bool {
			group := security.Registry.GetGroup(groupID)
			if group == nil {
				return false
			}
			return security.Registry.HasMembership(rc.Ids()[0], group)
		})

	user.AddFields(map[string]models.FieldDefinition{
		"Name":    fields.Char{Required: true},
		"Login":   fields.Char{Required: true, Unique: true},
		"Email":   fields.Char{},
		"Active":  fields.Boolean{Default: models.DefaultValue(true)},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Partner": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
	})
}
