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

func declareAccountModels() {
	account := models.Registry.MustGet("AccountAccount")
	journal := models.Registry.MustGet("AccountJournal")
	tax := models.Registry.MustGet("AccountTax")
	analyticAccount := models.Registry.MustGet("AccountAnalyticAccount")
	analyticTag := models.Registry.MustGet("AccountAnalyticTag")
	move := models.Registry.MustGet("AccountMove")
	moveLine := models.Registry.MustGet("AccountMoveLine")
	payment := models.Registry.MustGet("AccountPayment")

	account.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{Required: true},
		"Code": fields.Char{Required: true, Unique: true, Index: true},
		"InternalType": fields.Selection{Selection: types.Selection{
			"receivable": "Receivable",
			"payable":    "Payable",
			"liquidity":  "Liquidity",
			"other":      "Regular"},
			Default: models.DefaultValue("other")},
		"Reconcile": fields.Boolean{},
		"Company":   fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
	})

	journal.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{Required: true},
		"Code": fields.Char{Required: true, Size: 5},
		"Type": fields.Selection{Selection: types.Selection{
			"sale":     "Sales",
			"purchase": "Purchase",
			"cash":     "Cash",
			"bank":     "Bank",
			"general":  "Miscellaneous"},
			Required: true},
		"DefaultAccount": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAccount")},
		"Company":        fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
	})

	tax.AddFields(map[string]models.FieldDefinition{
		"Name":   fields.Char{Required: true},
		"Amount": fields.Float{Required: true},
		"AmountType": fields.Selection{Selection: types.Selection{
			"percent": "Percentage of Price",
			"fixed":   "Fixed"},
			Default: models.DefaultValue("percent")},
		"TypeTaxUse": fields.Selection{Selection: types.Selection{
			"sale":     "Sales",
			"purchase": "Purchases",
			"none":     "None"},
			Default: models.DefaultValue("sale")},
		"Account": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAccount")},
	})

	analyticAccount.AddFields(map[string]models.FieldDefinition{
		"Name":    fields.Char{Required: true},
		"Code":    fields.Char{},
		"Active":  fields.Boolean{Default: models.DefaultValue(true)},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
	})

	analyticTag.AddFields(map[string]models.FieldDefinition{
		"Name":   fields.Char{Required: true},
		"Active": fields.Boolean{Default: models.DefaultValue(true)},
	})

	move.NewMethod("ComputeAmounts",
		func(rc *models.RecordCollection) *models.ModelData {
			var debit, credit float64
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				debit += line.Get(line.Model().FieldName("Debit")).(float64)
				credit += line.Get(line.Model().FieldName("Credit")).(float64)
			}
			// One-sided documents (vendor bills, fee entries) carry their
			// amount on the debit side only.
			total := credit
			if debit > total {
				total = debit
			}
			res := models.NewModelDataFromRS(rc)
			res.Set(res.Model.FieldName("AmountTotal"), total)
			res.Set(res.Model.FieldName("AmountResidual"), total)
			return res
		})

	move.NewMethod("ActionPost",
		func(rc *models.RecordCollection) {
			for _, move := range rc.Records() {
				if move.Get(move.Model().FieldName("State")).(string) != "draft" {
					log.Panic(rc.T("Only draft entries can be posted."), "move", move.Get(move.Model().FieldName("Name")))
				}
				vals := models.NewModelDataFromRS(move)
				vals.Set(vals.Model.FieldName("State"), "posted")
				vals.Set(vals.Model.FieldName("PostedBefore"), true)
				if move.Get(move.Model().FieldName("Name")).(string) == "" || move.Get(move.Model().FieldName("Name")).(string) == "/" {
					vals.Set(vals.Model.FieldName("Name"), fmt.Sprintf("%s/%d", move.Get(move.Model().FieldName("MoveType")), move.Ids()[0]))
				}
				move.Call("Write", vals)
			}
		})

	move.NewMethod("ButtonDraft",
		func(rc *models.RecordCollection) {
			for _, move := range rc.Records() {
				move.Set(move.Model().FieldName("State"), "draft")
			}
		})

	move.NewMethod("ButtonCancel",
		func(rc *models.RecordCollection) {
			for _, move := range rc.Records() {
				if move.Get(move.Model().FieldName("State")).(string) == "posted" {
					log.Panic(rc.T("You cannot cancel a posted entry. Reset it to draft first."),
						"move", move.Get(move.Model().FieldName("Name")))
				}
				move.Set(move.Model().FieldName("State"), "cancel")
			}
		})

	move.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{String: "Number", Default: models.DefaultValue("/"), NoCopy: true},
		"Ref":  fields.Char{String: "Reference", NoCopy: true},
		"Date": fields.Date{Default: func(env models.Environment) interface{} {
			return dates.Today()
		}},
		"MoveType": fields.Selection{Selection: types.Selection{
			"entry":       "Journal Entry",
			"out_invoice": "Customer Invoice",
			"out_refund":  "Customer Credit Note",
			"in_invoice":  "Vendor Bill",
			"in_refund":   "Vendor Credit Note"},
			Default: models.DefaultValue("entry"), Required: true},
		"State": fields.Selection{Selection: types.Selection{
			"draft":  "Draft",
			"posted": "Posted",
			"cancel": "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"PostedBefore": fields.Boolean{ReadOnly: true, NoCopy: true},
		"Partner":      fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
		"Journal":      fields.Many2One{RelationModel: models.Registry.MustGet("AccountJournal")},
		"Company":      fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"Lines": fields.One2Many{RelationModel: models.Registry.MustGet("AccountMoveLine"),
			ReverseFK: "Move", String: "Journal Items"},
		"AmountTotal": fields.Float{Compute: move.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.Debit", "Lines.Credit"}, Stored: true},
		"AmountResidual": fields.Float{Compute: move.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"Lines", "Lines.Debit", "Lines.Credit"}, Stored: true},
	})

	moveLine.AddFields(map[string]models.FieldDefinition{
		"Move": fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove"),
			Required: true, OnDelete: models.Cascade, Index: true},
		"Name":    fields.Char{String: "Label"},
		"Account": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAccount"), Required: true},
		"Partner": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
		"Product": fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct")},
		"Quantity": fields.Float{Default: models.DefaultValue(1.0)},
		"PriceUnit": fields.Float{},
		"Debit":    fields.Float{},
		"Credit":   fields.Float{},
		"AnalyticAccount": fields.Many2One{
			RelationModel: models.Registry.MustGet("AccountAnalyticAccount")},
		"AnalyticTags": fields.Many2Many{
			RelationModel: models.Registry.MustGet("AccountAnalyticTag")},
	})

	payment.NewMethod("ActionPost",
		func(rc *models.RecordCollection) {
			for _, pmt := range rc.Records() {
				if pmt.Get(pmt.Model().FieldName("State")).(string) != "draft" {
					log.Panic(rc.T("Only draft payments can be posted."))
				}
				journal := pmt.Get(pmt.Model().FieldName("Journal")).(models.RecordSet).Collection()
				moveData := models.NewModelData(models.Registry.MustGet("AccountMove"))
				moveData.Set(moveData.Model.FieldName("MoveType"), "entry")
				moveData.Set(moveData.Model.FieldName("Journal"), journal)
				moveData.Set(moveData.Model.FieldName("Partner"), pmt.Get(pmt.Model().FieldName("Partner")))
				moveData.Set(moveData.Model.FieldName("Ref"), pmt.Get(pmt.Model().FieldName("Ref")))
				move := rc.Env().Pool("AccountMove").Call("Create", moveData).(models.RecordSet).Collection()
				move.Call("ActionPost")
				pmt.Set(pmt.Model().FieldName("Move"), move)
				pmt.Set(pmt.Model().FieldName("State"), "posted")
			}
		})

	payment.AddFields(map[string]models.FieldDefinition{
		"Name": fields.Char{ReadOnly: true, NoCopy: true},
		"Ref":  fields.Char{String: "Memo"},
		"PaymentType": fields.Selection{Selection: types.Selection{
			"inbound":  "Receive Money",
			"outbound": "Send Money"},
			Default: models.DefaultValue("inbound"), Required: true},
		"Partner": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
		"Journal": fields.Many2One{RelationModel: models.Registry.MustGet("AccountJournal"), Required: true},
		"Amount":  fields.Float{Required: true},
		"Date": fields.Date{Default: func(env models.Environment) interface{} {
			return dates.Today()
		}},
		"State": fields.Selection{Selection: types.Selection{
			"draft":  "Draft",
			"posted": "Posted",
			"cancel": "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true, NoCopy: true},
		"Move": fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove"), ReadOnly: true},
	})
}
