// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package bankfees charges bank fees on payments. Journals carry a fee
// configuration and posting a payment on such a journal records an extra
// fee entry on the fee account.
package bankfees

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "bankfees"

var log logging.Logger

// CheckFeeValues panics when a fee amount is negative or a fee percentage
// exceeds 100.
func CheckFeeValues(rc *models.RecordCollection, percent, fixed float64) {
	if percent < 0 || fixed < 0 {
		log.Panic(rc.T("You can't add Negative value in Fees !"),
			"percent", percent, "fixed", fixed)
	}
	if percent > 100 {
		log.Panic(rc.T("You can't add above 100 % value in Fees !"),
			"percent", percent)
	}
}

// FeeAmount returns the fee charged on the given amount.
func FeeAmount(amount, percent, fixed float64) float64 {
	return amount*percent/100 + fixed
}

func init() {
	log = logging.GetLogger("bankfees")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	journal := models.Registry.MustGet("AccountJournal")

	journal.NewMethod("CheckFees",
		func(rc *models.RecordCollection) {
			for _, jrn := range rc.Records() {
				CheckFeeValues(rc, jrn.Get(jrn.Model().FieldName("FeesPercent")).(float64), jrn.Get(jrn.Model().FieldName("FeesFixedAmount")).(float64))
			}
		})

	journal.AddFields(map[string]models.FieldDefinition{
		"HasFees": fields.Boolean{String: "Charge Fees"},
		"FeesAccount": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAccount"),
			String: "Fees Account"},
		"FeesTax": fields.Many2One{RelationModel: models.Registry.MustGet("AccountTax"),
			String: "Fees Tax"},
		"FeesPercent": fields.Float{String: "Fees (%)",
			Constraint: journal.Methods().MustGet("CheckFees")},
		"FeesFixedAmount": fields.Float{String: "Fixed Fees",
			Constraint: journal.Methods().MustGet("CheckFees")},
	})

	payment := models.Registry.MustGet("AccountPayment")

	payment.AddFields(map[string]models.FieldDefinition{
		"FeesAmount": fields.Float{String: "Bank Fees", ReadOnly: true},
		"FeesMove": fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove"),
			ReadOnly: true},
	})

	payment.Methods().MustGet("ActionPost").Extend(
		func(rc *models.RecordCollection) {
			rc.Super().Call("ActionPost")
			for _, pmt := range rc.Records() {
				journal := pmt.Get(pmt.Model().FieldName("Journal")).(models.RecordSet).Collection()
				if !journal.Get(journal.Model().FieldName("HasFees")).(bool) {
					continue
				}
				feesAccount := journal.Get(journal.Model().FieldName("FeesAccount")).(models.RecordSet).Collection()
				if feesAccount.IsEmpty() {
					log.Panic(rc.T("No fee account configured on journal %s", journal.Get(journal.Model().FieldName("Name"))))
				}
				fee := FeeAmount(pmt.Get(pmt.Model().FieldName("Amount")).(float64),
					journal.Get(journal.Model().FieldName("FeesPercent")).(float64),
					journal.Get(journal.Model().FieldName("FeesFixedAmount")).(float64))
				if fee == 0 {
					continue
				}
				feeMove := rc.Env().Pool("AccountMove").Call("Create",
					models.NewModelData(models.Registry.MustGet("AccountMove")).
						Set(models.Registry.MustGet("AccountMove").FieldName("MoveType"), "entry").
						Set(models.Registry.MustGet("AccountMove").FieldName("Journal"), journal).
						Set(models.Registry.MustGet("AccountMove").FieldName("Partner"), pmt.Get(pmt.Model().FieldName("Partner"))).
						Set(models.Registry.MustGet("AccountMove").FieldName("Ref"), rc.T("Bank fees"))).(models.RecordSet).Collection()
				rc.Env().Pool("AccountMoveLine").Call("Create",
					models.NewModelData(models.Registry.MustGet("AccountMoveLine")).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Move"), feeMove).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Name"), rc.T("Bank fees")).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Account"), feesAccount).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Debit"), fee))
				feeMove.Call("ActionPost")
				pmt.Set(pmt.Model().FieldName("FeesAmount"), fee)
				pmt.Set(pmt.Model().FieldName("FeesMove"), feeMove)
			}
		})
}
