// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package posbankfees charges bank fees on point of sale payments. Fee
// attributes sit on the payment method and the fee entries are created in
// a dedicated journal when the session is closed.
package posbankfees

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	"github.com/hnjm/fsolutions-sub001/addons/bankfees"
	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "posbankfees"

var log logging.Logger

func init() {
	log = logging.GetLogger("posbankfees")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	method := models.Registry.MustGet("PosPaymentMethod")

	method.NewMethod("CheckFees",
		func(rc *models.RecordCollection) {
			for _, m := range rc.Records() {
				bankfees.CheckFeeValues(rc, m.Get(m.Model().FieldName("FeesPercent")).(float64), m.Get(m.Model().FieldName("FeesFixedAmount")).(float64))
			}
		})

	method.AddFields(map[string]models.FieldDefinition{
		"HasFees": fields.Boolean{String: "Charge Fees"},
		"FeesAccount": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAccount"),
			String: "Fees Account"},
		"FeesJournal": fields.Many2One{RelationModel: models.Registry.MustGet("AccountJournal"),
			String: "Fees Journal"},
		"FeesPercent": fields.Float{String: "Fees (%)",
			Constraint: method.Methods().MustGet("CheckFees")},
		"FeesFixedAmount": fields.Float{String: "Fixed Fees",
			Constraint: method.Methods().MustGet("CheckFees")},
	})

	payment := models.Registry.MustGet("PosPayment")

	payment.AddFields(map[string]models.FieldDefinition{
		"FeesAmount": fields.Float{String: "Bank Fees", ReadOnly: true},
		"FeesMove": fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove"),
			ReadOnly: true},
	})

	payment.NewMethod("CreateFeeEntry",
		func(rc *models.RecordCollection) {
			for _, pay := range rc.Records() {
				method := pay.Get(pay.Model().FieldName("Method")).(models.RecordSet).Collection()
				if !method.Get(method.Model().FieldName("HasFees")).(bool) {
					continue
				}
				if !pay.Get(pay.Model().FieldName("FeesMove")).(models.RecordSet).Collection().IsEmpty() {
					continue
				}
				feesJournal := method.Get(method.Model().FieldName("FeesJournal")).(models.RecordSet).Collection()
				feesAccount := method.Get(method.Model().FieldName("FeesAccount")).(models.RecordSet).Collection()
				if feesJournal.IsEmpty() || feesAccount.IsEmpty() {
					log.Panic(rc.T("No fee journal or account configured on payment method %s",
						method.Get(method.Model().FieldName("Name"))))
				}
				fee := bankfees.FeeAmount(pay.Get(pay.Model().FieldName("Amount")).(float64),
					method.Get(method.Model().FieldName("FeesPercent")).(float64),
					method.Get(method.Model().FieldName("FeesFixedAmount")).(float64))
				if fee == 0 {
					continue
				}
				feeMove := rc.Env().Pool("AccountMove").Call("Create",
					models.NewModelData(models.Registry.MustGet("AccountMove")).
						Set(models.Registry.MustGet("AccountMove").FieldName("MoveType"), "entry").
						Set(models.Registry.MustGet("AccountMove").FieldName("Journal"), feesJournal).
						Set(models.Registry.MustGet("AccountMove").FieldName("Ref"), rc.T("POS bank fees"))).(models.RecordSet).Collection()
				rc.Env().Pool("AccountMoveLine").Call("Create",
					models.NewModelData(models.Registry.MustGet("AccountMoveLine")).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Move"), feeMove).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Name"), rc.T("POS bank fees")).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Account"), feesAccount).
						Set(models.Registry.MustGet("AccountMoveLine").FieldName("Debit"), fee))
				feeMove.Call("ActionPost")
				pay.Set(pay.Model().FieldName("FeesAmount"), fee)
				pay.Set(pay.Model().FieldName("FeesMove"), feeMove)
			}
		})

	session := models.Registry.MustGet("PosSession")
	session.Methods().MustGet("ActionPosSessionClose").Extend(
		func(rc *models.RecordCollection) {
			for _, sess := range rc.Records() {
				sess.Get(sess.Model().FieldName("Payments")).(models.RecordSet).Collection().Call("CreateFeeEntry")
			}
			rc.Super().Call("ActionPosSessionClose")
		})
}
