// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package uniqueref enforces unique business references on customer
// documents: accounting moves of a same type may not share a reference,
// and the customer reference of sales orders is unique.
package uniqueref

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "uniqueref"

var log logging.Logger

func init() {
	log = logging.GetLogger("uniqueref")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	move := models.Registry.MustGet("AccountMove")
	saleOrder := models.Registry.MustGet("SaleOrder")

	move.NewMethod("CheckUniqueReference",
		func(rc *models.RecordCollection) {
			for _, move := range rc.Records() {
				ref := move.Get(move.Model().FieldName("Ref")).(string)
				if ref == "" {
					continue
				}
				others := rc.Env().Pool("AccountMove")
				others = others.Search(others.Model().Field(others.Model().FieldName("Ref")).Equals(ref).
					And().Field(others.Model().FieldName("MoveType")).Equals(move.Get(move.Model().FieldName("MoveType")).(string)).
					And().Field(others.Model().FieldName("ID")).NotEquals(move.Ids()[0]))
				if !others.IsEmpty() {
					log.Panic(rc.T("The Customer Reference must be unique !"),
						"ref", ref, "move_type", move.Get(move.Model().FieldName("MoveType")))
				}
			}
		})

	move.Fields().MustGet("Ref").
		SetConstraint(move.Methods().MustGet("CheckUniqueReference"))

	saleOrder.NewMethod("CheckUniqueClientOrderRef",
		func(rc *models.RecordCollection) {
			for _, order := range rc.Records() {
				ref := order.Get(order.Model().FieldName("ClientOrderRef")).(string)
				if ref == "" {
					continue
				}
				others := rc.Env().Pool("SaleOrder")
				others = others.Search(others.Model().Field(others.Model().FieldName("ClientOrderRef")).Equals(ref).
					And().Field(others.Model().FieldName("ID")).NotEquals(order.Ids()[0]))
				if !others.IsEmpty() {
					log.Panic(rc.T("The Customer Reference must be unique !"), "ref", ref)
				}
			}
		})

	saleOrder.Fields().MustGet("ClientOrderRef").
		SetConstraint(saleOrder.Methods().MustGet("CheckUniqueClientOrderRef"))
}
