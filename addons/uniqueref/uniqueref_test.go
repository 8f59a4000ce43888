// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package uniqueref

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

func createMove(env models.Environment, moveType, ref string) *models.RecordCollection {
	data := models.NewModelData(models.Registry.MustGet("AccountMove"))
	data.Set(data.Model.FieldName("MoveType"), moveType)
	data.Set(data.Model.FieldName("Ref"), ref)
	return env.Pool("AccountMove").Call("Create", data).(models.RecordSet).Collection()
}

func TestUniqueMoveReference(t *testing.T) {
	Convey("Testing move reference uniqueness", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			createMove(env, "out_invoice", "R1")

			Convey("A second move with the same type and reference is rejected", func() {
				So(func() { createMove(env, "out_invoice", "R1") }, ShouldPanic)
			})

			Convey("The same reference on another move type is accepted", func() {
				bill := createMove(env, "in_invoice", "R1")
				So(bill.Get(bill.Model().FieldName("Ref")), ShouldEqual, "R1")
			})

			Convey("Two moves with empty references coexist", func() {
				createMove(env, "out_invoice", "")
				second := createMove(env, "out_invoice", "")
				So(second.IsEmpty(), ShouldBeFalse)
			})

			Convey("Writing a duplicate reference on an existing move is rejected", func() {
				other := createMove(env, "out_invoice", "R2")
				So(func() { other.Set(other.Model().FieldName("Ref"), "R1") }, ShouldPanic)
			})
		}), ShouldBeNil)
	})
}

func TestUniqueClientOrderRef(t *testing.T) {
	Convey("Testing sales order customer reference uniqueness", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			partnerData := models.NewModelData(models.Registry.MustGet("Partner"))
			partnerData.Set(partnerData.Model.FieldName("Name"), "Acme")
			partner := env.Pool("Partner").Call("Create", partnerData).(models.RecordSet).Collection()

			newOrder := func(ref string) func() {
				return func() {
					data := models.NewModelData(models.Registry.MustGet("SaleOrder"))
					data.Set(data.Model.FieldName("Partner"), partner)
					data.Set(data.Model.FieldName("ClientOrderRef"), ref)
					env.Pool("SaleOrder").Call("Create", data)
				}
			}

			newOrder("CREF-1")()

			Convey("A second order with the same customer reference is rejected", func() {
				So(newOrder("CREF-1"), ShouldPanic)
			})

			Convey("A different reference is accepted", func() {
				So(newOrder("CREF-2"), ShouldNotPanic)
			})

			Convey("Empty references never conflict", func() {
				So(newOrder(""), ShouldNotPanic)
				So(newOrder(""), ShouldNotPanic)
			})
		}), ShouldBeNil)
	})
}
