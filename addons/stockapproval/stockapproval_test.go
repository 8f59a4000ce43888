// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package stockapproval

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

func createPicking(env models.Environment) *models.RecordCollection {
	data := models.NewModelData(models.Registry.MustGet("StockPicking"))
	data.Set(data.Model.FieldName("PickingType"), "incoming")
	return env.Pool("StockPicking").Call("Create", data).(models.RecordSet).Collection()
}

func TestRejectWizard(t *testing.T) {
	Convey("Testing the stock rejection wizard", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			p1 := createPicking(env)
			p2 := createPicking(env)

			newWizard := func(ids []int64) *models.RecordCollection {
				pool := env.Pool("StockRejectWizard").WithContext("active_ids", ids)
				return pool.Call("Create",
					models.NewModelData(models.Registry.MustGet("StockRejectWizard")).
						Set(models.Registry.MustGet("StockRejectWizard").FieldName("Comment"), "damaged on arrival")).(models.RecordSet).Collection()
			}

			Convey("The comment is written on every transfer in context", func() {
				wizard := newWizard([]int64{p1.Ids()[0], p2.Ids()[0]})
				wizard.Call("ActionReject")
				So(p1.Get(p1.Model().FieldName("RejectComment")), ShouldEqual, "damaged on arrival")
				So(p2.Get(p2.Model().FieldName("RejectComment")), ShouldEqual, "damaged on arrival")
				So(p1.Get(p1.Model().FieldName("ApprovalState")), ShouldEqual, "reject")
			})

			Convey("A rejected transfer cannot be validated", func() {
				wizard := newWizard([]int64{p1.Ids()[0]})
				wizard.Call("ActionReject")
				So(func() { p1.Call("ButtonValidate") }, ShouldPanic)
				So(func() { p2.Call("ButtonValidate") }, ShouldNotPanic)
			})

			Convey("An empty comment is rejected", func() {
				pool := env.Pool("StockRejectWizard").WithContext("active_ids", []int64{p1.Ids()[0]})
				So(func() {
					wizard := pool.Call("Create",
						models.NewModelData(models.Registry.MustGet("StockRejectWizard"))).(models.RecordSet).Collection()
					wizard.Call("ActionReject")
				}, ShouldPanic)
			})
		}), ShouldBeNil)
	})
}
