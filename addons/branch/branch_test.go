// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package branch

import (
	"testing"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/tests"
	"github.com/hnjm/fsolutions-sub001/addons/erpbase"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	tests.RunTests(m, MODULE_NAME, nil)
}

func TestBranchDefaults(t *testing.T) {
	Convey("Branch defaults on master data", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			north := env.Pool("Branch").Call("Create",
				models.NewModelData(models.Registry.MustGet("Branch")).
					Set(models.Registry.MustGet("Branch").FieldName("Name"), "North")).(models.RecordSet).Collection()
			user := env.Pool("User").Call("Create",
				models.NewModelData(models.Registry.MustGet("User")).
					Set(models.Registry.MustGet("User").FieldName("Name"), "Branch Clerk").
					Set(models.Registry.MustGet("User").FieldName("Login"), "clerk@example.com").
					Set(models.Registry.MustGet("User").FieldName("Branch"), north)).(models.RecordSet).Collection()
			uid := user.Ids()[0]
			security.Registry.AddMembership(uid, erpbase.GroupUser)

			Convey("New partners default to the user's working branch", func() {
				defaults := env.Pool("Partner").Sudo(uid).Call("DefaultGet").(*models.ModelData)
				So(defaults.Has(defaults.Model.FieldName("Branches")), ShouldBeTrue)
				branches := defaults.Get(defaults.Model.FieldName("Branches")).(models.RecordSet).Collection()
				So(branches.Ids(), ShouldResemble, north.Ids())
			})

			Convey("New products default to the user's working branch", func() {
				defaults := env.Pool("ProductTemplate").Sudo(uid).Call("DefaultGet").(*models.ModelData)
				So(defaults.Has(defaults.Model.FieldName("Branches")), ShouldBeTrue)
			})

			Convey("Users without a branch get no branch default", func() {
				defaults := env.Pool("Partner").Call("DefaultGet").(*models.ModelData)
				So(defaults.Has(defaults.Model.FieldName("Branches")), ShouldBeFalse)
			})

			Convey("The session payload carries the working branch", func() {
				info := user.Call("SessionInfo").(map[string]interface{})
				So(info["branch_id"], ShouldEqual, north.Ids()[0])
				So(info["branch_name"], ShouldEqual, "North")
			})

			Convey("Point of sale configurations can be tagged with a branch", func() {
				journal := env.Pool("AccountJournal").Call("Create",
					models.NewModelData(models.Registry.MustGet("AccountJournal")).
						Set(models.Registry.MustGet("AccountJournal").FieldName("Name"), "Shop Cash").
						Set(models.Registry.MustGet("AccountJournal").FieldName("Code"), "SHC").
						Set(models.Registry.MustGet("AccountJournal").FieldName("Type"), "cash")).(models.RecordSet).Collection()
				config := env.Pool("PosConfig").Call("Create",
					models.NewModelData(models.Registry.MustGet("PosConfig")).
						Set(models.Registry.MustGet("PosConfig").FieldName("Name"), "North Shop").
						Set(models.Registry.MustGet("PosConfig").FieldName("Journal"), journal).
						Set(models.Registry.MustGet("PosConfig").FieldName("Branch"), north)).(models.RecordSet).Collection()
				So(config.Get(config.Model().FieldName("Branch")).(models.RecordSet).Collection().Ids(), ShouldResemble, north.Ids())
			})
		}), ShouldBeNil)
	})
}
