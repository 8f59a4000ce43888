// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package reportpreview

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

func TestSessionInfoPreferences(t *testing.T) {
	Convey("Report preferences in the session payload", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			user := env.Pool("User").Call("Create",
				models.NewModelData(models.Registry.MustGet("User")).
					Set(models.Registry.MustGet("User").FieldName("Name"), "Jane Clerk").
					Set(models.Registry.MustGet("User").FieldName("Login"), "jane@example.com").
					Set(models.Registry.MustGet("User").FieldName("ReportPreview"), true)).(models.RecordSet).Collection()

			Convey("Internal users see their preferences", func() {
				security.Registry.AddMembership(user.Ids()[0], erpbase.GroupUser)
				info := user.Call("SessionInfo").(map[string]interface{})
				So(info["username"], ShouldEqual, "jane@example.com")
				So(info["report_preview"], ShouldEqual, true)
				So(info["report_automatic_printing"], ShouldEqual, false)
			})

			Convey("Users outside the internal group get the plain payload", func() {
				security.Registry.RemoveAllMembershipsForUser(user.Ids()[0])
				info := user.Call("SessionInfo").(map[string]interface{})
				_, ok := info["report_preview"]
				So(ok, ShouldBeFalse)
			})
		}), ShouldBeNil)
	})
}
