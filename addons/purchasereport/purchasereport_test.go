// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package purchasereport

import (
	"testing"

	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
	"github.com/hexya-erp/hexya/src/tests"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	tests.RunTests(m, MODULE_NAME, nil)
}

func createTestOrders(env models.Environment) {
	vendor := env.Pool("Partner").Call("Create",
		models.NewModelData(models.Registry.MustGet("Partner")).
			Set(models.Registry.MustGet("Partner").FieldName("Name"), "Steelworks Supply")).(models.RecordSet).Collection()
	other := env.Pool("Partner").Call("Create",
		models.NewModelData(models.Registry.MustGet("Partner")).
			Set(models.Registry.MustGet("Partner").FieldName("Name"), "Timber Traders")).(models.RecordSet).Collection()
	for _, o := range []struct {
		partner *models.RecordCollection
		date    string
		state   string
	}{
		{vendor, "2024-01-05 10:00:00", "purchase"},
		{vendor, "2024-01-20 10:00:00", "done"},
		{other, "2024-01-15 10:00:00", "purchase"},
		{other, "2024-01-15 11:00:00", "draft"},
		{vendor, "2024-02-03 10:00:00", "purchase"},
	} {
		env.Pool("PurchaseOrder").Call("Create",
			models.NewModelData(models.Registry.MustGet("PurchaseOrder")).
				Set(models.Registry.MustGet("PurchaseOrder").FieldName("Partner"), o.partner).
				Set(models.Registry.MustGet("PurchaseOrder").FieldName("DateOrder"), dates.ParseDateTime(o.date)).
				Set(models.Registry.MustGet("PurchaseOrder").FieldName("State"), o.state))
	}
}

func TestDailyPurchaseReport(t *testing.T) {
	Convey("Daily purchase report wizard", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			createTestOrders(env)
			wizardModel := env.Pool("DailyPurchaseReportWizard")

			Convey("A range ending before it starts is rejected", func() {
				So(func() {
					wizardModel.Call("Create",
						models.NewModelData(models.Registry.MustGet("DailyPurchaseReportWizard")).
							Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-01-10")).
							Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-01-09")))
				}, ShouldPanic)
			})

			Convey("Equal start and end dates are rejected", func() {
				So(func() {
					wizardModel.Call("Create",
						models.NewModelData(models.Registry.MustGet("DailyPurchaseReportWizard")).
							Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-01-10")).
							Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-01-10")))
				}, ShouldPanic)
			})

			Convey("A valid range selects confirmed orders only", func() {
				wiz := wizardModel.Call("Create",
					models.NewModelData(models.Registry.MustGet("DailyPurchaseReportWizard")).
						Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-01-01")).
						Set(models.Registry.MustGet("DailyPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-01-31"))).(models.RecordSet).Collection()
				orders := wiz.Call("SelectOrders").(models.RecordSet).Collection()
				So(orders.Len(), ShouldEqual, 3)
				for _, order := range orders.Records() {
					So(order.Get(order.Model().FieldName("State")).(string), ShouldBeIn, []string{"purchase", "done"})
				}
				action := wiz.Call("ActionPrintReport").(*actions.Action)
				So(action.Type, ShouldEqual, actions.ActionReport)
				So(action.Data["ids"], ShouldResemble, orders.Ids())
			})
		}), ShouldBeNil)
	})
}

func TestVendorPurchaseReport(t *testing.T) {
	Convey("Vendor purchase report wizard", t, func() {
		So(models.SimulateInNewEnvironment(security.SuperUserID, func(env models.Environment) {
			createTestOrders(env)
			wizardModel := env.Pool("VendorPurchaseReportWizard")

			Convey("Reversed ranges are rejected", func() {
				So(func() {
					wizardModel.Call("Create",
						models.NewModelData(models.Registry.MustGet("VendorPurchaseReportWizard")).
							Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-02-01")).
							Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-01-01")))
				}, ShouldPanic)
			})

			Convey("Totals are grouped per vendor across the range", func() {
				wiz := wizardModel.Call("Create",
					models.NewModelData(models.Registry.MustGet("VendorPurchaseReportWizard")).
						Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-01-01")).
						Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-12-31"))).(models.RecordSet).Collection()
				rows := wiz.Call("VendorTotals").([]VendorTotal)
				So(len(rows), ShouldEqual, 2)
				counts := make(map[string]int64)
				for _, row := range rows {
					counts[row.Vendor] = row.OrderCount
				}
				So(counts["Steelworks Supply"], ShouldEqual, 3)
				So(counts["Timber Traders"], ShouldEqual, 1)
			})

			Convey("Restricting to a vendor keeps only its rows", func() {
				vendor := env.Pool("Partner").Search(
					env.Pool("Partner").Model().Field(env.Pool("Partner").Model().FieldName("Name")).Equals("Timber Traders"))
				wiz := wizardModel.Call("Create",
					models.NewModelData(models.Registry.MustGet("VendorPurchaseReportWizard")).
						Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateFrom"), dates.ParseDate("2024-01-01")).
						Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("DateTo"), dates.ParseDate("2024-12-31")).
						Set(models.Registry.MustGet("VendorPurchaseReportWizard").FieldName("Vendor"), vendor)).(models.RecordSet).Collection()
				rows := wiz.Call("VendorTotals").([]VendorTotal)
				So(len(rows), ShouldEqual, 1)
				So(rows[0].Vendor, ShouldEqual, "Timber Traders")
			})
		}), ShouldBeNil)
	})
}

func TestReportDataErrors(t *testing.T) {
	Convey("Report data collection aborts when the wizard is gone", t, func() {
		So(func() { dailyReportData(-1, reports.Data{}) }, ShouldPanic)
		So(func() { vendorReportData(-1, reports.Data{}) }, ShouldPanic)
	})
}
