// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package purchasereport provides periodic purchase reporting: a daily
// report of confirmed orders over a date range and a per-vendor totals
// report backed by a SQL aggregate.
package purchasereport

import (
	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "purchasereport"

var log logging.Logger

func init() {
	log = logging.GetLogger("purchasereport")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	declareDailyWizard()
	declareVendorWizard()
	registerReports()
}

// checkDateRange panics unless from is strictly before to.
func checkDateRange(rc *models.RecordCollection, from, to dates.Date) {
	if from.IsZero() || to.IsZero() {
		return
	}
	if !to.Greater(from) {
		log.Panic(rc.T("To date must be greater then from date"),
			"date_from", from, "date_to", to)
	}
}

func declareDailyWizard() {
	wizard := models.NewTransientModel("DailyPurchaseReportWizard")

	wizard.NewMethod("CheckDates",
		func(rc *models.RecordCollection) {
			for _, wiz := range rc.Records() {
				checkDateRange(rc, wiz.Get(wiz.Model().FieldName("DateFrom")).(dates.Date), wiz.Get(wiz.Model().FieldName("DateTo")).(dates.Date))
			}
		})

	wizard.AddFields(map[string]models.FieldDefinition{
		"DateFrom": fields.Date{String: "From Date", Required: true,
			Constraint: wizard.Methods().MustGet("CheckDates")},
		"DateTo": fields.Date{String: "To Date", Required: true,
			Constraint: wizard.Methods().MustGet("CheckDates")},
	})

	wizard.NewMethod("SelectOrders",
		func(rc *models.RecordCollection) *models.RecordCollection {
			from := rc.Get(rc.Model().FieldName("DateFrom")).(dates.Date)
			to := rc.Get(rc.Model().FieldName("DateTo")).(dates.Date)
			orders := rc.Env().Pool("PurchaseOrder")
			return orders.Search(orders.Model().Field(orders.Model().FieldName("State")).In([]string{"purchase", "done"}).
				And().Field(orders.Model().FieldName("DateOrder")).GreaterOrEqual(from.ToDateTime()).
				And().Field(orders.Model().FieldName("DateOrder")).Lower(to.AddDate(0, 0, 1).ToDateTime()))
		})

	wizard.NewMethod("ActionPrintReport",
		func(rc *models.RecordCollection) *actions.Action {
			rc.EnsureOne()
			from := rc.Get(rc.Model().FieldName("DateFrom")).(dates.Date)
			to := rc.Get(rc.Model().FieldName("DateTo")).(dates.Date)
			checkDateRange(rc, from, to)
			orders := rc.Call("SelectOrders").(models.RecordSet).Collection()
			return reports.GetAction(dailyReportID, rc.Ids()[0], reports.Data{
				"ids":       orders.Ids(),
				"model":     "PurchaseOrder",
				"date_from": from.String(),
				"date_to":   to.String(),
			})
		})
}

func declareVendorWizard() {
	wizard := models.NewTransientModel("VendorPurchaseReportWizard")

	wizard.NewMethod("CheckDates",
		func(rc *models.RecordCollection) {
			for _, wiz := range rc.Records() {
				checkDateRange(rc, wiz.Get(wiz.Model().FieldName("DateFrom")).(dates.Date), wiz.Get(wiz.Model().FieldName("DateTo")).(dates.Date))
			}
		})

	wizard.AddFields(map[string]models.FieldDefinition{
		"DateFrom": fields.Date{String: "From Date", Required: true,
			Constraint: wizard.Methods().MustGet("CheckDates")},
		"DateTo": fields.Date{String: "To Date", Required: true,
			Constraint: wizard.Methods().MustGet("CheckDates")},
		"Vendor": fields.Many2One{RelationModel: models.Registry.MustGet("Partner")},
	})

	wizard.NewMethod("VendorTotals",
		func(rc *models.RecordCollection) []VendorTotal {
			rc.EnsureOne()
			from := rc.Get(rc.Model().FieldName("DateFrom")).(dates.Date)
			to := rc.Get(rc.Model().FieldName("DateTo")).(dates.Date)
			checkDateRange(rc, from, to)
			query := `
				SELECT p.name AS vendor, COUNT(o.id) AS order_count,
				       SUM(o.amount_total) AS total
				FROM purchase_order o
				JOIN partner p ON p.id = o.partner_id
				WHERE o.state IN ('purchase', 'done')
				  AND o.date_order >= ? AND o.date_order < ?
			`
			args := []interface{}{from, to.AddDate(0, 0, 1)}
			if vendor := rc.Get(rc.Model().FieldName("Vendor")).(models.RecordSet).Collection(); !vendor.IsEmpty() {
				query += " AND o.partner_id = ?"
				args = append(args, vendor.Ids()[0])
			}
			query += " GROUP BY p.name ORDER BY total DESC"
			var rows []VendorTotal
			rc.Env().Cr().Select(&rows, query, args...)
			return rows
		})

	wizard.NewMethod("ActionPrintReport",
		func(rc *models.RecordCollection) *actions.Action {
			rc.EnsureOne()
			checkDateRange(rc, rc.Get(rc.Model().FieldName("DateFrom")).(dates.Date), rc.Get(rc.Model().FieldName("DateTo")).(dates.Date))
			return reports.GetAction(vendorReportID, rc.Ids()[0], reports.Data{
				"model": "PurchaseOrder",
			})
		})
}

// A VendorTotal is one aggregated report row for a vendor.
type VendorTotal struct {
	Vendor     string  `db:"vendor"`
	OrderCount int64   `db:"order_count"`
	Total      float64 `db:"total"`
}
