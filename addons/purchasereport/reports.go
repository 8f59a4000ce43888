// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package purchasereport

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
)

const (
	dailyReportID  = "purchasereport_daily"
	vendorReportID = "purchasereport_vendor"
)

const dailyTemplate = `<html>
<head><title>Daily Purchase Report</title></head>
<body>
<h2>Purchase Orders from {{.date_from}} to {{.date_to}}</h2>
<table border="1" cellpadding="4">
<tr><th>Order</th><th>Vendor</th><th>Date</th><th>Total</th></tr>
{{range .orders}}<tr><td>{{.Name}}</td><td>{{.Vendor}}</td><td>{{.Date}}</td><td>{{printf "%.2f" .Total}}</td></tr>
{{end}}
<tr><th colspan="3">Grand Total</th><th>{{printf "%.2f" .grand_total}}</th></tr>
</table>
</body>
</html>`

const vendorTemplate = `<html>
<head><title>Vendor Purchase Report</title></head>
<body>
<h2>Purchases per Vendor</h2>
<table border="1" cellpadding="4">
<tr><th>Vendor</th><th>Orders</th><th>Total</th></tr>
{{range .rows}}<tr><td>{{.Vendor}}</td><td>{{.OrderCount}}</td><td>{{printf "%.2f" .Total}}</td></tr>
{{end}}
</table>
</body>
</html>`

// dailyOrderLine is one order row of the daily report.
type dailyOrderLine struct {
	Name   string
	Vendor string
	Date   string
	Total  float64
}

func registerReports() {
	reports.Register(&reports.TextReport{
		Id:       dailyReportID,
		Name:     "Daily Purchase Report",
		Modeler:  models.Registry.MustGet("DailyPurchaseReportWizard"),
		MimeType: "text/html",
		Filename: "daily_purchase_report.html",
		Template: dailyTemplate,
		DataFunc: dailyReportData,
	})
	reports.Register(&reports.TextReport{
		Id:       vendorReportID,
		Name:     "Vendor Purchase Report",
		Modeler:  models.Registry.MustGet("VendorPurchaseReportWizard"),
		MimeType: "text/html",
		Filename: "vendor_purchase_report.html",
		Template: vendorTemplate,
		DataFunc: vendorReportData,
	})
}

func dailyReportData(id int64, additionalData reports.Data) reports.Data {
	res := reports.Data{}
	for k, v := range additionalData {
		res[k] = v
	}
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		wiz := env.Pool("DailyPurchaseReportWizard").Search(
			env.Pool("DailyPurchaseReportWizard").Model().Field(env.Pool("DailyPurchaseReportWizard").Model().FieldName("ID")).Equals(id))
		wiz.EnsureOne()
		res["date_from"] = wiz.Get(wiz.Model().FieldName("DateFrom")).(dates.Date).String()
		res["date_to"] = wiz.Get(wiz.Model().FieldName("DateTo")).(dates.Date).String()
		orders := wiz.Call("SelectOrders").(models.RecordSet).Collection()
		var lines []dailyOrderLine
		var grandTotal float64
		for _, order := range orders.Records() {
			total := order.Get(order.Model().FieldName("AmountTotal")).(float64)
			grandTotal += total
			lines = append(lines, dailyOrderLine{
				Name:   order.Get(order.Model().FieldName("Name")).(string),
				Vendor: order.Get(order.Model().FieldName("Partner")).(models.RecordSet).Collection().Get(order.Get(order.Model().FieldName("Partner")).(models.RecordSet).Collection().Model().FieldName("Name")).(string),
				Date:   order.Get(order.Model().FieldName("DateOrder")).(dates.DateTime).ToDate().String(),
				Total:  total,
			})
		}
		res["orders"] = lines
		res["grand_total"] = grandTotal
	})
	if err != nil {
		log.Panic("Unable to collect daily purchase report data", "wizard", id, "error", err)
	}
	return res
}

func vendorReportData(id int64, additionalData reports.Data) reports.Data {
	res := reports.Data{}
	for k, v := range additionalData {
		res[k] = v
	}
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		wiz := env.Pool("VendorPurchaseReportWizard").Search(
			env.Pool("VendorPurchaseReportWizard").Model().Field(env.Pool("VendorPurchaseReportWizard").Model().FieldName("ID")).Equals(id))
		res["rows"] = wiz.Call("VendorTotals").([]VendorTotal)
	})
	if err != nil {
		log.Panic("Unable to collect vendor purchase report data", "wizard", id, "error", err)
	}
	return res
}
