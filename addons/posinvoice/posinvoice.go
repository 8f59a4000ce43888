// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package posinvoice lets the point of sale print customer invoices
// directly, without downloading them first. The rendered invoice document
// is handed to the client as base64 for its print dialog.
package posinvoice

import (
	"encoding/base64"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "posinvoice"

const invoiceReportID = "posinvoice_invoice"

var log logging.Logger

const invoiceTemplate = `<html>
<head><title>Invoice {{.number}}</title></head>
<body>
<h2>Invoice {{.number}}</h2>
<p>Customer: {{.partner}}<br/>Date: {{.date}}</p>
<table border="1" cellpadding="4">
<tr><th>Description</th><th>Amount</th></tr>
{{range .lines}}<tr><td>{{.Name}}</td><td>{{printf "%.2f" .Amount}}</td></tr>
{{end}}
<tr><th>Total</th><th>{{printf "%.2f" .amount_total}}</th></tr>
</table>
</body>
</html>`

// An invoiceLine is one printed invoice row.
type invoiceLine struct {
	Name   string
	Amount float64
}

func init() {
	log = logging.GetLogger("posinvoice")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	posConfig := models.Registry.MustGet("PosConfig")
	posConfig.AddFields(map[string]models.FieldDefinition{
		"PrintWithoutDownload": fields.Boolean{String: "Print Without Download",
			Help: "Send invoices straight to the client print dialog"},
	})

	move := models.Registry.MustGet("AccountMove")

	move.NewMethod("InvoiceReportData",
		func(rc *models.RecordCollection) reports.Data {
			rc.EnsureOne()
			var lines []invoiceLine
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				lines = append(lines, invoiceLine{
					Name:   line.Get(line.Model().FieldName("Name")).(string),
					Amount: line.Get(line.Model().FieldName("Credit")).(float64),
				})
			}
			return reports.Data{
				"number":       rc.Get(rc.Model().FieldName("Name")).(string),
				"partner":      rc.Get(rc.Model().FieldName("Partner")).(models.RecordSet).Collection().Get(rc.Get(rc.Model().FieldName("Partner")).(models.RecordSet).Collection().Model().FieldName("Name")).(string),
				"date":         rc.Get(rc.Model().FieldName("Date")).(dates.Date).String(),
				"lines":        lines,
				"amount_total": rc.Get(rc.Model().FieldName("AmountTotal")).(float64),
			}
		})

	move.NewMethod("RenderInvoicePdfBase64",
		func(rc *models.RecordCollection) string {
			rc.EnsureOne()
			doc, err := reports.Registry.MustGet(invoiceReportID).Render(rc.Ids()[0], nil)
			if err != nil {
				log.Panic(rc.T("Unable to render the invoice document"),
					"move", rc.Get(rc.Model().FieldName("Name")), "error", err)
			}
			return base64.StdEncoding.EncodeToString(doc.Content)
		})

	posOrder := models.Registry.MustGet("PosOrder")
	posOrder.NewMethod("GetInvoicePdfBase64",
		func(rc *models.RecordCollection) string {
			rc.EnsureOne()
			move := rc.Get(rc.Model().FieldName("AccountMove")).(models.RecordSet).Collection()
			if move.IsEmpty() {
				log.Panic(rc.T("There is no invoice associated to this order."),
					"order", rc.Get(rc.Model().FieldName("Name")))
			}
			return move.Call("RenderInvoicePdfBase64").(string)
		})

	reports.Register(&reports.TextReport{
		Id:       invoiceReportID,
		Name:     "Customer Invoice",
		Modeler:  move,
		MimeType: "text/html",
		Filename: "invoice.html",
		Template: invoiceTemplate,
		DataFunc: invoiceReportData,
	})
}

func invoiceReportData(id int64, additionalData reports.Data) reports.Data {
	res := reports.Data{}
	for k, v := range additionalData {
		res[k] = v
	}
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		move := env.Pool("AccountMove").Search(
			env.Pool("AccountMove").Model().Field(env.Pool("AccountMove").Model().FieldName("ID")).Equals(id))
		for k, v := range move.Call("InvoiceReportData").(reports.Data) {
			res[k] = v
		}
	})
	if err != nil {
		log.Panic("Unable to collect invoice report data", "move", id, "error", err)
	}
	return res
}
