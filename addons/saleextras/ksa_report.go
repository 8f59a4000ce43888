// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package saleextras

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
)

const ksaReportID = "saleextras_ksa_invoice"

const ksaInvoiceTemplate = `<html>
<head><title>{{.number}}</title></head>
<body>
<h2>Tax Invoice / فاتورة ضريبية</h2>
<p>{{.seller_name}} / {{.seller_name_arabic}}<br/>
{{.seller_street_arabic}} {{.seller_city_arabic}}<br/>
VAT: {{.seller_vat}}</p>
<p>Customer: {{.buyer_name}} {{if .buyer_name_arabic}}/ {{.buyer_name_arabic}}{{end}}</p>
<p>Invoice: {{.number}}<br/>Date: {{.date}}</p>
<table border="1" cellpadding="4">
<tr><th>Description</th><th>Amount</th></tr>
{{range .lines}}<tr><td>{{.Name}}</td><td>{{printf "%.2f" .Amount}}</td></tr>
{{end}}
<tr><th>Total</th><th>{{printf "%.2f" .amount_total}}</th></tr>
</table>
<p>QR: {{.qr_code}}</p>
</body>
</html>`

// tlvQrPayload encodes the ZATCA simplified invoice fields as
// tag-length-value entries and returns them base64 encoded.
func tlvQrPayload(sellerName, vatNumber, timestamp string, total, vatAmount float64) string {
	var payload []byte
	entries := []struct {
		tag   byte
		value string
	}{
		{1, sellerName},
		{2, vatNumber},
		{3, timestamp},
		{4, fmt.Sprintf("%.2f", total)},
		{5, fmt.Sprintf("%.2f", vatAmount)},
	}
	for _, entry := range entries {
		value := []byte(entry.value)
		// Each TLV length is a single byte. Trim oversized values on a
		// rune boundary so the stream stays well-formed.
		for len(value) > 255 {
			_, size := utf8.DecodeLastRune(value)
			value = value[:len(value)-size]
		}
		payload = append(payload, entry.tag, byte(len(value)))
		payload = append(payload, value...)
	}
	return base64.StdEncoding.EncodeToString(payload)
}

func registerKsaInvoiceReport() {
	partner := models.Registry.MustGet("Partner")
	partner.AddFields(map[string]models.FieldDefinition{
		"NameArabic": fields.Char{String: "Name (Arabic)"},
	})

	move := models.Registry.MustGet("AccountMove")

	move.NewMethod("KsaInvoiceData",
		func(rc *models.RecordCollection) reports.Data {
			rc.EnsureOne()
			company := rc.Get(rc.Model().FieldName("Company")).(models.RecordSet).Collection()
			buyer := rc.Get(rc.Model().FieldName("Partner")).(models.RecordSet).Collection()
			var lines []ksaInvoiceLine
			for _, line := range rc.Get(rc.Model().FieldName("Lines")).(models.RecordSet).Collection().Records() {
				lines = append(lines, ksaInvoiceLine{
					Name:   line.Get(line.Model().FieldName("Name")).(string),
					Amount: line.Get(line.Model().FieldName("Credit")).(float64),
				})
			}
			total := rc.Get(rc.Model().FieldName("AmountTotal")).(float64)
			// Totals are VAT inclusive at the KSA standard rate.
			vatAmount := total - total/1.15
			res := reports.Data{
				"number":       rc.Get(rc.Model().FieldName("Name")).(string),
				"date":         rc.Get(rc.Model().FieldName("Date")).(dates.Date).String(),
				"lines":        lines,
				"amount_total": total,
			}
			var sellerName, sellerVat string
			if !company.IsEmpty() {
				sellerName = company.Get(company.Model().FieldName("Name")).(string)
				sellerVat = company.Get(company.Model().FieldName("VAT")).(string)
				res["seller_name_arabic"] = company.Get(company.Model().FieldName("NameArabic")).(string)
				res["seller_street_arabic"] = company.Get(company.Model().FieldName("StreetArabic")).(string)
				res["seller_city_arabic"] = company.Get(company.Model().FieldName("CityArabic")).(string)
			}
			res["seller_name"] = sellerName
			res["seller_vat"] = sellerVat
			if !buyer.IsEmpty() {
				res["buyer_name"] = buyer.Get(buyer.Model().FieldName("Name")).(string)
				res["buyer_name_arabic"] = buyer.Get(buyer.Model().FieldName("NameArabic")).(string)
			}
			res["qr_code"] = tlvQrPayload(sellerName, sellerVat,
				rc.Get(rc.Model().FieldName("Date")).(dates.Date).ToDateTime().String(), total, vatAmount)
			return res
		})

	reports.Register(&reports.TextReport{
		Id:       ksaReportID,
		Name:     "Tax Invoice (KSA)",
		Modeler:  move,
		MimeType: "text/html",
		Filename: "tax_invoice.html",
		Template: ksaInvoiceTemplate,
		DataFunc: ksaInvoiceData,
	})
}

// A ksaInvoiceLine is one printed invoice row.
type ksaInvoiceLine struct {
	Name   string
	Amount float64
}

func ksaInvoiceData(id int64, additionalData reports.Data) reports.Data {
	res := reports.Data{}
	for k, v := range additionalData {
		res[k] = v
	}
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		move := env.Pool("AccountMove").Search(
			env.Pool("AccountMove").Model().Field(env.Pool("AccountMove").Model().FieldName("ID")).Equals(id))
		for k, v := range move.Call("KsaInvoiceData").(reports.Data) {
			res[k] = v
		}
	})
	if err != nil {
		log.Panic("Unable to collect invoice report data", "move", id, "error", err)
	}
	return res
}
