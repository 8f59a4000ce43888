// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package possession prints a thermal receipt summary of a point of sale
// session: totals, per payment method amounts and balances.
package possession

import (
	"fmt"

	"github.com/flosch/pongo2"
	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/models/types/dates"
	"github.com/hexya-erp/hexya/src/reports"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "possession"

const receiptReportID = "possession_session_receipt"

var log logging.Logger

const receiptTemplate = `----------------------------------------
{{ company }}
Session {{ name }}
Cashier: {{ cashier }}
Opened:  {{ start_at }}
Closed:  {{ stop_at }}
----------------------------------------
Opening balance      {{ opening_balance|floatformat:2 }}
{% for p in payments %}{{ p.Method }}    {{ p.Amount|floatformat:2 }}
{% endfor %}----------------------------------------
Total payments       {{ total_payments|floatformat:2 }}
Closing balance      {{ closing_balance|floatformat:2 }}
----------------------------------------
`

func init() {
	log = logging.GetLogger("possession")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	session := models.Registry.MustGet("PosSession")

	session.NewMethod("ReceiptData",
		func(rc *models.RecordCollection) reports.Data {
			rc.EnsureOne()
			res := reports.Data{
				"name":            rc.Get(rc.Model().FieldName("Name")).(string),
				"company":         rc.Get(rc.Model().FieldName("Config")).(models.RecordSet).Collection().Get(rc.Get(rc.Model().FieldName("Config")).(models.RecordSet).Collection().Model().FieldName("Name")).(string),
				"cashier":         rc.Get(rc.Model().FieldName("User")).(models.RecordSet).Collection().Get(rc.Get(rc.Model().FieldName("User")).(models.RecordSet).Collection().Model().FieldName("Name")).(string),
				"start_at":        rc.Get(rc.Model().FieldName("StartAt")).(dates.DateTime).String(),
				"stop_at":         rc.Get(rc.Model().FieldName("StopAt")).(dates.DateTime).String(),
				"opening_balance": rc.Get(rc.Model().FieldName("OpeningBalance")).(float64),
				"closing_balance": rc.Get(rc.Model().FieldName("ClosingBalance")).(float64),
				"total_payments":  rc.Get(rc.Model().FieldName("TotalPaymentsAmount")).(float64),
			}
			totals := make(map[string]float64)
			var order []string
			for _, payment := range rc.Get(rc.Model().FieldName("Payments")).(models.RecordSet).Collection().Records() {
				method := payment.Get(payment.Model().FieldName("Method")).(models.RecordSet).Collection().Get(payment.Get(payment.Model().FieldName("Method")).(models.RecordSet).Collection().Model().FieldName("Name")).(string)
				if _, ok := totals[method]; !ok {
					order = append(order, method)
				}
				totals[method] += payment.Get(payment.Model().FieldName("Amount")).(float64)
			}
			var rows []PaymentRow
			for _, method := range order {
				rows = append(rows, PaymentRow{Method: method, Amount: totals[method]})
			}
			res["payments"] = rows
			return res
		})

	session.NewMethod("ActionPrintReceipt",
		func(rc *models.RecordCollection) *actions.Action {
			rc.EnsureOne()
			return reports.GetAction(receiptReportID, rc.Ids()[0], reports.Data{})
		})

	reports.Register(&SessionReceiptReport{
		Id:       receiptReportID,
		Name:     "Session Receipt",
		Modeler:  session,
		Template: receiptTemplate,
	})
}

// A PaymentRow is the per payment method aggregate printed on the receipt.
type PaymentRow struct {
	Method string
	Amount float64
}

// A SessionReceiptReport renders a plain text thermal receipt through a
// pongo2 template.
type SessionReceiptReport struct {
	Id       string
	Name     string
	Modeler  models.Modeler
	Template string
	tmpl     *pongo2.Template
}

// Render this report for the session with the given id.
func (r *SessionReceiptReport) Render(id int64, additionalData reports.Data) (*reports.Document, error) {
	data := reports.Data{}
	for k, v := range additionalData {
		data[k] = v
	}
	err := models.ExecuteInNewEnvironment(security.SuperUserID, func(env models.Environment) {
		session := env.Pool("PosSession").Search(
			env.Pool("PosSession").Model().Field(env.Pool("PosSession").Model().FieldName("ID")).Equals(id))
		for k, v := range session.Call("ReceiptData").(reports.Data) {
			data[k] = v
		}
	})
	if err != nil {
		return nil, err
	}
	content, err := r.tmpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, err
	}
	return &reports.Document{
		Content:  content,
		MimeType: "text/plain",
		Filename: fmt.Sprintf("session_receipt_%d.txt", id),
	}, nil
}

// Init compiles the receipt template. Init is called at bootstrap.
func (r *SessionReceiptReport) Init() error {
	tmpl, err := pongo2.FromString(r.Template)
	if err != nil {
		return fmt.Errorf("error while loading receipt template: %s", err)
	}
	r.tmpl = tmpl
	return nil
}

func (r *SessionReceiptReport) String() string {
	return r.Name
}

// ID returns the unique identifying code of this report
func (r *SessionReceiptReport) ID() string {
	return r.Id
}

// Model returns the model that this report is bound to.
func (r *SessionReceiptReport) Model() models.Modeler {
	return r.Modeler
}

// Type of the report: SessionReceiptReport
func (r *SessionReceiptReport) Type() string {
	return "SessionReceiptReport"
}
