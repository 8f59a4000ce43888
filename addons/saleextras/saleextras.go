// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package saleextras extends sales pricing: a global discount on the
// order carried to the invoice through a dedicated discount product, a
// last sold price lookup per customer, and a KSA compliant invoice print
// with Arabic seller fields and a TLV QR payload.
package saleextras

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "saleextras"

var log logging.Logger

func init() {
	log = logging.GetLogger("saleextras")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	declareCompanyFields()
	declareOrderDiscount()
	declareLastPrice()
	registerKsaInvoiceReport()
}

func declareCompanyFields() {
	company := models.Registry.MustGet("Company")
	company.AddFields(map[string]models.FieldDefinition{
		"DiscountProduct": fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct"),
			String: "Discount Product",
			Help:   "Service product used to carry order discounts to invoices"},
		"ShippingProduct": fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct"),
			String: "Shipping Product"},
		"PaymentFeeProduct": fields.Many2One{RelationModel: models.Registry.MustGet("ProductProduct"),
			String: "Payment Fee Product"},
		"VAT":           fields.Char{String: "Tax ID"},
		"NameArabic":    fields.Char{String: "Name (Arabic)"},
		"StreetArabic":  fields.Char{String: "Street (Arabic)"},
		"CityArabic":    fields.Char{String: "City (Arabic)"},
		"CountryArabic": fields.Char{String: "Country (Arabic)"},
	})
}

func declareOrderDiscount() {
	order := models.Registry.MustGet("SaleOrder")

	order.AddFields(map[string]models.FieldDefinition{
		"DiscountType": fields.Selection{Selection: types.Selection{
			"percent": "Percentage",
			"amount":  "Amount"},
			Default: models.DefaultValue("percent")},
		"DiscountRate": fields.Float{},
		"AmountDiscount": fields.Float{Compute: order.Methods().MustGet("ComputeAmounts"),
			Depends: []string{"DiscountType", "DiscountRate", "Lines", "Lines.PriceSubtotal"},
			Stored:  true, ReadOnly: true},
	})

	order.Methods().MustGet("ComputeAmounts").Extend(
		func(rc *models.RecordCollection) *models.ModelData {
			res := rc.Super().Call("ComputeAmounts").(*models.ModelData)
			untaxed := res.Get(res.Model.FieldName("AmountUntaxed")).(float64)
			rate := rc.Get(rc.Model().FieldName("DiscountRate")).(float64)
			var discount float64
			switch rc.Get(rc.Model().FieldName("DiscountType")).(string) {
			case "amount":
				discount = rate
			default:
				discount = untaxed * rate / 100
			}
			res.Set(res.Model.FieldName("AmountDiscount"), discount)
			res.Set(res.Model.FieldName("AmountTotal"), res.Get(res.Model.FieldName("AmountTotal")).(float64)-discount)
			return res
		})

	order.Methods().MustGet("CreateInvoices").Extend(
		func(rc *models.RecordCollection) *models.RecordCollection {
			invoices := rc.Super().Call("CreateInvoices").(models.RecordSet).Collection()
			for _, ord := range rc.Records() {
				discount := ord.Get(ord.Model().FieldName("AmountDiscount")).(float64)
				if discount == 0 {
					continue
				}
				company := ord.Get(ord.Model().FieldName("Company")).(models.RecordSet).Collection()
				discountProduct := rc.Env().Pool("ProductProduct")
				if !company.IsEmpty() {
					discountProduct = company.Get(company.Model().FieldName("DiscountProduct")).(models.RecordSet).Collection()
				}
				if discountProduct.IsEmpty() {
					log.Panic(rc.T("please,You should select Discount product in accounting setting"),
						"order", ord.Get(ord.Model().FieldName("Name")))
				}
				for _, invoice := range ord.Get(ord.Model().FieldName("Invoices")).(models.RecordSet).Collection().Records() {
					if invoice.Get(invoice.Model().FieldName("State")).(string) != "draft" {
						continue
					}
					rc.Env().Pool("AccountMoveLine").Call("Create",
						models.NewModelData(models.Registry.MustGet("AccountMoveLine")).
							Set(models.Registry.MustGet("AccountMoveLine").FieldName("Move"), invoice).
							Set(models.Registry.MustGet("AccountMoveLine").FieldName("Name"), rc.T("Global Discount")).
							Set(models.Registry.MustGet("AccountMoveLine").FieldName("Product"), discountProduct).
							Set(models.Registry.MustGet("AccountMoveLine").FieldName("Credit"), -discount))
				}
			}
			return invoices
		})
}

func declareLastPrice() {
	orderLine := models.Registry.MustGet("SaleOrderLine")

	orderLine.NewMethod("LastSoldPrice",
		func(rc *models.RecordCollection, product, partner models.RecordSet) float64 {
			lines := rc.Env().Pool("SaleOrderLine")
			last := lines.Search(lines.Model().Field(lines.Model().FieldName("Product")).Equals(product.Ids()[0]).
				And().Field(lines.Model().FieldName("Order.Partner")).Equals(partner.Ids()[0]).
				And().Field(lines.Model().FieldName("Order.State")).In([]string{"sale", "done"})).
				OrderBy("Order.DateOrder DESC", "ID DESC").Limit(1)
			if last.IsEmpty() {
				return 0
			}
			return last.Get(last.Model().FieldName("PriceUnit")).(float64)
		})

	orderLine.NewMethod("OnchangeProduct",
		func(rc *models.RecordCollection) *models.ModelData {
			res := models.NewModelDataFromRS(rc)
			product := rc.Get(rc.Model().FieldName("Product")).(models.RecordSet).Collection()
			if product.IsEmpty() {
				return res
			}
			partner := rc.Get(rc.Model().FieldName("Order")).(models.RecordSet).Collection().
				Get(rc.Get(rc.Model().FieldName("Order")).(models.RecordSet).Collection().Model().FieldName("Partner")).(models.RecordSet).Collection()
			price := product.Get(product.Model().FieldName("ListPrice")).(float64)
			if !partner.IsEmpty() {
				if last := rc.Call("LastSoldPrice", product, partner).(float64); last != 0 {
					price = last
				}
			}
			res.Set(res.Model.FieldName("PriceUnit"), price)
			return res
		})

	orderLine.Fields().MustGet("Product").
		SetOnchange(orderLine.Methods().MustGet("OnchangeProduct"))
}
