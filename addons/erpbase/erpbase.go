// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package erpbase declares the business entities shared by all fsolutions
// addons: partners, products, accounting documents, sales and purchase
// orders, stock transfers, point of sale and assets.
package erpbase

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"
)

// MODULE_NAME is the name of this module in the server module registry.
const MODULE_NAME string = "erpbase"

var log logging.Logger

// GroupUser is the group of all internal users.
var GroupUser *security.Group

// GroupAccountManager gives full access on accounting documents.
var GroupAccountManager *security.Group

func init() {
	log = logging.GetLogger("erpbase")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	GroupUser = security.Registry.NewGroup("erpbase_group_user", "Internal User")
	GroupAccountManager = security.Registry.NewGroup("erpbase_group_account_manager",
		"Accounting Manager", GroupUser)

	// Models are all registered before any field declaration so that
	// relation fields can cross-reference freely.
	for _, name := range []string{
		"Company", "Partner", "User",
		"ProductCategory", "ProductUom", "ProductTemplate", "ProductProduct",
		"AccountAccount", "AccountJournal", "AccountTax",
		"AccountAnalyticAccount", "AccountAnalyticTag",
		"AccountMove", "AccountMoveLine", "AccountPayment",
		"AccountAsset", "AccountAssetLine",
		"SaleOrder", "SaleOrderLine",
		"PurchaseOrder", "PurchaseOrderLine",
		"StockPicking",
		"PosConfig", "PosSession", "PosOrder", "PosOrderLine",
		"PosPaymentMethod", "PosPayment",
	} {
		models.NewModel(name)
	}

	declareBaseModels()
	declareProductModels()
	declareAccountModels()
	declareAssetModels()
	declareSaleModels()
	declarePurchaseModels()
	declareStockModels()
	declarePosModels()
	declareWebControllers()

	for _, name := range []string{
		"Company", "Partner", "ProductCategory", "ProductUom", "ProductTemplate",
		"ProductProduct", "AccountMove", "AccountMoveLine", "SaleOrder",
		"SaleOrderLine", "PurchaseOrder", "PurchaseOrderLine", "StockPicking",
		"PosConfig", "PosSession", "PosOrder", "PosOrderLine", "PosPayment",
	} {
		models.Registry.MustGet(name).Methods().AllowAllToGroup(GroupUser)
	}
	for _, name := range []string{
		"AccountAccount", "AccountJournal", "AccountTax", "AccountAnalyticAccount",
		"AccountAnalyticTag", "AccountPayment", "AccountAsset", "AccountAssetLine",
	} {
		models.Registry.MustGet(name).Methods().AllowAllToGroup(GroupAccountManager)
	}
}
