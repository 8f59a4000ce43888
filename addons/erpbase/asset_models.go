// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package erpbase

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/models/types"
	"github.com/hexya-erp/hexya/src/models/types/dates"
)

func declareAssetModels() {
	asset := models.Registry.MustGet("AccountAsset")
	assetLine := models.Registry.MustGet("AccountAssetLine")

	asset.NewMethod("ComputeDepreciationBoard",
		func(rc *models.RecordCollection) {
			for _, asset := range rc.Records() {
				lines := asset.Get(asset.Model().FieldName("DepreciationLines")).(models.RecordSet).Collection()
				unposted := lines.Filtered(func(rs models.RecordSet) bool {
					return !rs.Collection().Get(rs.Collection().Model().FieldName("MoveCheck")).(bool)
				})
				unposted.Call("Unlink")
				posted := lines.Filtered(func(rs models.RecordSet) bool {
					return rs.Collection().Get(rs.Collection().Model().FieldName("MoveCheck")).(bool)
				})

				methodNumber := int(asset.Get(asset.Model().FieldName("MethodNumber")).(int64))
				if methodNumber <= posted.Len() {
					continue
				}
				depreciable := asset.Get(asset.Model().FieldName("OriginalValue")).(float64) - asset.Get(asset.Model().FieldName("SalvageValue")).(float64)
				var alreadyDepreciated float64
				for _, line := range posted.Records() {
					alreadyDepreciated += line.Get(line.Model().FieldName("Amount")).(float64)
				}
				remaining := depreciable - alreadyDepreciated
				steps := methodNumber - posted.Len()
				amount := remaining / float64(steps)

				date := asset.Get(asset.Model().FieldName("FirstDepreciationDate")).(dates.Date)
				periodMonths := int(asset.Get(asset.Model().FieldName("MethodPeriod")).(int64))
				date = date.AddDate(0, periodMonths*posted.Len(), 0)
				depreciated := alreadyDepreciated
				for i := 0; i < steps; i++ {
					depreciated += amount
					lineData := models.NewModelData(models.Registry.MustGet("AccountAssetLine"))
					lineData.Set(lineData.Model.FieldName("Asset"), asset)
					lineData.Set(lineData.Model.FieldName("Sequence"), int64(posted.Len()+i+1))
					lineData.Set(lineData.Model.FieldName("Date"), date)
					lineData.Set(lineData.Model.FieldName("Amount"), amount)
					lineData.Set(lineData.Model.FieldName("DepreciatedValue"), depreciated)
					lineData.Set(lineData.Model.FieldName("RemainingValue"), depreciable-depreciated)
					rc.Env().Pool("AccountAssetLine").Call("Create", lineData)
					date = date.AddDate(0, periodMonths, 0)
				}
			}
		})

	asset.NewMethod("Validate",
		func(rc *models.RecordCollection) {
			for _, asset := range rc.Records() {
				asset.Call("ComputeDepreciationBoard")
				asset.Set(asset.Model().FieldName("State"), "open")
			}
		})

	asset.AddFields(map[string]models.FieldDefinition{
		"Name":          fields.Char{String: "Asset Name", Required: true},
		"OriginalValue": fields.Float{Required: true},
		"SalvageValue":  fields.Float{},
		"AcquisitionDate": fields.Date{Default: func(env models.Environment) interface{} {
			return dates.Today()
		}},
		"FirstDepreciationDate": fields.Date{Default: func(env models.Environment) interface{} {
			return dates.Today()
		}},
		"MethodNumber": fields.Integer{String: "Number of Depreciations",
			Default: models.DefaultValue(int64(5))},
		"MethodPeriod": fields.Integer{String: "Period Length (months)",
			Default: models.DefaultValue(int64(12))},
		"State": fields.Selection{Selection: types.Selection{
			"draft":  "Draft",
			"open":   "Running",
			"close":  "Close",
			"cancel": "Cancelled"},
			Default: models.DefaultValue("draft"), ReadOnly: true},
		"Company": fields.Many2One{RelationModel: models.Registry.MustGet("Company")},
		"DepreciationLines": fields.One2Many{
			RelationModel: models.Registry.MustGet("AccountAssetLine"), ReverseFK: "Asset"},
	})

	assetLine.AddFields(map[string]models.FieldDefinition{
		"Asset": fields.Many2One{RelationModel: models.Registry.MustGet("AccountAsset"),
			Required: true, OnDelete: models.Cascade},
		"Sequence":         fields.Integer{},
		"Date":             fields.Date{String: "Depreciation Date"},
		"Amount":           fields.Float{String: "Depreciation"},
		"DepreciatedValue": fields.Float{String: "Cumulative Depreciation"},
		"RemainingValue":   fields.Float{String: "Next Period Depreciation"},
		"MoveCheck":        fields.Boolean{String: "Posted", ReadOnly: true},
		"Move":             fields.Many2One{RelationModel: models.Registry.MustGet("AccountMove")},
	})
}
