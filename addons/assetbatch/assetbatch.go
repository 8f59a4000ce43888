// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package assetbatch provides a maintenance wizard that recomputes the
// depreciation board of every asset in one pass.
package assetbatch

import (
	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/fields"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "assetbatch"

var log logging.Logger

func init() {
	log = logging.GetLogger("assetbatch")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	wizard := models.NewTransientModel("AssetDepreciationRecompute")

	wizard.AddFields(map[string]models.FieldDefinition{
		"Note": fields.Text{String: "Note", ReadOnly: true,
			Default: models.DefaultValue(
				"The depreciation board of every asset will be recomputed. " +
					"Posted depreciation lines are kept.")},
	})

	wizard.NewMethod("ActionRecompute",
		func(rc *models.RecordCollection) *actions.Action {
			assets := rc.Env().Pool("AccountAsset").SearchAll()
			log.Info("Recomputing depreciation boards", "assets", assets.Len(), "uid", rc.Env().Uid())
			for _, asset := range assets.Records() {
				asset.Call("ComputeDepreciationBoard")
			}
			return &actions.Action{
				Type: actions.ActionCloseWindow,
			}
		})
}
