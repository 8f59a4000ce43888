// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package cleardata adds a force-delete escape hatch on accounting moves:
// cancelled documents can be permanently removed, bypassing the usual
// protection of entries that have already been posted.
package cleardata

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/tools/logging"

	_ "github.com/hnjm/fsolutions-sub001/addons/erpbase"
)

const MODULE_NAME string = "cleardata"

var log logging.Logger

func init() {
	log = logging.GetLogger("cleardata")
	server.RegisterModule(&server.Module{
		Name:     MODULE_NAME,
		PreInit:  func() {},
		PostInit: func() {},
	})

	move := models.Registry.MustGet("AccountMove")

	move.NewMethod("ActionForceDelete",
		func(rc *models.RecordCollection) {
			if rc.IsEmpty() {
				return
			}
			for _, move := range rc.Records() {
				if move.Get(move.Model().FieldName("State")).(string) != "cancel" {
					log.Panic(rc.T("You can't force delete moves not in cancel !"),
						"move", move.Get(move.Model().FieldName("Name")), "state", move.Get(move.Model().FieldName("State")))
				}
			}
			log.Warn("Force deleting accounting moves", "ids", rc.Ids(), "uid", rc.Env().Uid())
			for _, move := range rc.Records() {
				move.Call("ButtonDraft")
				move.Set(move.Model().FieldName("PostedBefore"), false)
				move.Sudo().Call("Unlink")
			}
		})
}
