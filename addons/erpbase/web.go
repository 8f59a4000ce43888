// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package erpbase

import (
	"net/http"

	"github.com/hexya-erp/hexya/src/controllers"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/models/security"
	"github.com/hexya-erp/hexya/src/server"
)

func declareWebControllers() {
	user := models.Registry.MustGet("User")

	user.NewMethod("SessionInfo",
		func(rc *models.RecordCollection) map[string]interface{} {
			rc.EnsureOne()
			return map[string]interface{}{
				"uid":          rc.Ids()[0],
				"name":         rc.Get(rc.Model().FieldName("Name")).(string),
				"username":     rc.Get(rc.Model().FieldName("Login")).(string),
				"is_superuser": rc.Ids()[0] == security.SuperUserID,
				"user_context": map[string]interface{}{},
			}
		})

	controllers.Registry.AddController(http.MethodPost, "/web/session/get_session_info", getSessionInfo)
}

func getSessionInfo(c *server.Context) {
	uid, ok := c.Session().Get("uid").(int64)
	if !ok {
		c.RPC(http.StatusOK, map[string]interface{}{})
		return
	}
	var res map[string]interface{}
	err := models.ExecuteInNewEnvironment(uid, func(env models.Environment) {
		users := env.Pool("User")
		res = users.Search(users.Model().Field(users.Model().FieldName("ID")).Equals(uid)).
			Call("SessionInfo").(map[string]interface{})
	})
	c.RPC(http.StatusOK, res, err)
}
