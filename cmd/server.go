// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/hexya-erp/hexya/src/actions"
	"github.com/hexya-erp/hexya/src/controllers"
	"github.com/hexya-erp/hexya/src/i18n"
	"github.com/hexya-erp/hexya/src/menus"
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/reports"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/hexya-erp/hexya/src/templates"
	"github.com/hexya-erp/hexya/src/tools/logging"
	"github.com/hexya-erp/hexya/src/views"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the fsolutions server",
	Long:  `Start the fsolutions server with all the business extension modules loaded.`,
	Run: func(cmd *cobra.Command, args []string) {
		StartServer()
	},
}

// StartServer bootstraps the framework and runs the http server.
func StartServer() {
	setupLogger()
	setupDebug()
	server.PreInit()
	connectToDB()
	models.BootStrap()
	i18n.BootStrap()
	resourceDir := resourceDirectory()
	server.ResourceDir = resourceDir
	server.LoadTranslations(resourceDir, viper.GetStringSlice("Server.Languages"))
	server.LoadInternalResources(resourceDir)
	views.BootStrap()
	templates.BootStrap()
	actions.BootStrap()
	reports.BootStrap()
	controllers.BootStrap()
	menus.BootStrap()
	server.PostInit()

	srv := server.GetServer()
	address := fmt.Sprintf("%s:%s", viper.GetString("Server.Interface"), viper.GetString("Server.Port"))
	cert := viper.GetString("Server.Certificate")
	key := viper.GetString("Server.PrivateKey")
	domain := viper.GetString("Server.Domain")
	switch {
	case cert != "":
		srv.RunTLS(address, cert, key)
	case domain != "":
		srv.RunAutoTLS(domain)
	default:
		srv.Run(address)
	}
}

func resourceDirectory() string {
	resourceDir, err := filepath.Abs(viper.GetString("ResourceDir"))
	if err != nil {
		log.Panic("Unable to find resource directory", "error", err)
	}
	return resourceDir
}

func setupLogger() {
	logging.Initialize()
	log = logging.GetLogger("init")
}

func setupDebug() {
	if !viper.GetBool("Debug") {
		return
	}
	gin.SetMode(gin.DebugMode)
	pprof.Register(server.GetServer().Engine)
}

func connectToDB() {
	models.DBConnect(viper.GetString("DB.Driver"), models.ConnectionParams{
		DBName:   viper.GetString("DB.Name"),
		Host:     viper.GetString("DB.Host"),
		Port:     viper.GetString("DB.Port"),
		User:     viper.GetString("DB.User"),
		Password: viper.GetString("DB.Password"),
		SSLMode:  viper.GetString("DB.SSLMode"),
	})
}

func init() {
	serverCmd.PersistentFlags().StringP("interface", "i", "", "Interface on which the server should listen. Empty string is all interfaces")
	viper.BindPFlag("Server.Interface", serverCmd.PersistentFlags().Lookup("interface"))
	serverCmd.PersistentFlags().StringP("port", "p", "8080", "Port on which the server should listen.")
	viper.BindPFlag("Server.Port", serverCmd.PersistentFlags().Lookup("port"))
	serverCmd.PersistentFlags().StringSliceP("languages", "l", []string{}, "Comma separated list of language codes to load (ex: fr,ar).")
	viper.BindPFlag("Server.Languages", serverCmd.PersistentFlags().Lookup("languages"))
	serverCmd.PersistentFlags().StringP("domain", "d", "", "Domain name of the server. When set, interface and port are set to 0.0.0.0:443 and it will automatically get an HTTPS certificate from Letsencrypt")
	viper.BindPFlag("Server.Domain", serverCmd.PersistentFlags().Lookup("domain"))
	serverCmd.PersistentFlags().StringP("certificate", "C", "", "Certificate file for HTTPS. If neither certificate nor domain is set, the server will run on plain HTTP. When certificate is set, private-key must also be set.")
	viper.BindPFlag("Server.Certificate", serverCmd.PersistentFlags().Lookup("certificate"))
	serverCmd.PersistentFlags().StringP("private-key", "K", "", "Private key file for HTTPS.")
	viper.BindPFlag("Server.PrivateKey", serverCmd.PersistentFlags().Lookup("private-key"))
	RootCmd.AddCommand(serverCmd)
}
