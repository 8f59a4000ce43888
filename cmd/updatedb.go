// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"github.com/hexya-erp/hexya/src/models"
	"github.com/hexya-erp/hexya/src/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var updateDBCmd = &cobra.Command{
	Use:   "updatedb",
	Short: "Update the database schema",
	Long:  `Synchronize the database schema with the models definitions.`,
	Run: func(cmd *cobra.Command, args []string) {
		UpdateDB()
	},
}

// UpdateDB updates the database schema and loads the data records.
func UpdateDB() {
	setupLogger()
	setupDebug()
	server.PreInit()
	connectToDB()
	models.BootStrap()
	models.SyncDatabase()
	resourceDir := resourceDirectory()
	server.ResourceDir = resourceDir
	server.LoadDataRecords(resourceDir)
	if viper.GetBool("Demo") {
		log.Info("Demo mode detected: loading demo data")
		server.LoadDemoRecords(resourceDir)
	}
	log.Info("Database updated successfully")
}

func init() {
	updateDBCmd.PersistentFlags().Bool("demo", false, "Load demo data after updating the schema")
	viper.BindPFlag("Demo", updateDBCmd.PersistentFlags().Lookup("demo"))
	RootCmd.AddCommand(updateDBCmd)
}
