// Copyright 2024 FSolutions SA. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package cmd implements the fsolutions commander.
package cmd

import (
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/hexya-erp/hexya/src/tools/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log logging.Logger

// RootCmd is the base 'fsolutions' command of the commander
var RootCmd = &cobra.Command{
	Use:   "fsolutions",
	Short: "FSolutions business extensions server",
	Long: `FSolutions runs the business extension modules of FSolutions SA:
accounting references, bank fees, branch management, point of sale tooling
and sales pricing, on top of the Hexya ERP framework.`,
}

func init() {
	log = logging.GetLogger("init")
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringP("config", "c", "", "Alternate configuration file to read. Defaults to $HOME/.fsolutions/")
	viper.BindPFlag("ConfigFileName", RootCmd.PersistentFlags().Lookup("config"))

	RootCmd.PersistentFlags().StringP("log-level", "L", "info", "Log level. Should be one of 'debug', 'info', 'warn', 'error' or 'crit'")
	viper.BindPFlag("LogLevel", RootCmd.PersistentFlags().Lookup("log-level"))
	RootCmd.PersistentFlags().String("log-file", "", "File to which the log will be written")
	viper.BindPFlag("LogFile", RootCmd.PersistentFlags().Lookup("log-file"))
	RootCmd.PersistentFlags().BoolP("log-stdout", "o", false, "Enable stdout logging. Use for development or debugging.")
	viper.BindPFlag("LogStdout", RootCmd.PersistentFlags().Lookup("log-stdout"))
	RootCmd.PersistentFlags().Bool("debug", false, "Enable server debug mode for development")
	viper.BindPFlag("Debug", RootCmd.PersistentFlags().Lookup("debug"))

	RootCmd.PersistentFlags().String("resource-dir", "./res", "Path to the directory where resource files are stored")
	viper.BindPFlag("ResourceDir", RootCmd.PersistentFlags().Lookup("resource-dir"))

	RootCmd.PersistentFlags().String("db-driver", "postgres", "Database driver to use")
	viper.BindPFlag("DB.Driver", RootCmd.PersistentFlags().Lookup("db-driver"))
	RootCmd.PersistentFlags().String("db-sslmode", "disable", "Database driver sslmode")
	viper.BindPFlag("DB.SSLMode", RootCmd.PersistentFlags().Lookup("db-sslmode"))
	RootCmd.PersistentFlags().String("db-host", "/var/run/postgresql",
		"The database host to connect to. Values that start with / are for unix domain sockets directory")
	viper.BindPFlag("DB.Host", RootCmd.PersistentFlags().Lookup("db-host"))
	RootCmd.PersistentFlags().String("db-port", "5432", "Database port. Value is ignored if db-host is not set")
	viper.BindPFlag("DB.Port", RootCmd.PersistentFlags().Lookup("db-port"))
	RootCmd.PersistentFlags().String("db-user", "", "Database user. Defaults to current user")
	viper.BindPFlag("DB.User", RootCmd.PersistentFlags().Lookup("db-user"))
	RootCmd.PersistentFlags().String("db-password", "", "Database password. Leave empty when connecting through socket")
	viper.BindPFlag("DB.Password", RootCmd.PersistentFlags().Lookup("db-password"))
	RootCmd.PersistentFlags().String("db-name", "fsolutions", "Database name")
	viper.BindPFlag("DB.Name", RootCmd.PersistentFlags().Lookup("db-name"))
}

func initConfig() {
	cfgFile := viper.GetString("ConfigFileName")
	if runtime.GOOS != "windows" {
		viper.AddConfigPath("/etc/fsolutions")
	}

	osUser, err := user.Current()
	if err != nil {
		log.Panic("Unable to retrieve current user", "error", err)
	}
	defaultDir := filepath.Join(osUser.HomeDir, ".fsolutions")
	viper.SetDefault("DataDir", defaultDir)
	viper.AddConfigPath(defaultDir)
	viper.AddConfigPath(".")

	viper.SetConfigName("fsolutions")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err = viper.ReadInConfig(); err != nil {
		log.Warn("Error while loading configuration file", "error", err)
	}
}
