// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the composite CLI commands.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/compositekit/composite/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "composite",
	Short: "Build, perform, and price composite trees",
	Long: `Composite builds tree hierarchies of leaf and container nodes and runs
them through one uniform operation: performing a tree writes each leaf's
line in depth-first order, with decorator nodes framing their children's
output. The price command aggregates a nested catalog of priced items.`,

	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/composite/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Defaults must be in place even without a config file.
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("COMPOSITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}
