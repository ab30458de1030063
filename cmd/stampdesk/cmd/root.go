// Package cmd implements the stampdesk CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/stampdesk/stampdesk/internal/api/client"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "stampdesk",
		Short: "Create eBay listings for postcards and stamps",
		Long: "stampdesk runs the listing pipeline for postcard and stamp\n" +
			"collections: it resolves categories from country of origin,\n" +
			"uploads photos, assembles Trading API requests, and submits\n" +
			"them to eBay, recording every attempt.",
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		submitCmd(),
		verifyCmd(),
		historyCmd(),
		categoryCmd(),
		conditionCmd(),
		policiesCmd(),
		extractCmd(),
		versionCommand(),
	)
}

func initConfig() {
	viper.SetEnvPrefix("STAMPDESK")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
