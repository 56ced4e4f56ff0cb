// Package cli implements the hpges command line tool.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	appconfig "github.com/tdixon97/legend-pygeom-hpges/config"
)

var log = appconfig.NamedLogger("cli")

var configFile string

// Launch ...
func Launch() {
	var rootCmd = &cobra.Command{
		Use:   "hpges",
		Short: "inspect and export HPGe detector geometries from metadata",
	}
	rootCmd.PersistentFlags().StringVar(
		&configFile, "config", "", "config file (HPGES_* env vars also apply)",
	)
	rootCmd.AddCommand(cmdInfo, cmdProfile, cmdExport)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func readConfig() appconfig.Config {
	conf, err := appconfig.Read(configFile)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if err := appconfig.SetLoggerLevel(log, conf.LoggingLevel); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	return conf
}
