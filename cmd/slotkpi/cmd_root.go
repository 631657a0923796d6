package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

type rootConfig struct {
	ConfigPath string
	LogFile    string
	Verbose    bool
}

func newRootCommand() *cobra.Command {
	config := new(rootConfig)
	cmd := &cobra.Command{
		Use:     "slotkpi",
		Short:   "Monitor daily slot machine KPI records",
		Version: getVersion(),
	}
	cmd.PersistentFlags().StringVarP(
		&config.ConfigPath,
		"config", "",
		"",
		"Path to the TOML config (defaults to ~/.slotkpi.toml when present)")
	cmd.PersistentFlags().StringVarP(
		&config.LogFile,
		"log-file", "",
		"",
		"Write a debug JSON log to this file")
	cmd.PersistentFlags().BoolVarP(
		&config.Verbose,
		"verbose", "v",
		false,
		"Log debug detail to stderr")

	cmd.AddCommand(newReportCommand(config))
	cmd.AddCommand(newExportCommand(config))
	cmd.AddCommand(newSampleCommand(config))
	return cmd
}

func getVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return runtime.Version()
	}
	return fmt.Sprintf("%s (%s)", info.Main.Version, runtime.Version())
}
