package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

type reportConfig struct {
	rootConfig *rootConfig
	CSVPath    string
	Game       string
	Note       string
}

func newReportCommand(rootConfig *rootConfig) *cobra.Command {
	config := &reportConfig{
		rootConfig: rootConfig,
	}
	cmd := &cobra.Command{
		Use:   "report <csv>",
		Short: "Render the KPI grid and per-game summary for a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.CSVPath = args[0]
			return checkCmd(doReport(config))
		},
	}
	cmd.Flags().StringVarP(
		&config.Game,
		"game", "",
		monitor.AllGames,
		"Show only records for this game")
	cmd.Flags().StringVarP(
		&config.Note,
		"note", "",
		"",
		"Show only records whose note contains this text")
	return cmd
}

func doReport(config *reportConfig) error {
	store, err := openStore(config.rootConfig)
	if err != nil {
		return err
	}
	if err := store.ImportFile(config.CSVPath); err != nil {
		return err
	}

	visible := monitor.Visible(store.Records(), config.Game, config.Note)
	renderGrid(os.Stdout, visible)
	renderSummary(os.Stdout, monitor.Summarize(visible))
	return nil
}
