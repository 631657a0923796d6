package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/errs"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/fancy"
	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

type exportConfig struct {
	rootConfig *rootConfig
	CSVPath    string
	Output     string
	Game       string
	Note       string
	Force      bool
}

func newExportCommand(rootConfig *rootConfig) *cobra.Command {
	config := &exportConfig{
		rootConfig: rootConfig,
	}
	cmd := &cobra.Command{
		Use:   "export <csv>",
		Short: "Re-export the visible records of a CSV file with raw fields intact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.CSVPath = args[0]
			if config.Output == "" {
				return usageErr.New("--output is required")
			}
			return checkCmd(doExport(config))
		},
	}
	cmd.Flags().StringVarP(
		&config.Output,
		"output", "o",
		"",
		"Path to write the exported CSV to")
	cmd.Flags().StringVarP(
		&config.Game,
		"game", "",
		monitor.AllGames,
		"Export only records for this game")
	cmd.Flags().StringVarP(
		&config.Note,
		"note", "",
		"",
		"Export only records whose note contains this text")
	cmd.Flags().BoolVarP(
		&config.Force,
		"force", "f",
		false,
		"Overwrite the output file without confirmation")
	return cmd
}

func doExport(config *exportConfig) error {
	store, err := openStore(config.rootConfig)
	if err != nil {
		return err
	}
	if err := store.ImportFile(config.CSVPath); err != nil {
		return err
	}

	visible := monitor.Visible(store.Records(), config.Game, config.Note)
	out := csv.Encode(monitor.RawRows(visible))

	if !config.Force {
		if _, err := os.Stat(config.Output); err == nil {
			if err := promptConfirm(fmt.Sprintf("Overwrite %s", config.Output)); err != nil {
				return err
			}
		}
	}

	if err := os.WriteFile(config.Output, []byte(out), 0644); err != nil {
		return errs.Wrap(err)
	}
	fancy.Printf(fancy.Info, "Wrote %d records to %s\n", len(visible), config.Output)
	return nil
}
