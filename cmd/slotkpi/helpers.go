package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/go-homedir"
	"github.com/zeebo/errs"

	"github.com/slotops/slot-kpi-monitor/pkg/config"
	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

var (
	usageErr = errs.Class("usage")
)

func checkCmd(err error) error {
	switch {
	case err == nil:
		return nil
	case usageErr.Has(err):
		// If it is a usage error, return it directly so cobra command will
		// show usage. Otherwise, print and exit with non-zero exit status.
		return err
	}
	// other errors exit with 2
	fmt.Fprintf(os.Stderr, "error: %+v\n", err)
	os.Exit(2)
	return err
}

func promptConfirm(label string) error {
	_, err := (&promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}).Run()
	if err != nil {
		return errors.New("aborted")
	}
	return nil
}

func loadConfig(rootConfig *rootConfig) (config.Config, error) {
	path := rootConfig.ConfigPath
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return config.Config{}, errs.Wrap(err)
		}
		path = filepath.Join(home, ".slotkpi.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		if dump := config.DumpUnknownFields(err); dump != "" {
			fmt.Fprintln(os.Stderr, dump)
		}
		return config.Config{}, err
	}
	return cfg, nil
}

func openStore(rootConfig *rootConfig) (*monitor.Store, error) {
	cfg, err := loadConfig(rootConfig)
	if err != nil {
		return nil, err
	}
	log, err := openLog(rootConfig.Verbose, rootConfig.LogFile)
	if err != nil {
		return nil, err
	}
	calc := kpi.NewCalculator(cfg.KPIThresholds())
	return monitor.NewStore(log, calc, cfg.ImportDefaults()), nil
}
