package main

import (
	"path/filepath"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func openLog(verbose bool, logFile string) (*zap.Logger, error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	// Send info to stderr
	stderrEncoder := zap.NewDevelopmentEncoderConfig()
	stderrEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
	stderrLog, err := (zap.Config{
		Level:         zap.NewAtomicLevelAt(level),
		Encoding:      "console",
		EncoderConfig: stderrEncoder,
		OutputPaths:   []string{"stderr"},
	}).Build()
	if err != nil {
		return nil, errs.Wrap(err)
	}

	if logFile == "" {
		return stderrLog, nil
	}

	// Send debug to file as JSON
	logPath, err := filepath.Abs(logFile)
	if err != nil {
		return nil, errs.Wrap(err)
	}
	fileEncoder := zap.NewProductionEncoderConfig()
	fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	fileLog, err := (zap.Config{
		Level:         zap.NewAtomicLevelAt(zap.DebugLevel),
		Encoding:      "json",
		EncoderConfig: fileEncoder,
		OutputPaths:   []string{"file://" + logPath},
	}).Build()
	if err != nil {
		return nil, errs.Wrap(err)
	}

	return zap.New(zapcore.NewTee(stderrLog.Core(), fileLog.Core())), nil
}
