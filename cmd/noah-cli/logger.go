// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/noah-blockchain/noah-go-sdk/config"
)

const (
	logPrefix     = "noah-cli"
	logMaxSize    = 8 // megabytes
	logMaxAge     = 7 // days
	logMaxBackups = 4
)

// newLogger writes to stderr, and to a rotated file when a log directory is
// configured.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	consoleCore := logging.NewWrappedCore(cfg.LogLevel, os.Stderr, logging.Colors.ConsoleEncoder())
	cores := []logging.WrappedCore{consoleCore}

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0o755); err != nil {
			return nil, err
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, logPrefix+".log"),
			MaxSize:    logMaxSize,
			MaxAge:     logMaxAge,
			MaxBackups: logMaxBackups,
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(cfg.LogLevel, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger(logging.Colors.WrapPrefix(logPrefix), cores...), nil
}
