// Command stardate converts between Earth calendar dates and the
// stardates of the Kelvin timeline Star Trek films, following Roberto
// Orci's ordinal-date description.
//
// "Captain's log, stardate 2258.42..."
//
// Run bare for the interactive menu, or use flags and subcommands for
// scripting. A canon reference table of film dates is built in.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KylieKat17/kelvin-stardate/internal/cli"
	"github.com/KylieKat17/kelvin-stardate/internal/config"
)

func main() {
	cfg := config.Load()

	// Logs go to stderr; stdout carries the conversion output and has to
	// stay pipeable. A configured log dir tees to a rotating file too.
	var logWriter io.Writer = os.Stderr
	if cfg.LogDir != "" {
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, "stardate.log"),
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		logWriter = io.MultiWriter(os.Stderr, rotator)
	}

	// Warn by default keeps casual runs quiet; --verbose lowers the
	// level to debug after flags parse.
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)

	var logger *slog.Logger
	if cfg.LogFormat == "json" {
		logger = slog.New(slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: level}))
	} else {
		logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level}))
	}

	os.Exit(cli.Execute(context.Background(), *cfg, logger, level, os.Args[1:]))
}
