package main

import (
	"fmt"
	"os"

	"fjacquet/work-metrics/cmd/analyze"
	"fjacquet/work-metrics/cmd/export"
	"fjacquet/work-metrics/cmd/report"
	"fjacquet/work-metrics/cmd/root"
	"fjacquet/work-metrics/cmd/top"
	"fjacquet/work-metrics/internal/config"

	"github.com/sirupsen/logrus"
)

func init() {
	// Environment first, so LOG_LEVEL from .env applies before any logging.
	config.LoadEnv()
	level := config.LogLevelFromEnv()
	logrus.SetLevel(level)
	root.Log.SetLevel(level)

	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(top.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
