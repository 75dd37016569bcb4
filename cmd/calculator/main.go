package main

import (
	"flag"
	"log/slog"
	"os"

	"ventanaCalc/internal/app"
)

func main() {
	envHelp := flag.Bool("env", false, "print supported environment variables and exit")
	flag.Parse()

	if *envHelp {
		if err := app.Usage(); err != nil {
			slog.Error("usage failed", "error", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := app.LoadCfg()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	a := app.New(cfg)
	if err := a.Run(); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}
