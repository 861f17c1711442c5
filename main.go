package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"NeonBoard/internal/config"
	"NeonBoard/internal/logging"
	"NeonBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "TOML file with board defaults")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	width := flag.Int("width", 0, "surface width in pixels (overrides the config file)")
	height := flag.Int("height", 0, "surface height in pixels (overrides the config file)")
	historySize := flag.Int("history", 0, "number of undo snapshots to keep")
	flag.Parse()

	if *verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *historySize > 0 {
		cfg.HistorySize = *historySize
	}

	logging.Logger().Debug("starting", "config", *configPath, "width", cfg.Width, "height", cfg.Height, "history", cfg.HistorySize)
	ui.RunApp(cfg)
}
