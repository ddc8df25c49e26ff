package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"galion/internal/apps"
	"galion/internal/config"
	"galion/internal/trace"
	"galion/internal/ui"
)

// LogEnv names the log file when -log is not given.
const LogEnv = "GALION_LOG"

// newTracer builds the exporter-backed tracer; tests replace it.
var newTracer = trace.NewOTLPTracer

type options struct {
	configPath  string
	logPath     string
	writeConfig bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to config.toml (default $"+config.PathEnv+" or ~/"+config.DefaultPath+")")
	flag.StringVar(&opts.logPath, "log", "", "write debug logs to this file (default $"+LogEnv+")")
	flag.BoolVar(&opts.writeConfig, "write-config", false, "write the default config to the config path and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: galion [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Galion is a simulated desktop shell for the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "galion: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	path := config.ResolvePath(opts.configPath)
	if opts.writeConfig {
		cfg := config.DefaultConfig
		if err := config.SaveConfig(&cfg, path); err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	cfg, err := config.LoadAndValidateConfig(path)
	if err != nil {
		return err
	}

	logPath := opts.logPath
	if logPath == "" {
		logPath = os.Getenv(LogEnv)
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "galion")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tracer, err := newTracer(context.Background(), cfg.Tracing.ServiceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	shell := ui.NewShell(ui.Options{
		OSName:            cfg.OSName,
		StatusItems:       cfg.StatusItems,
		TimeLayout:        cfg.Clock.TimeLayout,
		DateLayout:        cfg.Clock.DateLayout,
		Catalog:           apps.NewCatalog(cfg.Launcher.Apps),
		CalendarCacheSize: cfg.Calendar.CacheSize,
		DoubleClick:       cfg.Launcher.DoubleClick(),
		Tracer:            tracer,
	})
	defer shell.Teardown()

	log.Printf("config: path=%s apps=%d", path, len(cfg.Launcher.Apps))
	p := tea.NewProgram(shell.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
