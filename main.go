package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectbox/internal/config"
	"selectbox/internal/eventbus"
	"selectbox/internal/logging"
	"selectbox/internal/ui"
)

var version = "dev"

type options struct {
	configPath string
	logFile    string
	logLevel   string
	filter     string
	mouse      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "selectbox [config]",
		Short:         "Terminal select and multi-select fields driven by a TOML file",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.configPath = args[0]
			}
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default is the user config directory)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Log file (default "+logging.DefaultFile+")")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Search matching: substring or fuzzy")
	cmd.Flags().BoolVar(&opts.mouse, "mouse", true, "Enable mouse support")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	path := opts.configPath
	if path == "" {
		path = configSvc.Path()
	}

	cfg, existed, err := loadOrCreateConfig(configSvc, path)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.UI.LogFile, cfg.UI.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", version, "config", path, "fields", len(cfg.Fields))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(bus, cfg, logger)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Saving happens on the bus goroutine against its own copy of the config
	persisted := cloneConfig(cfg)
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		for name, value := range event.Values {
			persisted.SetFieldValue(name, value)
		}
		if err := configSvc.SaveToPath(persisted, path); err != nil {
			logger.Error("failed to save config", "path", path, "error", err)
			bus.Publish(eventbus.ErrorEvent{Message: "Failed to save config", Err: err})
			return
		}
		logger.Debug("config saved", "path", path)
		bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	})

	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventConfigSaved, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ValueChangedEvent); ok {
			logger.Debug("value changed", "field", event.Field, "display", event.Display)
		}
	})
	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AppReadyEvent); ok {
			logger.Info("ready", "existing_config", event.HasExistingConfig, "fields", event.Fields)
		}
	})
	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: existed, Fields: len(cfg.Fields)})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}

// loadOrCreateConfig loads the config at path, writing the default one
// when the file does not exist yet
func loadOrCreateConfig(configSvc config.ConfigService, path string) (*config.Config, bool, error) {
	cfg, err := configSvc.LoadFromPath(path)
	if err == nil {
		return cfg, true, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return nil, false, err
	}

	cfg = config.DefaultConfig()
	if err := configSvc.SaveToPath(cfg, path); err != nil {
		slog.Warn("failed to write default config", "path", path, "error", err)
	}
	return cfg, false, nil
}

// applyFlags lets explicitly set flags override the config file
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.UI.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.UI.LogLevel = opts.logLevel
	}
	if flags.Changed("filter") {
		cfg.UI.Filter = opts.filter
	}
	if flags.Changed("mouse") {
		cfg.UI.Mouse = opts.mouse
	}
}

func cloneConfig(cfg *config.Config) *config.Config {
	out := *cfg
	out.Fields = make([]config.Field, len(cfg.Fields))
	copy(out.Fields, cfg.Fields)
	return &out
}
