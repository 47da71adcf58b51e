// Command floyd finds every minimum-weight path between two nodes of a
// weighted directed graph given as an adjacency matrix.
//
//	floyd demo
//	floyd solve --matrix graph.yaml --from 0 --to 2
//	floyd solve a.yaml b.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/floydpaths/internal/config"
	"github.com/katalvlaran/floydpaths/internal/telemetry"
	"github.com/katalvlaran/floydpaths/observe"
)

// version is overridden at link time.
var version = "dev"

// shutdownTimeout bounds the final span flush when the collector is unreachable.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by every subcommand once the root pre-run is done.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	tel    *telemetry.Provider
	inst   *observe.Instruments
	out    io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		envFile    string
		logLevel   string
		a          = &app{out: out}
	)

	rootCmd := &cobra.Command{
		Use:          "floyd",
		Short:        "Enumerate all shortest paths with retained Floyd–Warshall snapshots",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.Context(), errOut, configPath, envFile, logLevel)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(cmd.Context())
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before the environment is read")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newSolveCmd(a), newDemoCmd(a))

	return rootCmd
}

func (a *app) init(ctx context.Context, errOut io.Writer, configPath, envFile, logLevel string) error {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	a.cfg = cfg

	a.logger, err = observe.NewConsoleLogger(errOut, cfg.LogLevel(), cfg.Log.Timestamps)
	if err != nil {
		return err
	}
	for _, w := range cfg.Validate() {
		a.logger.Warn(w)
	}

	a.tel, err = telemetry.Init(ctx, &telemetry.Config{
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	a.inst, err = observe.NewInstruments(a.tel.Tracer(), a.tel.Meter())
	if err != nil {
		return fmt.Errorf("init instruments: %w", err)
	}
	a.logger.Debug("configured",
		"workers", cfg.WorkerLimit(),
		"tracing", a.tel.Enabled(),
	)

	return nil
}

func (a *app) close(ctx context.Context) error {
	if a.tel == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return a.tel.Shutdown(ctx)
}
