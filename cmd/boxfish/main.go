// boxfish is a terminal logic-gate tile puzzle. Swim a boxfish carrying
// boolean registers through gates and reach the goal of every stage.
//
// Usage:
//
//	boxfish play             - Play the campaign
//	boxfish stages           - List the stages
//	boxfish scores           - Show the best runs and stage records
//	boxfish serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config)
//	--db <path>           - Set database path (default: ~/.boxfish/results.db)
//	--config <path>       - Use a custom config YAML
//	--stages-dir <dir>    - Load stages from a directory instead of the campaign
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/boxfish/internal/config"
	"github.com/vovakirdan/boxfish/internal/stage"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagStagesDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boxfish",
	Short: "Boxfish - a logic gate puzzle in your terminal",
	Long: `Boxfish is a tile puzzle played in the terminal. Your boxfish carries
boolean registers; swimming through logic gates rewrites them and EQUAL
gates only let matching bits pass. Inflate to slip over gates, undo your
mistakes and reach the goal in as few steps as you can.

Available commands:
  play     - Play the campaign
  stages   - List the stages
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  boxfish play
  boxfish play --stage 03
  boxfish play --stages-dir ./my-stages
  boxfish serve --ssh :2222
  boxfish scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.boxfish/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagStagesDir, "stages-dir", "", "Directory of stage files (default: built-in campaign)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile opens ~/.boxfish/boxfish.log for appending so the alternate
// screen stays clean. It falls back to discarding output.
func openLogFile() io.WriteCloser {
	dir := config.UserDir()
	if dir == "" {
		return nopCloser{io.Discard}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(filepath.Join(dir, "boxfish.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// mustLoadConfig loads the config or exits.
func mustLoadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// mustLoadStages loads the stage list or exits.
func mustLoadStages() []*stage.Stage {
	loader := stage.Campaign()
	if flagStagesDir != "" {
		loader = stage.NewLoader(flagStagesDir)
	}

	stages, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stages: %v\n", err)
		os.Exit(1)
	}
	if len(stages) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no stages found")
		os.Exit(1)
	}
	return stages
}

// tickRate returns the --fps flag or the configured rate.
func tickRate(cfg config.Config) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Display.FPS
}
