package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/boxfish/internal/audio"
	"github.com/vovakirdan/boxfish/internal/core"
	"github.com/vovakirdan/boxfish/internal/platform/tui"
	"github.com/vovakirdan/boxfish/internal/storage"
)

var (
	flagStage  string
	flagMute   bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start a run through the stages.

Controls:
  Arrows/WASD/HJKL - Swim
  Space            - Inflate / deflate
  Z/U/Ctrl+Z       - Undo one step
  R                - Reload the stage (steps are kept)
  Enter            - New run after the last stage
  Tab              - Scoreboard
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Examples:
  boxfish play
  boxfish play --stage 02
  boxfish play --mute
  boxfish play --stages-dir ./my-stages --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagStage, "stage", "", "Stage ID to start on")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with results (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile := openLogFile()
	defer logFile.Close()
	logger := newLogger(logFile, "boxfish")

	cfg := mustLoadConfig()
	stages := mustLoadStages()

	if flagStage != "" {
		found := false
		for _, st := range stages {
			if st.ID == flagStage {
				found = true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", flagStage)
			fmt.Fprintln(os.Stderr, "Run 'boxfish stages' to see available stages.")
			os.Exit(1)
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	session := tui.Session{
		Stages:     stages,
		Config:     cfg,
		Store:      store,
		Player:     playerName(),
		StartStage: flagStage,
		Logger:     logger,
	}

	var sounds *audio.Manager
	if cfg.Audio.Enabled && !flagMute {
		sounds = audio.NewManager(cfg.Audio.SampleRate, cfg.Audio.Volume)
		if initErr := sounds.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
			sounds = nil
		} else {
			session.Sink = sounds
		}
	}

	runErr := tui.Run(session, rc)

	if sounds != nil {
		sounds.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName returns --player, $USER or a placeholder.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
