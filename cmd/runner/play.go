package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/jungle-runner/internal/audio"
	"github.com/vovakirdan/jungle-runner/internal/core"
	"github.com/vovakirdan/jungle-runner/internal/games/runner"
	"github.com/vovakirdan/jungle-runner/internal/platform/spectate"
	"github.com/vovakirdan/jungle-runner/internal/platform/tui"
	"github.com/vovakirdan/jungle-runner/internal/storage"
)

var (
	flagMute     bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jungle Runner",
	Long: `Start a local game.

Controls:
  Enter        - Start (home screen) / Restart (game over)
  Space/Up/W   - Jump
  Down/S       - Slide
  P/Esc        - Pause / Resume
  R            - Restart (after game over)
  H            - Home (paused or game over)
  Ctrl+S       - Save a screenshot to ~/.runner/screenshots
  Q/Ctrl+C     - Quit

Examples:
  runner play
  runner play --difficulty easy
  runner play --seed 42 --mute
  runner play --spectate :8080   # let others watch at ws://host:8080/watch?id=local`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator feed on this address")
}

func runPlay(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("runner", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	gameOpts := []runner.Option{runner.WithLogger(logger)}
	var modelOpts []tui.ModelOption
	modelOpts = append(modelOpts, tui.WithModelLogger(logger))

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		gameOpts = append(gameOpts, runner.WithHighScoreStore(store.ForGame(gameID)))
		modelOpts = append(modelOpts, tui.WithRunRecorder(store))
	}

	if !flagMute {
		sounds := audio.NewSoundBoard(logger.WithPrefix("audio"))
		if err := sounds.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sounds.Close()
			gameOpts = append(gameOpts, runner.WithSound(sounds))
		}
	}

	var hub *spectate.Hub
	if flagSpectate != "" {
		hub = spectate.NewHub(spectate.WithHubLogger(logger.WithPrefix("spectate")))
		defer hub.Close()
		srv := &http.Server{
			Addr:              flagSpectate,
			Handler:           spectate.NewHandler(hub).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("spectator server failed", "error", err)
			}
		}()
		defer srv.Close()
		modelOpts = append(modelOpts, tui.WithPublisher(hub, "local"))
	}

	game := runner.New(runnerCfg, gameOpts...)
	runErr := tui.Run(game, rt, modelOpts...)
	if hub != nil {
		hub.End("local")
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
