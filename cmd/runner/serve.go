package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-runner/internal/platform/spectate"
	"github.com/vovakirdan/jungle-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that allows remote players to connect and play.

Each connection gets its own run. High scores and run history are shared
through the runs database. With --http, every live run can be watched as a
JSON frame stream over websockets.

Examples:
  runner serve                          # Listen on :23234
  runner serve --ssh :2222              # Custom port
  runner serve --http :8080             # Also serve spectators
  runner serve --host-key ~/.ssh/runner_key

Connect with:
  ssh -p 23234 localhost

Watch with:
  curl localhost:8080/sessions
  websocat ws://localhost:8080/watch?id=<session>`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Spectator HTTP listen address (disabled when empty)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if not exists)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes")
}

func runServe(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("runner", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Runner:      runnerCfg,
	}

	var hub *spectate.Hub
	if flagHTTPAddr != "" {
		hub = spectate.NewHub(spectate.WithHubLogger(logger.WithPrefix("spectate")))
		defer hub.Close()
		cfg.Spectators = hub

		srv := &http.Server{
			Addr:              flagHTTPAddr,
			Handler:           spectate.NewHandler(hub).Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("spectator server listening", "address", flagHTTPAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("spectator server failed", "error", err)
			}
		}()
		defer srv.Close()
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Jungle Runner SSH server\n")
	fmt.Printf("Listening on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh -p %s localhost\n", portOf(flagSSHAddr))
	if hub != nil {
		fmt.Printf("Spectators: http://localhost%s/sessions\n", flagHTTPAddr)
	}
	fmt.Printf("Press Ctrl+C to stop\n\n")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// portOf extracts the port from a listen address like ":23234" or "0.0.0.0:2222".
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
