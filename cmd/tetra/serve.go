package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tetra SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetra/host_key

Examples:
  tetra serve                           # Listen on :23234 with auto-generated key
  tetra serve --ssh :2222               # Listen on port 2222
  tetra serve --host-key ./my_host_key  # Use specific host key
  TETRA_DB=./scores.db tetra serve      # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = viper.GetString(keyDB)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = viper.GetInt(keyFPS)
	cfg.MaxLevel = loadRules().Levels.Max

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("tetra-ssh"))
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "address", server.Addr())
	return server.ListenAndServe()
}
