package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eventtickets/eventtickets/internal/logging"
	"github.com/eventtickets/eventtickets/internal/version"
	"github.com/eventtickets/eventtickets/internal/web"
)

const envPrefix = "TICKETS_WEB"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "web",
		Short:   "Event Ticket Manager landing page",
		Version: version.Detailed(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			closeLog, err := logging.Setup(os.Stdout, cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()
			cmd.SilenceUsage = true

			srv, err := web.New(cfg)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringP("bind", "b", web.DefaultAddr, "Address to bind the landing page server")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")

	return cmd
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads flags and TICKETS_WEB_* environment variables.
func loadConfig(cmd *cobra.Command) (*web.Config, error) {
	v := viper.New()
	v.SetDefault("addr", web.DefaultAddr)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
	v.SetDefault("log.file", "")

	v.BindPFlag("addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &web.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
