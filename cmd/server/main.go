package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eventtickets/eventtickets/internal/logging"
	"github.com/eventtickets/eventtickets/internal/server"
	"github.com/eventtickets/eventtickets/internal/version"
)

const (
	envPrefix      = "TICKETS"
	configFileName = "config"
	etcConfigDir   = "/etc/eventtickets"
)

var (
	cyan = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	gray = color.New(color.FgHiBlack).SprintFunc()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server",
		Short:   "Event Ticket Manager API gateway",
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

			// config is good, usage is noise from here on
			cmd.SilenceUsage = true
			showHeader(cmd.OutOrStdout(), cfg)

			srv, err := server.New(cfg)
			if err != nil {
				return err
			}

			defer slog.Info("Bye!")
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the http listener")
	cmd.Flags().String("env", server.DefaultEnv, "Runtime environment, 'development' enables api docs and disables the https redirect")
	cmd.Flags().String("allowed-origins", server.DefaultAllowedOrigin, "Comma separated list of origins allowed by CORS")
	cmd.Flags().String("cert", "", "Path to the TLS certificate file")
	cmd.Flags().String("key", "", "Path to the TLS key file")
	cmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringP("config", "f", "", "Path to the config file")

	cmd.AddCommand(newHealthcheckCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	// until the config is read
	_, _ = logging.Setup(os.Stdout, logging.Config{Level: "info", Format: logging.FormatText})

	// Setup root context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges defaults, the config file, environment variables and flags,
// in increasing order of precedence.
func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	v := viper.New()

	defaults := server.DefaultConfig()
	v.SetDefault("env", defaults.Env)
	v.SetDefault("allowed_origins", strings.Join(defaults.AllowedOrigins, ","))
	v.SetDefault("http.addr", defaults.HTTP.Addr)
	v.SetDefault("http.tls_addr", defaults.HTTP.TLSAddr)
	v.SetDefault("http.cert_file", "")
	v.SetDefault("http.key_file", "")
	v.SetDefault("http.https_host", "")
	v.SetDefault("http.rate_limit", "")
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.file", "")

	// config path
	if f := cmd.Flag("config"); f != nil && f.Changed {
		v.SetConfigFile(f.Value.String())
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(etcConfigDir)
		v.SetConfigName(configFileName)
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		enoent := errors.Is(err, os.ErrNotExist)
		_, ok := err.(viper.ConfigFileNotFoundError)
		if !enoent && !ok {
			return nil, fmt.Errorf("config read '%s': %w", v.ConfigFileUsed(), err)
		}
	}

	// Bind flags to viper
	v.BindPFlag("env", cmd.Flags().Lookup("env"))
	v.BindPFlag("allowed_origins", cmd.Flags().Lookup("allowed-origins"))
	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("http.cert_file", cmd.Flags().Lookup("cert"))
	v.BindPFlag("http.key_file", cmd.Flags().Lookup("key"))
	v.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))

	// Set up environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed names the deployment scripts already use
	v.BindEnv("env", envPrefix+"_ENV", "APP_ENV")
	v.BindEnv("allowed_origins", envPrefix+"_ALLOWED_ORIGINS", "ALLOWED_ORIGINS", "AllowedOrigins")

	cfg := &server.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}
	cfg.AllowedOrigins = server.ParseOrigins(cfg.AllowedOrigins...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if path := v.ConfigFileUsed(); path != "" {
		slog.Debug("config loaded", "path", path)
	}
	return cfg, nil
}

func showHeader(w io.Writer, cfg *server.Config) {
	fmt.Fprintln(w, cyan(version.AppName+" API"))
	fmt.Fprintln(w, gray(fmt.Sprintf("version %s, env %s", version.Short(), cfg.Env)))
	fmt.Fprintln(w)
}
