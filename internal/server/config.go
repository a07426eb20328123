package server

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/eventtickets/eventtickets/internal/logging"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultEnv           = EnvProduction
	DefaultAllowedOrigin = "http://localhost:3000"
	DefaultAddr          = ":8080"
	DefaultTLSAddr       = ":8443"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	// Env is the deployment mode label, echoed by /api/v1/info.
	Env            string         `mapstructure:"env" validate:"required"`
	AllowedOrigins []string       `mapstructure:"allowed_origins" validate:"min=1,dive,http_url"`
	HTTP           HTTPConfig     `mapstructure:"http"`
	Log            logging.Config `mapstructure:"log"`
}

type HTTPConfig struct {
	Addr     string `mapstructure:"addr" validate:"required,hostname_port"`
	TLSAddr  string `mapstructure:"tls_addr" validate:"omitempty,hostname_port"`
	CertFile string `mapstructure:"cert_file" validate:"required_with=KeyFile"`
	KeyFile  string `mapstructure:"key_file" validate:"required_with=CertFile"`
	// HTTPSHost overrides the host[:port] of HTTPS redirect targets.
	HTTPSHost string `mapstructure:"https_host"`
	// RateLimit in "<limit>-<S|M|H|D>" form. Empty disables rate limiting.
	RateLimit string `mapstructure:"rate_limit"`
}

// DefaultConfig is what the process runs with when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Env:            DefaultEnv,
		AllowedOrigins: []string{DefaultAllowedOrigin},
		HTTP: HTTPConfig{
			Addr:    DefaultAddr,
			TLSAddr: DefaultTLSAddr,
		},
		Log: logging.Config{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// IsDevelopment matches the environment name case-insensitively.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), EnvDevelopment)
}

func (c *Config) TLSEnabled() bool {
	return c.HTTP.CertFile != "" && c.HTTP.KeyFile != ""
}

// TLSPort is the port of the TLS listener, empty when TLS is off.
func (c *Config) TLSPort() string {
	if !c.TLSEnabled() {
		return ""
	}
	_, port, err := net.SplitHostPort(c.HTTP.TLSAddr)
	if err != nil {
		return ""
	}
	return port
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("invalid config: %w", errors.Join(fieldErrors(verrs)...))
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.TLSEnabled() && c.HTTP.TLSAddr == "" {
		return fmt.Errorf("invalid config: `http.tls_addr` is required when tls is enabled")
	}

	if c.HTTP.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.HTTP.RateLimit); err != nil {
			return fmt.Errorf("invalid config: `http.rate_limit` %q: %w", c.HTTP.RateLimit, err)
		}
	}
	return nil
}

// ParseOrigins splits comma separated entries, trims them and drops empty ones.
// Nothing left means the default origin.
func ParseOrigins(values ...string) []string {
	origins := make([]string, 0, len(values))
	for _, v := range values {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		return []string{DefaultAllowedOrigin}
	}
	return origins
}

func fieldErrors(verrs validator.ValidationErrors) []error {
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "required_with":
			errs = append(errs, fmt.Errorf("`%s` is required", fe.Namespace()))
		case "http_url":
			errs = append(errs, fmt.Errorf("`%s` must be an http(s) origin, got %q", fe.Namespace(), fe.Value()))
		case "hostname_port":
			errs = append(errs, fmt.Errorf("`%s` must be host:port, got %q", fe.Namespace(), fe.Value()))
		case "oneof":
			errs = append(errs, fmt.Errorf("`%s` must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
		default:
			errs = append(errs, fmt.Errorf("`%s` failed %q validation", fe.Namespace(), fe.Tag()))
		}
	}
	return errs
}
