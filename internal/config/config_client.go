package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/solid-pod/models"
)

const (
	defaultClientServerURL = "http://localhost:8080"
	defaultClientTimeout   = 10 * time.Second
	defaultClientKeyID     = "solid-pod-client"
)

// ErrInvalidClientConfigs indicates an unknown client auth mode or a missing
// bearer token.
var ErrInvalidClientConfigs = errors.New("invalid client configuration")

// ClientConfig configures the solid-pod command line client.
// Flags win over environment variables, which win over defaults.
type ClientConfig struct {
	// ServerURL is the pod base URL.
	// Env: POD_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Timeout bounds every request.
	// Env: POD_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// AuthMode is the credential kind sent with resource requests.
	// Env: POD_AUTH_MODE
	AuthMode string `env:"AUTH_MODE"`

	// BearerToken is required in bearer mode.
	// Env: POD_BEARER_TOKEN
	BearerToken string `env:"BEARER_TOKEN" json:"-"`

	// PKIKeyID prefixes the timestamp of the pki "Auth" header.
	// Env: POD_PKI_KEY_ID
	PKIKeyID string `env:"PKI_KEY_ID"`

	LogLevel string `env:"LOG_LEVEL"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"POD_"`
}

// GetClientConfig parses client flags from args and merges them with the
// process environment. The positional arguments (command and its operands)
// are returned untouched.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	return getClientConfig(args, nil)
}

func getClientConfig(args []string, environ map[string]string) (*ClientConfig, []string, error) {
	flagsCfg, positional, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	envCfg := &clientEnv{}
	if err = parseEnv(envCfg, environ); err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{flagsCfg, &envCfg.Client, defaultClientConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err = cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, positional, nil
}

// Mode returns the parsed client auth mode.
func (c *ClientConfig) Mode() (models.AuthMode, error) {
	return models.ParseAuthMode(c.AuthMode)
}

func (c *ClientConfig) validate() error {
	mode, err := c.Mode()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, err)
	}

	if mode == models.AuthModeBearer && c.BearerToken == "" {
		return fmt.Errorf("%w: bearer mode requires a token", ErrInvalidClientConfigs)
	}

	return nil
}

// parseClientFlags parses args into a partially filled client config.
//
// Flags:
//
//	-u, --server        pod base URL
//	-t, --timeout       request timeout (e.g. "10s")
//	    --auth          auth mode (none|bearer|pki)
//	    --bearer-token  bearer token
//	    --key-id        pki key id
//	    --log-level     log level
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{}

	fs := pflag.NewFlagSet("solid-pod-client", pflag.ContinueOnError)
	fs.StringVarP(&cfg.ServerURL, "server", "u", "", "Pod base URL")
	fs.DurationVarP(&cfg.Timeout, "timeout", "t", 0, "Request timeout (e.g. 10s)")
	fs.StringVar(&cfg.AuthMode, "auth", "", "Auth mode (none|bearer|pki)")
	fs.StringVar(&cfg.BearerToken, "bearer-token", "", "Bearer token")
	fs.StringVar(&cfg.PKIKeyID, "key-id", "", "PKI key id")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: defaultClientServerURL,
		Timeout:   defaultClientTimeout,
		AuthMode:  defaultAuthMode,
		PKIKeyID:  defaultClientKeyID,
		LogLevel:  "warn",
	}
}
