package wirescreen

import (
	"os"
	"time"

	"github.com/wirescreen/wirescreen-go/pkg/httpclient"
)

// TokenEnvVar names the environment variable consulted when New is called
// without a token.
const TokenEnvVar = "WIRESCREEN_API_TOKEN"

// DefaultTimeout bounds a request made through the default transport.
const DefaultTimeout = 30 * time.Second

// LookupEnvFunc reads an environment variable. It has the signature of os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// clientConfig holds construction-time settings.
type clientConfig struct {
	lookupEnv  LookupEnvFunc
	httpClient httpclient.Client
	timeout    time.Duration
	logger     Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithEnv replaces the environment accessor used to resolve the token.
func WithEnv(lookup LookupEnvFunc) Option {
	return func(c *clientConfig) {
		c.lookupEnv = lookup
	}
}

// WithHTTPClient sets the transport used for every request.
func WithHTTPClient(client httpclient.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout of the default transport. It has no effect
// together with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(log Logger) Option {
	return func(c *clientConfig) {
		c.logger = log
	}
}

func newClientConfig(opts []Option) clientConfig {
	cfg := clientConfig{
		lookupEnv: os.LookupEnv,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.lookupEnv == nil {
		cfg.lookupEnv = os.LookupEnv
	}
	if cfg.httpClient == nil {
		cfg.httpClient = httpclient.NewRestyClient(cfg.timeout)
	}
	cfg.logger = ensureLogger(cfg.logger)
	return cfg
}
