package mongo

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/mongokit/pkg/config"
	"github.com/dmitrymomot/mongokit/pkg/logger"
)

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for connection events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.log = l
		}
	}
}

// WithCertificateBundle overrides where the trusted root certificates come from.
func WithCertificateBundle(b CertificateBundle) Option {
	return func(p *Provider) {
		if b != nil {
			p.bundle = b
		}
	}
}

// WithConnector replaces mongo.Connect. Mostly useful in tests.
func WithConnector(c Connector) Option {
	return func(p *Provider) {
		if c != nil {
			p.connect = c
		}
	}
}

// Provider hands out database handles backed by a single shared client.
// The client is created on first use and reused by every later call.
type Provider struct {
	cfg     Config
	log     *slog.Logger
	bundle  CertificateBundle
	connect Connector

	mu     sync.Mutex
	client *mongo.Client
	closed bool
}

// NewProvider returns a provider for cfg. No connection is made until the
// first Obtain or Client call.
func NewProvider(cfg Config, opts ...Option) *Provider {
	p := &Provider{
		cfg:     cfg,
		log:     logger.Nop(),
		bundle:  configBundle(cfg),
		connect: defaultConnector,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewProviderFromEnv loads Config from the environment (and a .env file, if
// present) and returns a provider for it.
func NewProviderFromEnv(opts ...Option) (*Provider, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, newError(KindConfiguration, "load config", err)
	}
	return NewProvider(cfg, opts...), nil
}

// Obtain returns a handle to the named database, or to the configured
// default database when name is omitted or empty.
func (p *Provider) Obtain(ctx context.Context, name ...string) (*mongo.Database, error) {
	dbName := p.cfg.databaseName()
	if len(name) > 0 && name[0] != "" {
		if strings.TrimSpace(name[0]) == "" {
			return nil, newError(KindConfiguration, "obtain", ErrEmptyDatabaseName)
		}
		dbName = name[0]
	}

	client, err := p.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

// Client returns the shared client, creating it on first use.
// A failed attempt leaves nothing cached; the next call starts over.
func (p *Provider) Client(ctx context.Context) (*mongo.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, newError(KindClosed, "client", ErrProviderClosed)
	}
	if p.client != nil {
		return p.client, nil
	}

	client, tlsOn, err := dial(ctx, p.cfg, p.bundle, p.connect)
	if err != nil {
		p.log.ErrorContext(ctx, "mongo connection failed",
			logger.Component("mongo"),
			logger.Error(err),
		)
		return nil, err
	}

	p.client = client
	p.log.InfoContext(ctx, "mongo connection established",
		logger.Component("mongo"),
		logger.Database(p.cfg.databaseName()),
		logger.TLS(tlsOn),
	)
	return client, nil
}

// Connected reports whether the shared client has been created.
func (p *Provider) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client != nil
}

// DatabaseName returns the default database name.
func (p *Provider) DatabaseName() string {
	return p.cfg.databaseName()
}

// Close disconnects the shared client. The provider cannot be reused afterwards.
// It is safe to call Close more than once.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.client == nil {
		return nil
	}

	client := p.client
	p.client = nil
	if err := client.Disconnect(ctx); err != nil {
		return newError(KindDisconnect, "close", err)
	}

	p.log.InfoContext(ctx, "mongo connection closed", logger.Component("mongo"))
	return nil
}
