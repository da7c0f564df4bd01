package mongo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	defaultMu       sync.Mutex
	defaultProvider *Provider
)

// Default returns the process-wide provider, building it from the environment
// on the first successful call. opts are applied only when the provider is built.
// A configuration failure is not cached. Closing the returned provider closes it
// for the whole process: later calls return the same provider and Obtain fails
// with ErrProviderClosed.
func Default(opts ...Option) (*Provider, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultProvider != nil {
		return defaultProvider, nil
	}

	p, err := NewProviderFromEnv(opts...)
	if err != nil {
		return nil, err
	}
	defaultProvider = p
	return p, nil
}

// Obtain returns a database handle from the process-wide provider.
func Obtain(ctx context.Context, name ...string) (*mongo.Database, error) {
	p, err := Default()
	if err != nil {
		return nil, err
	}
	return p.Obtain(ctx, name...)
}
