package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connector creates a driver client from the prepared options.
type Connector func(opts *options.ClientOptions) (*mongo.Client, error)

func defaultConnector(opts *options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(opts)
}

// clientOptions translates cfg into driver options.
func clientOptions(cfg Config, bundle CertificateBundle) (*options.ClientOptions, error) {
	if strings.TrimSpace(cfg.ConnectionURL) == "" {
		return nil, newError(KindConfiguration, "connect", ErrMissingConnectionURL)
	}

	opts := options.Client().ApplyURI(cfg.ConnectionURL)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}
	if cfg.MaxConnIdleTime > 0 {
		opts.SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	}
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}

	if err := applyTLS(opts, cfg, bundle); err != nil {
		return nil, newError(KindConfiguration, "tls", err)
	}

	return opts, nil
}

// dial builds a client and, when requested, verifies it with a ping.
// A client that fails verification is disconnected before returning.
// The boolean reports whether the client talks TLS.
func dial(ctx context.Context, cfg Config, bundle CertificateBundle, connect Connector) (*mongo.Client, bool, error) {
	opts, err := clientOptions(cfg, bundle)
	if err != nil {
		return nil, false, err
	}

	client, err := connect(opts)
	if err != nil {
		return nil, false, newError(KindConnect, "connect", err)
	}
	if client == nil {
		return nil, false, newError(KindConnect, "connect", ErrNilClient)
	}

	if cfg.PingOnConnect {
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			if derr := client.Disconnect(ctx); derr != nil {
				err = errors.Join(err, derr)
			}
			return nil, false, newError(KindConnect, "ping", err)
		}
	}

	return client, opts.TLSConfig != nil, nil
}
