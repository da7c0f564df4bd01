package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Healthcheck returns a health check function suitable for readiness probes.
//
// It runs the ping command against the provider's default database through the
// shared client, creating the client if this is the first use.
func Healthcheck(p *Provider) func(context.Context) error {
	return func(ctx context.Context) error {
		db, err := p.Obtain(ctx)
		if err != nil {
			return newError(KindHealthcheck, "healthcheck", err)
		}
		if err := db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			return newError(KindHealthcheck, "healthcheck", err)
		}
		return nil
	}
}
