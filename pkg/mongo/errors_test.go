package mongo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mongokit/pkg/mongo"
)

func TestError_IsMatchesOwnKindOnly(t *testing.T) {
	sentinels := map[mongo.Kind]error{
		mongo.KindConfiguration: mongo.ErrConfiguration,
		mongo.KindConnect:       mongo.ErrConnect,
		mongo.KindDisconnect:    mongo.ErrDisconnect,
		mongo.KindHealthcheck:   mongo.ErrHealthcheckFailed,
		mongo.KindClosed:        mongo.ErrProviderClosed,
	}

	for kind := range sentinels {
		err := &mongo.Error{Kind: kind, Op: "test", Err: errors.New("cause")}
		for other, sentinel := range sentinels {
			assert.Equal(t, kind == other, errors.Is(err, sentinel), "kind %s vs sentinel of %s", kind, other)
		}
	}
}

func TestError_UnknownKind(t *testing.T) {
	err := &mongo.Error{Op: "test"}
	assert.Equal(t, "unknown", err.Kind.String())
	assert.False(t, errors.Is(err, mongo.ErrConnect))
	assert.Equal(t, "mongo test: unknown failed", err.Error())
}

func TestError_MessageAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &mongo.Error{Kind: mongo.KindConnect, Op: "ping", Err: cause}

	assert.Equal(t, "mongo ping: connect: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("startup: %w", err)
	var merr *mongo.Error
	assert.ErrorAs(t, wrapped, &merr)
	assert.Equal(t, mongo.KindConnect, merr.Kind)
	assert.True(t, errors.Is(wrapped, mongo.ErrConnect))
}

func TestIsConfigurationError(t *testing.T) {
	assert.True(t, mongo.IsConfigurationError(&mongo.Error{Kind: mongo.KindConfiguration}))
	assert.False(t, mongo.IsConfigurationError(&mongo.Error{Kind: mongo.KindConnect}))
	assert.False(t, mongo.IsConfigurationError(nil))
}
