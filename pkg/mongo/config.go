package mongo

import "time"

// DefaultDatabase is used when neither the caller nor MONGODB_DATABASE names a database.
const DefaultDatabase = "app"

// Config represents the configuration for the connection provider.
type Config struct {
	ConnectionURL          string        `env:"MONGODB_URL,required"`                              // ConnectionURL is the URL of the database. Required, there is no fallback.
	Database               string        `env:"MONGODB_DATABASE" envDefault:"app"`                 // Database is the default database name returned by Obtain.
	AppName                string        `env:"MONGODB_APP_NAME"`                                  // AppName is reported to the server in the handshake.
	TLS                    *bool         `env:"MONGODB_TLS" envDefault:"true"`                     // TLS is on when nil or true. Set false to talk plaintext to a local server.
	CAFile                 string        `env:"MONGODB_CA_FILE"`                                   // CAFile is the path to a PEM bundle of trusted root certificates.
	SystemCAFile           string        `env:"SSL_CERT_FILE"`                                     // SystemCAFile is used when CAFile is empty.
	ConnectTimeout         time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`          // ConnectTimeout is the dial timeout for a single connection.
	ServerSelectionTimeout time.Duration `env:"MONGODB_SERVER_SELECTION_TIMEOUT" envDefault:"30s"` // ServerSelectionTimeout bounds how long an operation waits for a suitable server.
	MaxPoolSize            uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`            // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize            uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`              // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime        time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`      // MaxConnIdleTime is the maximum time that a connection can remain idle in the pool.
	PingOnConnect          bool          `env:"MONGODB_PING_ON_CONNECT" envDefault:"false"`        // PingOnConnect makes the first connection fail fast on unreachable hosts.
}

func (c Config) databaseName() string {
	if c.Database == "" {
		return DefaultDatabase
	}
	return c.Database
}

func (c Config) tlsEnabled() bool {
	return c.TLS == nil || *c.TLS
}
