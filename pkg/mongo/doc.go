// Package mongo provides a connection provider that hands out MongoDB database
// handles backed by one shared client.
//
// The client is created lazily on the first Obtain call from a connection URL
// read from the MONGODB_URL environment variable, and is reused for every
// later call regardless of the database name requested. Creation is guarded by
// a mutex, so concurrent first use still produces exactly one client.
//
// Connections use TLS unless the URL says tls=false or MONGODB_TLS=false.
// The server certificate is verified against the first of tlsCAFile from the
// URL, MONGODB_CA_FILE, SSL_CERT_FILE and the system pool. Other TLS options in
// the URL, such as tlsCertificateKeyFile or tlsInsecure, are kept as given.
//
// # Usage
//
//	import (
//		"context"
//		"github.com/dmitrymomot/mongokit/pkg/mongo"
//	)
//
//	func main() {
//		provider, err := mongo.NewProviderFromEnv(mongo.WithLogger(log))
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer provider.Close(context.Background())
//
//		users, _ := provider.Obtain(ctx)            // MONGODB_DATABASE
//		audit, _ := provider.Obtain(ctx, "audit")   // same client
//
//		health := mongo.Healthcheck(provider)
//		if err := health(ctx); err != nil {
//			log.Println("mongo is unavailable:", err)
//		}
//	}
//
// Code that cannot pass a provider around may use the package-level Default
// and Obtain functions, which share one provider per process.
//
// # Configuration
//
//	MONGODB_URL                       required connection URL
//	MONGODB_DATABASE                  default database name ("app")
//	MONGODB_TLS                       use TLS ("true"), false for local servers
//	MONGODB_CA_FILE                   PEM bundle with trusted roots
//	MONGODB_APP_NAME                  application name sent to the server
//	MONGODB_CONNECT_TIMEOUT           dial timeout ("10s")
//	MONGODB_SERVER_SELECTION_TIMEOUT  server selection timeout ("30s")
//	MONGODB_MAX_POOL_SIZE             ("100")
//	MONGODB_MIN_POOL_SIZE             ("1")
//	MONGODB_MAX_CONN_IDLE_TIME        ("300s")
//	MONGODB_PING_ON_CONNECT           ping on first connect ("false")
//
// # Error Handling
//
// Every failure is returned as *Error carrying a Kind, the operation and the
// original cause. Use errors.Is with ErrConfiguration, ErrConnect,
// ErrDisconnect, ErrHealthcheckFailed or ErrProviderClosed to branch on the
// kind, and errors.As to reach the cause. Nothing is retried; a failed call leaves no client behind.
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2.
package mongo
