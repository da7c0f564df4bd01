package mongo

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// CertificateBundle supplies the filesystem path of a PEM bundle with trusted
// root certificates. An empty path means the system root pool.
type CertificateBundle interface {
	Path() (string, error)
}

// CertificateBundleFunc adapts a plain function to CertificateBundle.
type CertificateBundleFunc func() (string, error)

func (f CertificateBundleFunc) Path() (string, error) { return f() }

// StaticCertificateBundle always resolves to path.
func StaticCertificateBundle(path string) CertificateBundle {
	return CertificateBundleFunc(func() (string, error) { return path, nil })
}

// configBundle resolves MONGODB_CA_FILE first, then SSL_CERT_FILE.
func configBundle(cfg Config) CertificateBundle {
	return CertificateBundleFunc(func() (string, error) {
		if cfg.CAFile != "" {
			return cfg.CAFile, nil
		}
		return cfg.SystemCAFile, nil
	})
}

// LoadCertificateBundle reads a PEM file into a certificate pool.
func LoadCertificateBundle(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read certificate bundle %q: %w", path, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCertificateBundle, path)
	}
	return pool, nil
}

// rootCAs resolves the bundle into a pool. An empty path selects the system roots.
func rootCAs(bundle CertificateBundle) (*x509.CertPool, error) {
	path, err := bundle.Path()
	if err != nil {
		return nil, fmt.Errorf("resolve certificate bundle: %w", err)
	}
	if path == "" {
		return x509.SystemCertPool()
	}
	return LoadCertificateBundle(path)
}

// applyTLS completes the TLS settings ApplyURI derived from the URL. Options
// the URL already carries, such as tlsCAFile, tlsInsecure or a client
// certificate, are kept. The bundle only fills in missing root certificates.
//
// An explicit tls or ssl option in the URL decides whether TLS is used.
// Otherwise TLS is on unless MONGODB_TLS=false. A URL that does not parse is
// left for the driver to report.
func applyTLS(opts *options.ClientOptions, cfg Config, bundle CertificateBundle) error {
	tlsCfg := opts.TLSConfig
	if tlsCfg == nil {
		cs, err := connstring.Parse(cfg.ConnectionURL)
		if err != nil || cs.SSLSet {
			return nil
		}
		if !cfg.tlsEnabled() && cfg.CAFile == "" {
			return nil
		}
		tlsCfg = &tls.Config{InsecureSkipVerify: cs.SSLInsecure}
	}

	if tlsCfg.RootCAs == nil {
		pool, err := rootCAs(bundle)
		if err != nil {
			return err
		}
		tlsCfg.RootCAs = pool
	}
	if tlsCfg.MinVersion < tls.VersionTLS12 {
		tlsCfg.MinVersion = tls.VersionTLS12
	}

	opts.SetTLSConfig(tlsCfg)
	return nil
}
