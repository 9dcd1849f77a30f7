// Package pkistore manages the certificate store directory named by the
// pki_dir configuration field.
//
// The store uses the conventional layout: own/ holds the server
// certificate and private key, trusted/ holds peer and CA certificates,
// and rejected/ receives certificates turned away during trust
// negotiation. The configuration layer does not check that the
// directory exists; this package creates and reads it.
package pkistore

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNoCertsFound is returned when a PEM file contains no certificates.
	ErrNoCertsFound = errors.New("pkistore: no certificates found in PEM file")

	// ErrNoOwnCertificate is returned when the store holds no server
	// certificate and key pair.
	ErrNoOwnCertificate = errors.New("pkistore: own certificate or key missing")
)

// Conventional file names inside own/.
const (
	ownCertFile = "cert.pem"
	ownKeyFile  = "key.pem"
)

// Store is a certificate store rooted at a pki directory.
type Store struct {
	dir string
}

// Open returns a store for the given directory. No files are touched
// until Init or one of the readers is called.
func Open(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store root.
func (s *Store) Dir() string { return s.dir }

// Init creates the store layout. Existing directories and their
// contents are left alone.
func (s *Store) Init() error {
	for _, sub := range []string{"own", "trusted", "rejected"} {
		if err := os.MkdirAll(filepath.Join(s.dir, sub), 0o700); err != nil {
			return fmt.Errorf("pkistore: create %s: %w", sub, err)
		}
	}
	return nil
}

// OwnCertificate loads the server certificate and private key from
// own/. It returns ErrNoOwnCertificate when either file is absent.
func (s *Store) OwnCertificate() (tls.Certificate, error) {
	certPath := filepath.Join(s.dir, "own", ownCertFile)
	keyPath := filepath.Join(s.dir, "own", ownKeyFile)

	for _, p := range []string{certPath, keyPath} {
		if _, err := os.Stat(p); err != nil {
			return tls.Certificate{}, fmt.Errorf("%w: %s", ErrNoOwnCertificate, p)
		}
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("pkistore: load own certificate: %w", err)
	}
	return cert, nil
}

// TrustedPool loads every PEM certificate under trusted/ into a pool.
// An empty or missing trusted/ directory yields an empty pool, not an
// error; files that decode to no certificate are reported.
func (s *Store) TrustedPool() (*x509.CertPool, error) {
	pool := x509.NewCertPool()

	dir := filepath.Join(s.dir, "trusted")
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return pool, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pkistore: read trusted dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("pkistore: read %s: %w", path, err)
		}
		if err := addPEM(pool, data); err != nil {
			return nil, fmt.Errorf("%w: %s", err, path)
		}
	}
	return pool, nil
}

// Reject moves a certificate file into rejected/ for later inspection.
func (s *Store) Reject(path string) error {
	dst := filepath.Join(s.dir, "rejected", filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		return fmt.Errorf("pkistore: reject %s: %w", path, err)
	}
	return nil
}

// addPEM adds every certificate block in data to the pool.
func addPEM(pool *x509.CertPool, data []byte) error {
	var added int
	for len(data) > 0 {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return fmt.Errorf("pkistore: parse certificate: %w", err)
		}
		pool.AddCert(cert)
		added++
	}
	if added == 0 {
		return ErrNoCertsFound
	}
	return nil
}
