// Package testhelper implements utility routines required for writing unit tests.
// The testhelper should only be used in unit tests.
package testhelper

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"

	"github.com/github/fakeca"
)

var (
	ecRoot    *fakeca.Identity
	ecLeaves  = map[string]ECCertTuple{}
	ecLeavesM sync.Mutex

	setupRootOnce sync.Once
)

// ECCertTuple is an ECDSA key pair with a certificate for its public key,
// issued by a test root.
type ECCertTuple struct {
	Cert       *x509.Certificate
	PrivateKey *ecdsa.PrivateKey
}

// GetECCertTuple returns the leaf certificate for the given curve. Tuples
// are generated once per curve.
func GetECCertTuple(curve elliptic.Curve) ECCertTuple {
	setupRootOnce.Do(func() {
		ecRoot = fakeca.New(fakeca.IsCA)
	})

	ecLeavesM.Lock()
	defer ecLeavesM.Unlock()
	name := curve.Params().Name
	if tuple, ok := ecLeaves[name]; ok {
		return tuple
	}
	k, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		panic(err)
	}
	leaf := ecRoot.Issue(fakeca.PrivateKey(k))
	tuple := ECCertTuple{Cert: leaf.Certificate, PrivateKey: k}
	ecLeaves[name] = tuple
	return tuple
}

// GetRootCertificate returns the self-signed root that issues every test
// certificate.
func GetRootCertificate() *x509.Certificate {
	setupRootOnce.Do(func() {
		ecRoot = fakeca.New(fakeca.IsCA)
	})
	return ecRoot.Certificate
}

// GetRSACertificate issues a certificate for an RSA key from the test root.
func GetRSACertificate(key *rsa.PrivateKey) *x509.Certificate {
	setupRootOnce.Do(func() {
		ecRoot = fakeca.New(fakeca.IsCA)
	})
	return ecRoot.Issue(fakeca.PrivateKey(key)).Certificate
}

// PublicKeyPEM returns the public key as a PEM encoded SubjectPublicKeyInfo.
func (t ECCertTuple) PublicKeyPEM() string {
	der, err := x509.MarshalPKIXPublicKey(&t.PrivateKey.PublicKey)
	if err != nil {
		panic(err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// CertificatePEM returns the certificate as a PEM block.
func (t ECCertTuple) CertificatePEM() string {
	return string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: t.Cert.Raw}))
}

// PrivateKeyPEM returns the private key as a PKCS #8 PEM block.
func (t ECCertTuple) PrivateKeyPEM() string {
	der, err := x509.MarshalPKCS8PrivateKey(t.PrivateKey)
	if err != nil {
		panic(err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}
