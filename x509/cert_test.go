// Copyright The Notary Project Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package x509

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/twoddoc/twoddoc-go/testhelper"
)

func TestParseCertificates(t *testing.T) {
	p256 := testhelper.GetECCertTuple(elliptic.P256())
	p384 := testhelper.GetECCertTuple(elliptic.P384())

	t.Run("pem chain", func(t *testing.T) {
		certs, err := ParseCertificates([]byte(p256.CertificatePEM() + p384.CertificatePEM()))
		if err != nil {
			t.Fatalf("ParseCertificates() error = %v", err)
		}
		if len(certs) != 2 {
			t.Fatalf("ParseCertificates() returned %d certificates, want 2", len(certs))
		}
		if !certs[0].Equal(p256.Cert) || !certs[1].Equal(p384.Cert) {
			t.Fatal("ParseCertificates() returned certificates out of order")
		}
	})

	t.Run("der", func(t *testing.T) {
		certs, err := ParseCertificates(p256.Cert.Raw)
		if err != nil {
			t.Fatalf("ParseCertificates() error = %v", err)
		}
		if len(certs) != 1 || !certs[0].Equal(p256.Cert) {
			t.Fatal("ParseCertificates() did not return the DER certificate")
		}
	})

	t.Run("single line armor", func(t *testing.T) {
		oneLine := strings.ReplaceAll(p256.CertificatePEM(), "\n", "")
		certs, err := ParseCertificates([]byte(oneLine))
		if err != nil {
			t.Fatalf("ParseCertificates() error = %v", err)
		}
		if !certs[0].Equal(p256.Cert) {
			t.Fatal("ParseCertificates() returned another certificate")
		}
	})

	t.Run("public key only", func(t *testing.T) {
		if _, err := ParseCertificates([]byte(p256.PublicKeyPEM())); err == nil {
			t.Fatal("expected an error for a PEM without certificates")
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := ParseCertificates([]byte("garbage")); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestReadCertificateFile(t *testing.T) {
	tuple := testhelper.GetECCertTuple(elliptic.P521())
	path := filepath.Join(t.TempDir(), "cert.der")
	if err := os.WriteFile(path, tuple.Cert.Raw, 0o600); err != nil {
		t.Fatal(err)
	}
	certs, err := ReadCertificateFile(path)
	if err != nil {
		t.Fatalf("ReadCertificateFile() error = %v", err)
	}
	if !certs[0].Equal(tuple.Cert) {
		t.Fatal("ReadCertificateFile() returned another certificate")
	}

	if _, err := ReadCertificateFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseVerificationKey(t *testing.T) {
	tuple := testhelper.GetECCertTuple(elliptic.P256())
	want := &tuple.PrivateKey.PublicKey

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	rsaDER, err := x509.MarshalPKIXPublicKey(&rsaKey.PublicKey)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "public key", data: []byte(tuple.PublicKeyPEM())},
		{name: "certificate", data: []byte(tuple.CertificatePEM())},
		{name: "der certificate", data: tuple.Cert.Raw},
		{
			name: "x509 certificate block",
			data: pem.EncodeToMemory(&pem.Block{Type: "X509 CERTIFICATE", Bytes: tuple.Cert.Raw}),
		},
		{
			name:    "rsa key",
			data:    pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: rsaDER}),
			wantErr: true,
		},
		{name: "der garbage", data: []byte{0x30, 0x01, 0x00}, wantErr: true},
		{name: "empty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseVerificationKey(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVerificationKey() error = %v", err)
			}
			if !key.Equal(want) {
				t.Fatal("ParseVerificationKey() returned another key")
			}
		})
	}
}

func TestParseVerificationKeyRSACertificate(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	cert := testhelper.GetRSACertificate(rsaKey)
	if _, err := ParseVerificationKey(cert.Raw); err == nil {
		t.Fatal("expected an error for an RSA certificate")
	}
}
