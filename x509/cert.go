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
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// ReadCertificateFile reads a certificate file in either PEM or DER format
// and returns the certificates in it.
func ReadCertificateFile(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCertificates(data)
}

// ParseCertificates parses certificates from either PEM or DER data.
// PEM armor written on a single line is accepted.
// Returns an error if no certificate is found.
func ParseCertificates(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	normalized, err := normalizePEM(data)
	if err != nil {
		// data may be in DER format
		derCerts, derErr := x509.ParseCertificates(data)
		if derErr != nil {
			return nil, derErr
		}
		certs = append(certs, derCerts...)
	} else {
		for block, rest := pem.Decode(normalized); block != nil; block, rest = pem.Decode(rest) {
			if block.Type != "CERTIFICATE" && block.Type != "X509 CERTIFICATE" {
				continue
			}
			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, err
			}
			certs = append(certs, cert)
		}
	}
	if len(certs) == 0 {
		return nil, errors.New("no certificate found")
	}
	return certs, nil
}

// ParseVerificationKey parses the ECDSA key of a PEM public key, a PEM
// certificate or a DER certificate. For certificate data the key of the
// first certificate is returned.
func ParseVerificationKey(data []byte) (*ecdsa.PublicKey, error) {
	if _, err := normalizePEM(data); err == nil {
		return ParsePublicKeyPEM(data)
	}
	certs, err := x509.ParseCertificates(data)
	if err != nil {
		return nil, fmt.Errorf("neither PEM nor DER certificate: %w", err)
	}
	if len(certs) == 0 {
		return nil, errors.New("no certificate found")
	}
	key, ok := certs[0].PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate key is %T, not ECDSA", certs[0].PublicKey)
	}
	return key, nil
}
