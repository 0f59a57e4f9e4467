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

// Package x509 reads the keys used to sign and verify 2D-DOC signatures.
package x509

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

const (
	pemBegin     = "-----BEGIN "
	pemEndPrefix = "-----END "
	pemDashes    = "-----"
)

// ReadPublicKeyFile reads a public key or certificate file as a
// verification key. See ParseVerificationKey for the accepted formats.
func ReadPublicKeyFile(path string) (*ecdsa.PublicKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseVerificationKey(data)
}

// ParsePublicKeyPEM parses an ECDSA public key from a PEM encoded
// SubjectPublicKeyInfo ("PUBLIC KEY") or X.509 certificate ("CERTIFICATE",
// "X509 CERTIFICATE") block. The armor lines may be run together with the
// base64 body on a single line.
func ParsePublicKeyPEM(data []byte) (*ecdsa.PublicKey, error) {
	normalized, err := normalizePEM(data)
	if err != nil {
		return nil, err
	}
	return jwt.ParseECPublicKeyFromPEM(normalized)
}

// ReadPrivateKeyFile reads a key PEM file as a signing key.
func ReadPrivateKeyFile(path string) (*ecdsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePrivateKeyPEM(data)
}

// ParsePrivateKeyPEM parses a PEM as an ECDSA signing key, either PKCS #8
// ("PRIVATE KEY") or SEC 1 ("EC PRIVATE KEY").
func ParsePrivateKeyPEM(data []byte) (*ecdsa.PrivateKey, error) {
	normalized, err := normalizePEM(data)
	if err != nil {
		return nil, err
	}
	block, _ := pem.Decode(normalized)
	switch block.Type {
	case "PRIVATE KEY", "EC PRIVATE KEY":
		return jwt.ParseECPrivateKeyFromPEM(normalized)
	}
	return nil, fmt.Errorf("unsupported PEM block type: %s", block.Type)
}

// normalizePEM returns data as a PEM block that encoding/pem can decode.
// Data that already decodes is returned as is; otherwise the first armored
// block is rebuilt with its base64 body re-wrapped.
func normalizePEM(data []byte) ([]byte, error) {
	if block, _ := pem.Decode(data); block != nil {
		return data, nil
	}

	start := bytes.Index(data, []byte(pemBegin))
	if start < 0 {
		return nil, errors.New("no PEM data found")
	}
	rest := data[start+len(pemBegin):]
	typeEnd := bytes.Index(rest, []byte(pemDashes))
	if typeEnd <= 0 {
		return nil, errors.New("malformed PEM begin line")
	}
	blockType := string(rest[:typeEnd])
	rest = rest[typeEnd+len(pemDashes):]

	end := bytes.Index(rest, []byte(pemEndPrefix+blockType+pemDashes))
	if end < 0 {
		return nil, fmt.Errorf("missing PEM end line for %s", blockType)
	}
	body := strings.Join(strings.Fields(string(rest[:end])), "")
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, fmt.Errorf("malformed PEM body: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), nil
}
