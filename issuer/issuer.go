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

// Package issuer encodes and signs 2D-DOC payloads. It is the inverse of the
// document package and is mostly useful to produce test material.
package issuer

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/veraison/go-cose"

	"github.com/twoddoc/twoddoc-go/document"
	"github.com/twoddoc/twoddoc-go/internal/date"
	"github.com/twoddoc/twoddoc-go/signature"
)

// DefaultVersion is the 2D-DOC version written when Header.Version is empty.
const DefaultVersion = "04"

var coseAlgorithms = map[signature.Algorithm]cose.Algorithm{
	signature.AlgorithmES256: cose.AlgorithmES256,
	signature.AlgorithmES384: cose.AlgorithmES384,
	signature.AlgorithmES512: cose.AlgorithmES512,
}

// Header holds the header fields of a document to issue.
type Header struct {
	Version       string
	AuthorityID   string
	CertificateID string

	// DocumentDate and SignatureDate are encoded as day counts. A zero
	// time encodes as "not applicable".
	DocumentDate  time.Time
	SignatureDate time.Time

	DocumentTypeID      string
	DocumentPerimeterID string
	DocumentCountry     string
}

// EncodeHeader encodes h as a fixed-width 2D-DOC header.
func EncodeHeader(h Header) (string, error) {
	version := h.Version
	if version == "" {
		version = DefaultVersion
	}
	documentDate, err := date.HexDays(h.DocumentDate)
	if err != nil {
		return "", err
	}
	signatureDate, err := date.HexDays(h.SignatureDate)
	if err != nil {
		return "", err
	}

	header := "DC" + version + h.AuthorityID + h.CertificateID + documentDate + signatureDate +
		h.DocumentTypeID + h.DocumentPerimeterID + h.DocumentCountry
	if len(header) != document.HeaderLength {
		return "", &document.MalformedHeaderError{
			Msg: fmt.Sprintf("encoded header is %d bytes long instead of %d", len(header), document.HeaderLength),
		}
	}
	if _, err := document.ParseHeader(header); err != nil {
		return "", err
	}
	return header, nil
}

// Issuer signs 2D-DOC messages.
type Issuer struct {
	signer cose.Signer
	rand   io.Reader
}

// New returns an Issuer signing with key, which must hold an ECDSA key on
// P-256, P-384 or P-521.
func New(key crypto.Signer) (*Issuer, error) {
	if key == nil {
		return nil, errors.New("signing key is required")
	}
	pub, ok := key.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, &signature.UnsupportedKeyError{Msg: fmt.Sprintf("signing key of type %T is not supported", key.Public())}
	}
	keySpec, err := signature.ExtractKeySpec(pub)
	if err != nil {
		return nil, err
	}
	signer, err := cose.NewSigner(coseAlgorithms[keySpec.SignatureAlgorithm()], key)
	if err != nil {
		return nil, err
	}
	return &Issuer{signer: signer, rand: rand.Reader}, nil
}

// Sign signs message, the header followed by the body, and returns the
// complete payload.
func (i *Issuer) Sign(message string) (string, error) {
	if strings.ContainsRune(message, document.UnitSeparator) {
		return "", errors.New("message must not contain the unit separator")
	}
	sig, err := i.signer.Sign(i.rand, []byte(message))
	if err != nil {
		return "", err
	}
	return message + string(document.UnitSeparator) + signature.EncodeSignature(sig), nil
}

// Issue encodes h and body, signs them and returns the parsed certificate.
func (i *Issuer) Issue(h Header, body document.Body) (*document.Certificate, error) {
	header, err := EncodeHeader(h)
	if err != nil {
		return nil, err
	}
	encodedBody, err := document.EncodeBody(body)
	if err != nil {
		return nil, err
	}
	data, err := i.Sign(header + encodedBody)
	if err != nil {
		return nil, err
	}
	return document.ParseKind(data, body.Kind())
}
