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

package document

import (
	"strings"

	"github.com/twoddoc/twoddoc-go/signature"
)

// UnitSeparator splits the message from the signature.
const UnitSeparator = '\x1f'

// Certificate is a parsed 2D-DOC. It is immutable and safe for concurrent
// use.
type Certificate struct {
	data      string
	message   string
	rawHeader string
	rawBody   string
	signature string

	header Header
	body   Body
}

// Parse parses data, choosing the body layout from the header document type
// id.
func Parse(data string) (*Certificate, error) {
	return parse(data, 0)
}

// ParseKind parses data whose body must have the given layout, whatever the
// header document type id says.
func ParseKind(data string, kind Kind) (*Certificate, error) {
	if _, err := fieldsFor(kind); err != nil {
		return nil, err
	}
	return parse(data, kind)
}

// ParseSanitary parses a sanitary certificate.
func ParseSanitary(data string) (*Certificate, error) {
	return ParseKind(data, KindSanitary)
}

// ParseVaccination parses a vaccination certificate.
func ParseVaccination(data string) (*Certificate, error) {
	return ParseKind(data, KindVaccination)
}

func parse(data string, kind Kind) (*Certificate, error) {
	message, sig, err := splitPayload(data)
	if err != nil {
		return nil, err
	}
	header, err := ParseHeader(message)
	if err != nil {
		return nil, err
	}
	body := message[HeaderLength:]
	if body == "" {
		return nil, &MalformedPayloadError{Msg: "malformed data, body is empty"}
	}
	if strings.ContainsAny(body, "\n\r\u2028\u2029") {
		return nil, &MalformedPayloadError{Msg: "malformed data, body contains a line break"}
	}

	if kind == 0 {
		var ok bool
		if kind, ok = KindForType(header.DocumentTypeID); !ok {
			return nil, &UnsupportedDocumentTypeError{TypeID: header.DocumentTypeID}
		}
	}
	fields, err := fieldsFor(kind)
	if err != nil {
		return nil, err
	}
	values, err := extract(kind, fields, body)
	if err != nil {
		return nil, err
	}

	c := &Certificate{
		data:      data,
		message:   message,
		rawHeader: message[:HeaderLength],
		rawBody:   body,
		signature: sig,
		header:    header,
	}
	switch kind {
	case KindSanitary:
		c.body = newSanitary(values)
	case KindVaccination:
		c.body = newVaccination(values)
	}
	return c, nil
}

// splitPayload splits data around its single unit separator and checks that
// the signature is made of word characters.
func splitPayload(data string) (message, sig string, err error) {
	if strings.Count(data, string(UnitSeparator)) != 1 {
		return "", "", &MalformedPayloadError{}
	}
	message, sig, _ = strings.Cut(data, string(UnitSeparator))
	if sig == "" {
		return "", "", &MalformedPayloadError{Msg: "malformed data, signature is empty"}
	}
	for i := 0; i < len(sig); i++ {
		if b := sig[i]; b != '_' && !classAlnum.contains(b) {
			return "", "", &MalformedPayloadError{Msg: "malformed data, signature contains invalid characters"}
		}
	}
	return message, sig, nil
}

// Data returns the raw 2D-DOC data.
func (c *Certificate) Data() string { return c.data }

// Message returns the signed part of the data: the header followed by the
// body.
func (c *Certificate) Message() string { return c.message }

// RawHeader returns the header as written.
func (c *Certificate) RawHeader() string { return c.rawHeader }

// RawBody returns the body as written.
func (c *Certificate) RawBody() string { return c.rawBody }

// Signature returns the signature, still base32 encoded.
func (c *Certificate) Signature() string { return c.signature }

// Header returns the parsed header.
func (c *Certificate) Header() Header { return c.header }

// Body returns the parsed body, a Sanitary or a Vaccination.
func (c *Certificate) Body() Body { return c.body }

// Kind returns the body layout, or 0 for a Certificate not built by Parse.
func (c *Certificate) Kind() Kind {
	if c.body == nil {
		return 0
	}
	return c.body.Kind()
}

// Sanitary returns the body of a sanitary certificate.
func (c *Certificate) Sanitary() (Sanitary, bool) {
	s, ok := c.body.(Sanitary)
	return s, ok
}

// Vaccination returns the body of a vaccination certificate.
func (c *Certificate) Vaccination() (Vaccination, bool) {
	v, ok := c.body.(Vaccination)
	return v, ok
}

// VerifySignature verifies the certificate signature with a PEM encoded
// public key or X.509 certificate. It returns false without error when the
// signature does not match, and an error when verification could not run.
func (c *Certificate) VerifySignature(publicKeyPEM string) (bool, error) {
	return signature.Verify([]byte(c.message), c.signature, []byte(publicKeyPEM))
}

// TryVerifySignature is like VerifySignature but reports every failure as
// false.
func (c *Certificate) TryVerifySignature(publicKeyPEM string) bool {
	return signature.TryVerify([]byte(c.message), c.signature, []byte(publicKeyPEM))
}
