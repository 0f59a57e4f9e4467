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

// Package signature verifies the detached ECDSA signature of a 2D-DOC.
//
// A 2D-DOC signature is the base32 (RFC 4648) encoding of the raw
// concatenation of the ECDSA integers R and S, each as wide as the curve
// order. It is reshaped into an ASN.1 DER ECDSA-Sig-Value before being
// checked against the message, the header followed by the body.
package signature

import (
	"crypto/ecdsa"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"encoding/base32"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/twoddoc/twoddoc-go/x509"
)

var base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// VerifyOptions tunes verification.
type VerifyOptions struct {
	// Algorithm, when set, pins the signature algorithm. Keys of another
	// algorithm are rejected with UnsupportedKeyError. When unset, the
	// algorithm follows the curve of the public key.
	Algorithm Algorithm
}

// Verify verifies the base32 encoded signature of message with a PEM encoded
// public key or X.509 certificate.
//
// A signature that does not match returns false and no error. Errors are
// returned when verification cannot run: *MalformedSignatureEncodingError,
// *InvalidPublicKeyError or *UnsupportedKeyError.
func Verify(message []byte, encodedSignature string, publicKeyPEM []byte) (bool, error) {
	return VerifyWithOptions(message, encodedSignature, publicKeyPEM, VerifyOptions{})
}

// VerifyWithOptions is like Verify with options.
func VerifyWithOptions(message []byte, encodedSignature string, publicKeyPEM []byte, opts VerifyOptions) (bool, error) {
	sig, err := DecodeSignature(encodedSignature)
	if err != nil {
		return false, err
	}
	key, err := x509.ParsePublicKeyPEM(publicKeyPEM)
	if err != nil {
		return false, &InvalidPublicKeyError{Err: err}
	}
	return verify(message, sig, key, opts)
}

// VerifyKey is like Verify with an already parsed public key.
func VerifyKey(message []byte, encodedSignature string, key *ecdsa.PublicKey) (bool, error) {
	sig, err := DecodeSignature(encodedSignature)
	if err != nil {
		return false, err
	}
	return verify(message, sig, key, VerifyOptions{})
}

// TryVerify is like Verify but reports every failure as false.
func TryVerify(message []byte, encodedSignature string, publicKeyPEM []byte) bool {
	ok, err := Verify(message, encodedSignature, publicKeyPEM)
	return err == nil && ok
}

func verify(message, sig []byte, key *ecdsa.PublicKey, opts VerifyOptions) (bool, error) {
	keySpec, err := ExtractKeySpec(key)
	if err != nil {
		return false, err
	}
	alg := keySpec.SignatureAlgorithm()
	if opts.Algorithm != 0 && opts.Algorithm != alg {
		return false, &UnsupportedKeyError{Msg: fmt.Sprintf("public key is for %s but %s is required", alg, opts.Algorithm)}
	}
	if len(sig) != keySpec.SignatureSize() {
		return false, &MalformedSignatureEncodingError{
			Msg: fmt.Sprintf("signature is %d bytes long but %s requires %d", len(sig), alg, keySpec.SignatureSize()),
		}
	}
	der, err := ConcatToASN1(sig)
	if err != nil {
		return false, err
	}

	h := alg.Hash().New()
	h.Write(message)
	return ecdsa.VerifyASN1(key, h.Sum(nil), der), nil
}

// DecodeSignature decodes a base32 signature into its raw R||S bytes.
// Trailing padding is optional.
func DecodeSignature(encoded string) ([]byte, error) {
	sig, err := base32Encoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return nil, &MalformedSignatureEncodingError{Msg: "signature is not base32 encoded", Err: err}
	}
	if len(sig) == 0 || len(sig)%2 != 0 {
		return nil, &MalformedSignatureEncodingError{Msg: fmt.Sprintf("signature of %d bytes cannot be split into R and S", len(sig))}
	}
	return sig, nil
}

// EncodeSignature encodes raw R||S bytes the way 2D-DOC carries them.
func EncodeSignature(sig []byte) string {
	return base32Encoding.EncodeToString(sig)
}

// ConcatToASN1 converts a concatenated R||S signature into an ASN.1 DER
// ECDSA-Sig-Value:
//
//	ECDSA-Sig-Value ::= SEQUENCE {
//	    r INTEGER,
//	    s INTEGER
//	}
func ConcatToASN1(sig []byte) ([]byte, error) {
	if len(sig) == 0 || len(sig)%2 != 0 {
		return nil, &MalformedSignatureEncodingError{Msg: fmt.Sprintf("signature of %d bytes cannot be split into R and S", len(sig))}
	}
	half := len(sig) / 2
	r := new(big.Int).SetBytes(sig[:half])
	s := new(big.Int).SetBytes(sig[half:])

	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(s)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, &MalformedSignatureEncodingError{Msg: "failed to encode signature", Err: err}
	}
	return der, nil
}
