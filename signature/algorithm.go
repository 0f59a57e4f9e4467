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

package signature

import (
	"crypto"
	"crypto/ecdsa"
	"fmt"
)

// Algorithm defines the signature algorithm.
type Algorithm int

// Signature algorithms supported by this library.
const (
	AlgorithmES256 Algorithm = 1 + iota // ECDSA on secp256r1 with SHA-256
	AlgorithmES384                      // ECDSA on secp384r1 with SHA-384
	AlgorithmES512                      // ECDSA on secp521r1 with SHA-512
)

// Hash returns the hash function of the algorithm.
func (alg Algorithm) Hash() crypto.Hash {
	switch alg {
	case AlgorithmES256:
		return crypto.SHA256
	case AlgorithmES384:
		return crypto.SHA384
	case AlgorithmES512:
		return crypto.SHA512
	}
	return 0
}

// String returns the JOSE name of the algorithm.
func (alg Algorithm) String() string {
	switch alg {
	case AlgorithmES256:
		return "ES256"
	case AlgorithmES384:
		return "ES384"
	case AlgorithmES512:
		return "ES512"
	}
	return fmt.Sprintf("Algorithm(%d)", int(alg))
}

// KeySpec defines the curve size of an ECDSA key.
type KeySpec struct {
	// Size is the size of the curve in bits.
	Size int
}

// ExtractKeySpec extracts the KeySpec of an ECDSA public key.
func ExtractKeySpec(key *ecdsa.PublicKey) (KeySpec, error) {
	if key == nil || key.Curve == nil {
		return KeySpec{}, &UnsupportedKeyError{Msg: "ecdsa public key is missing"}
	}
	switch bitSize := key.Curve.Params().BitSize; bitSize {
	case 256, 384, 521:
		return KeySpec{Size: bitSize}, nil
	default:
		return KeySpec{}, &UnsupportedKeyError{Msg: fmt.Sprintf("ecdsa key size %d bits is not supported", bitSize)}
	}
}

// SignatureAlgorithm returns the signing algorithm associated with the KeySpec.
func (k KeySpec) SignatureAlgorithm() Algorithm {
	switch k.Size {
	case 256:
		return AlgorithmES256
	case 384:
		return AlgorithmES384
	case 521:
		return AlgorithmES512
	}
	return 0
}

// SignatureSize returns the length in bytes of a concatenated R||S signature
// made with a key of this size.
func (k KeySpec) SignatureSize() int {
	keyBytes := k.Size / 8
	if k.Size%8 > 0 {
		keyBytes++
	}
	return 2 * keyBytes
}
