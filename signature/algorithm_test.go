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
	"crypto/elliptic"
	"crypto/rand"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name   string
		alg    Algorithm
		expect crypto.Hash
	}{
		{
			name:   "ES256",
			alg:    AlgorithmES256,
			expect: crypto.SHA256,
		},
		{
			name:   "ES384",
			alg:    AlgorithmES384,
			expect: crypto.SHA384,
		},
		{
			name:   "ES512",
			alg:    AlgorithmES512,
			expect: crypto.SHA512,
		},
		{
			name:   "UnsupportedAlgorithm",
			alg:    0,
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := tt.alg.Hash()
			if hash != tt.expect {
				t.Fatalf("Expected %v, got %v", tt.expect, hash)
			}
			if tt.expect != 0 && tt.alg.String() != tt.name {
				t.Fatalf("Expected name %s, got %s", tt.name, tt.alg.String())
			}
		})
	}
}

func TestExtractKeySpec(t *testing.T) {
	tests := []struct {
		name     string
		curve    elliptic.Curve
		expect   KeySpec
		alg      Algorithm
		sigBytes int
	}{
		{
			name:     "P-256",
			curve:    elliptic.P256(),
			expect:   KeySpec{Size: 256},
			alg:      AlgorithmES256,
			sigBytes: 64,
		},
		{
			name:     "P-384",
			curve:    elliptic.P384(),
			expect:   KeySpec{Size: 384},
			alg:      AlgorithmES384,
			sigBytes: 96,
		},
		{
			name:     "P-521",
			curve:    elliptic.P521(),
			expect:   KeySpec{Size: 521},
			alg:      AlgorithmES512,
			sigBytes: 132,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ecdsa.GenerateKey(tt.curve, rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			keySpec, err := ExtractKeySpec(&key.PublicKey)
			if err != nil {
				t.Fatalf("ExtractKeySpec() error = %v", err)
			}
			if keySpec != tt.expect {
				t.Fatalf("Expected %v, got %v", tt.expect, keySpec)
			}
			if alg := keySpec.SignatureAlgorithm(); alg != tt.alg {
				t.Fatalf("Expected %v, got %v", tt.alg, alg)
			}
			if size := keySpec.SignatureSize(); size != tt.sigBytes {
				t.Fatalf("Expected signature size %d, got %d", tt.sigBytes, size)
			}
		})
	}
}

func TestExtractKeySpecUnsupported(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P224(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ExtractKeySpec(&key.PublicKey); err == nil {
		t.Fatal("expected an error for a P-224 key")
	}
	if _, err := ExtractKeySpec(nil); err == nil {
		t.Fatal("expected an error for a nil key")
	}
	if alg := (KeySpec{Size: 224}).SignatureAlgorithm(); alg != 0 {
		t.Fatalf("Expected no algorithm, got %v", alg)
	}
}
