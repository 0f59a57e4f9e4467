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

import "fmt"

// MalformedSignatureEncodingError is used when the encoded signature cannot
// be turned into an ECDSA signature value.
type MalformedSignatureEncodingError struct {
	Msg string
	Err error
}

// Error returns the error message or the default message if not provided.
func (e *MalformedSignatureEncodingError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "signature encoding is malformed"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s. Error: %s", msg, e.Err.Error())
	}
	return msg
}

// Unwrap returns the unwrapped error.
func (e *MalformedSignatureEncodingError) Unwrap() error {
	return e.Err
}

// InvalidPublicKeyError is used when the public key PEM cannot be parsed into
// an ECDSA public key.
type InvalidPublicKeyError struct {
	Err error
}

// Error returns the error message.
func (e *InvalidPublicKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("public key is invalid. Error: %s", e.Err.Error())
	}
	return "public key is invalid"
}

// Unwrap returns the unwrapped error.
func (e *InvalidPublicKeyError) Unwrap() error {
	return e.Err
}

// UnsupportedKeyError is used when a public key is not usable for 2D-DOC
// verification.
type UnsupportedKeyError struct {
	Msg string
}

// Error returns the error message or the default message if not provided.
func (e *UnsupportedKeyError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "public key is not supported"
}
