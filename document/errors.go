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

import "fmt"

// MalformedPayloadError is used when the raw data does not split into a
// message and a signature.
type MalformedPayloadError struct {
	Msg string
}

// Error returns the error message or the default message if not provided.
func (e *MalformedPayloadError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "malformed data, unable to split message and signature"
}

// MalformedHeaderError is used when the fixed-width header does not match
// its grammar.
type MalformedHeaderError struct {
	// Field is the name of the first header field that failed.
	Field string

	// Offset is the byte offset of Field within the header.
	Offset int

	Msg string
}

// Error returns the error message.
func (e *MalformedHeaderError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unable to parse data"
	}
	if e.Field == "" {
		return "malformed header, " + msg
	}
	return fmt.Sprintf("malformed header field %q at offset %d, %s", e.Field, e.Offset, msg)
}

// MalformedBodyError is used when the body does not match the field table
// of the requested document kind.
type MalformedBodyError struct {
	Kind Kind

	// Tag is the tag that was expected at Offset.
	Tag string

	// Offset is the furthest byte offset within the body that the
	// extractor reached before giving up.
	Offset int

	Msg string
}

// Error returns the error message.
func (e *MalformedBodyError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unable to parse data"
	}
	if e.Tag == "" {
		return fmt.Sprintf("malformed %s body, %s", e.Kind, msg)
	}
	return fmt.Sprintf("malformed %s body at offset %d, expected field %s: %s", e.Kind, e.Offset, e.Tag, msg)
}

// UnsupportedDocumentTypeError is used when a document type id has no known
// body layout.
type UnsupportedDocumentTypeError struct {
	TypeID string
}

// Error returns the error message.
func (e *UnsupportedDocumentTypeError) Error() string {
	return fmt.Sprintf("document type %q is not supported", e.TypeID)
}

// UnsupportedKindError is used when a caller asks for a body layout that
// does not exist.
type UnsupportedKindError struct {
	Kind Kind
}

// Error returns the error message.
func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("document kind %d is not supported", int(e.Kind))
}
