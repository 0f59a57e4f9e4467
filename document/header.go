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
	"time"

	"github.com/twoddoc/twoddoc-go/internal/date"
)

// HeaderLength is the length of a 2D-DOC header in bytes.
const HeaderLength = 26

// headerTag opens every header.
const headerTag = "DC"

// Header holds the fixed-width fields shared by every document type.
type Header struct {
	// Version is the 2D-DOC format version, e.g. "04".
	Version string

	// AuthorityID identifies the certification authority.
	AuthorityID string

	// CertificateID identifies the authority certificate that signed the
	// document.
	CertificateID string

	// DocumentDate and DocumentSignatureDate are rendered with
	// date.FormatHexDays. Use DocumentTime and SignatureTime for calendar
	// dates.
	DocumentDate          string
	DocumentSignatureDate string

	DocumentTypeID      string
	DocumentPerimeterID string

	// DocumentCountry is an ISO-3166 alpha-2 country code.
	DocumentCountry string

	// RawDocumentDate and RawDocumentSignatureDate are the hexadecimal day
	// counts as written in the header.
	RawDocumentDate          string
	RawDocumentSignatureDate string
}

// DocumentTime returns the document issue date. ok is false when the header
// carries no date.
func (h Header) DocumentTime() (t time.Time, ok bool) {
	return date.ParseHexDays(h.RawDocumentDate)
}

// SignatureTime returns the signature creation date. ok is false when the
// header carries no date.
func (h Header) SignatureTime() (t time.Time, ok bool) {
	return date.ParseHexDays(h.RawDocumentSignatureDate)
}

type headerField struct {
	name  string
	width int
	class charClass
	set   func(h *Header, v string)
}

var headerLayout = []headerField{
	{name: "version", width: 2, class: classDigit, set: func(h *Header, v string) { h.Version = v }},
	{name: "authorityId", width: 4, class: classAlnum, set: func(h *Header, v string) { h.AuthorityID = v }},
	{name: "certificateId", width: 4, class: classAlnum, set: func(h *Header, v string) { h.CertificateID = v }},
	{name: "documentDate", width: 4, class: classHexDigit, set: func(h *Header, v string) {
		h.RawDocumentDate = v
		h.DocumentDate = date.FormatHexDays(v)
	}},
	{name: "documentSignatureDate", width: 4, class: classHexDigit, set: func(h *Header, v string) {
		h.RawDocumentSignatureDate = v
		h.DocumentSignatureDate = date.FormatHexDays(v)
	}},
	{name: "documentTypeId", width: 2, class: classAlnum, set: func(h *Header, v string) { h.DocumentTypeID = v }},
	{name: "documentPerimeterId", width: 2, class: classAlnum, set: func(h *Header, v string) { h.DocumentPerimeterID = v }},
	{name: "documentCountry", width: 2, class: classAlpha, set: func(h *Header, v string) { h.DocumentCountry = v }},
}

// ParseHeader parses the header at the start of message. Anything after the
// first HeaderLength bytes is ignored.
func ParseHeader(message string) (Header, error) {
	if len(message) < len(headerTag) || !strings.EqualFold(message[:len(headerTag)], headerTag) {
		return Header{}, &MalformedHeaderError{Field: "tag", Msg: "data does not start with " + headerTag}
	}

	var h Header
	offset := len(headerTag)
	for _, f := range headerLayout {
		if len(message) < offset+f.width {
			return Header{}, &MalformedHeaderError{Field: f.name, Offset: offset, Msg: "data is truncated"}
		}
		v := message[offset : offset+f.width]
		if !f.class.containsAll(v) {
			return Header{}, &MalformedHeaderError{Field: f.name, Offset: offset, Msg: "unexpected character in " + v}
		}
		f.set(&h, v)
		offset += f.width
	}
	return h, nil
}
