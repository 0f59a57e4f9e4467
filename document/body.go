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
	"fmt"
	"strings"

	"github.com/twoddoc/twoddoc-go/internal/date"
)

// GroupSeparator may terminate a body field value before the next tag.
const GroupSeparator = '\x1d'

// Kind identifies a body layout.
type Kind int

const (
	KindSanitary Kind = 1 + iota
	KindVaccination
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSanitary:
		return "sanitary"
	case KindVaccination:
		return "vaccination"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var kindByTypeID = map[string]Kind{
	"B2": KindSanitary,
	"L1": KindVaccination,
}

// KindForType returns the body layout of a header document type id.
func KindForType(typeID string) (Kind, bool) {
	k, ok := kindByTypeID[strings.ToUpper(typeID)]
	return k, ok
}

// Body is the type-specific part of a certificate. The set of
// implementations is closed: Sanitary and Vaccination.
type Body interface {
	// Kind returns the layout of the body.
	Kind() Kind

	// values returns the field values in table order, as exposed by the
	// accessors.
	values() []string
}

type dateFormat int

const (
	noDate dateFormat = iota
	ddmmyyyy
	ddmmyyyyhhmm
)

// field describes one tagged body field.
type field struct {
	tag      string
	min, max int
	class    charClass

	// oneOf restricts a single-character value to the listed characters.
	oneOf string

	date dateFormat
}

func (f field) accepts(b byte) bool {
	if f.oneOf != "" {
		return strings.IndexByte(f.oneOf, upper(b)) >= 0
	}
	return f.class.contains(b)
}

func (f field) format(v string) string {
	switch f.date {
	case ddmmyyyy:
		return date.FormatDate(v)
	case ddmmyyyyhhmm:
		return date.FormatDatetime(v)
	}
	return v
}

func (f field) encode(v string) string {
	if f.date != noDate {
		return date.Compact(v)
	}
	return v
}

func fieldsFor(kind Kind) ([]field, error) {
	switch kind {
	case KindSanitary:
		return sanitaryFields, nil
	case KindVaccination:
		return vaccinationFields, nil
	}
	return nil, &UnsupportedKindError{Kind: kind}
}

// extract matches body against fields and returns the formatted values. The
// tags must appear in table order, each exactly once, and the fields must
// consume the whole body.
func extract(kind Kind, fields []field, body string) ([]string, error) {
	m := &matcher{
		fields: fields,
		body:   body,
		values: make([]string, len(fields)),
		failed: make(map[[2]int]bool),
	}
	if !m.match(0, 0) {
		return nil, m.err(kind)
	}
	for i, f := range fields {
		m.values[i] = f.format(m.values[i])
	}
	return m.values, nil
}

// matcher backtracks over value lengths, longest first, and over the
// optional group separator, present first.
type matcher struct {
	fields []field
	body   string
	values []string

	// failed memoizes (field, offset) pairs known not to match.
	failed map[[2]int]bool

	furthest    int
	furthestTag string
	reason      string
}

func (m *matcher) match(i, pos int) bool {
	if i == len(m.fields) {
		if pos != len(m.body) {
			m.note(pos, "", "unexpected trailing data")
			return false
		}
		return true
	}
	key := [2]int{i, pos}
	if m.failed[key] {
		return false
	}

	f := m.fields[i]
	if len(m.body)-pos < len(f.tag) || !strings.EqualFold(m.body[pos:pos+len(f.tag)], f.tag) {
		if pos == len(m.body) {
			m.note(pos, f.tag, "missing field")
		} else {
			m.note(pos, f.tag, "unexpected tag")
		}
		m.failed[key] = true
		return false
	}

	start := pos + len(f.tag)
	n := 0
	for n < f.max && start+n < len(m.body) && f.accepts(m.body[start+n]) {
		n++
	}
	if n < f.min {
		m.note(start+n, f.tag, fmt.Sprintf("value must be %d to %d characters", f.min, f.max))
	}
	for l := n; l >= f.min; l-- {
		end := start + l
		m.values[i] = m.body[start:end]
		if end < len(m.body) && m.body[end] == GroupSeparator && m.match(i+1, end+1) {
			return true
		}
		if m.match(i+1, end) {
			return true
		}
	}
	m.failed[key] = true
	return false
}

func (m *matcher) note(pos int, tag, reason string) {
	if pos >= m.furthest {
		m.furthest = pos
		m.furthestTag = tag
		m.reason = reason
	}
}

func (m *matcher) err(kind Kind) error {
	return &MalformedBodyError{
		Kind:   kind,
		Tag:    m.furthestTag,
		Offset: m.furthest,
		Msg:    m.reason,
	}
}

// EncodeBody encodes b as the tagged field sequence of its kind. A group
// separator follows every variable-length field except the last one. The
// result is checked against the field table.
func EncodeBody(b Body) (string, error) {
	fields, err := fieldsFor(b.Kind())
	if err != nil {
		return "", err
	}
	values := b.values()
	var sb strings.Builder
	for i, f := range fields {
		sb.WriteString(f.tag)
		sb.WriteString(f.encode(values[i]))
		if f.min != f.max && i < len(fields)-1 {
			sb.WriteByte(GroupSeparator)
		}
	}
	body := sb.String()
	if _, err := extract(b.Kind(), fields, body); err != nil {
		return "", err
	}
	return body, nil
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
