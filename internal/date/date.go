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

// Package date decodes the two date encodings found in 2D-DOC headers and
// bodies.
//
// Both decoders pass their input through unchanged when it cannot be a date:
// an empty or all-zero hexadecimal day count, or an ASCII date of the wrong
// length. Callers must treat such values as "not applicable".
package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Epoch is the origin of the hexadecimal day counts carried by headers.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	dateLength     = 8  // DDMMYYYY
	datetimeLength = 12 // DDMMYYYYHHmm
	maxDayCount    = 0xFFFF
)

// ParseHexDays returns the calendar day encoded by a hexadecimal count of
// days since Epoch. ok is false for the empty string, zero, or input that is
// not hexadecimal.
func ParseHexDays(hex string) (t time.Time, ok bool) {
	if hex == "" {
		return time.Time{}, false
	}
	days, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || days == 0 {
		return time.Time{}, false
	}
	return Epoch.Add(time.Duration(days) * 24 * time.Hour), true
}

// FormatHexDays renders a hexadecimal day count as "W/M/YYYY", where W is the
// day of the week (Sunday is 0) and M is the zero-based month. This is the
// rendering existing 2D-DOC readers produce and it is kept for
// compatibility; use ParseHexDays for the real calendar date.
//
// Inputs that ParseHexDays rejects are returned unchanged.
func FormatHexDays(hex string) string {
	t, ok := ParseHexDays(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("%d/%d/%d", int(t.Weekday()), int(t.Month())-1, t.Year())
}

// HexDays encodes the calendar day of t as a 4-digit hexadecimal count of
// days since Epoch. The zero time encodes as "0000".
func HexDays(t time.Time) (string, error) {
	if t.IsZero() {
		return "0000", nil
	}
	u := t.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	days := int64(day.Sub(Epoch) / (24 * time.Hour))
	if days < 1 || days > maxDayCount {
		return "", fmt.Errorf("date %s is outside the range of a 2D-DOC day count", day.Format(time.DateOnly))
	}
	return fmt.Sprintf("%04X", days), nil
}

// FormatDate re-slices a DDMMYYYY string into "DD/MM/YYYY". No calendar
// validation is done. Input of any other length is returned unchanged.
func FormatDate(s string) string {
	if len(s) != dateLength {
		return s
	}
	return s[0:2] + "/" + s[2:4] + "/" + s[4:8]
}

// FormatDatetime re-slices a DDMMYYYYHHmm string into "DD/MM/YYYY HH:mm".
// Input of any other length is returned unchanged.
func FormatDatetime(s string) string {
	if len(s) != datetimeLength {
		return s
	}
	return s[0:2] + "/" + s[2:4] + "/" + s[4:8] + " " + s[8:10] + ":" + s[10:12]
}

// Compact undoes FormatDate and FormatDatetime.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', ' ', ':':
			return -1
		}
		return r
	}, s)
}
