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

// charClass is a set of ASCII character ranges, matched case-insensitively.
type charClass uint8

const (
	classAlpha  charClass = 1 << iota // A-Z
	classDigit                        // 0-9
	classHex                          // A-F
	classSpace                        // white space
	classPunct                        // . / -

	classAlnum    = classAlpha | classDigit
	classHexDigit = classHex | classDigit
	className     = classAlpha | classSpace | classPunct
	classText     = classAlnum | classSpace | classPunct
)

func (c charClass) contains(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		b -= 'a' - 'A'
		fallthrough
	case b >= 'A' && b <= 'Z':
		if c&classAlpha != 0 {
			return true
		}
		return c&classHex != 0 && b <= 'F'
	case b >= '0' && b <= '9':
		return c&classDigit != 0
	case b == ' ', b == '\t', b == '\n', b == '\v', b == '\f', b == '\r':
		return c&classSpace != 0
	case b == '.', b == '/', b == '-':
		return c&classPunct != 0
	}
	return false
}

func (c charClass) containsAll(s string) bool {
	for i := 0; i < len(s); i++ {
		if !c.contains(s[i]) {
			return false
		}
	}
	return true
}
