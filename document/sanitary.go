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

// Sanitary is the body of a laboratory test certificate (document type B2).
type Sanitary struct {
	Lastname  string
	Firstname string

	// Birthdate is rendered as DD/MM/YYYY.
	Birthdate string

	// Gender is M (male), F (female) or U (unknown).
	Gender string

	AnalysisCode string

	// AnalysisResult is P (positive), N (negative), I (undetermined) or
	// X (non-compliant sample).
	AnalysisResult string

	// AnalysisDatetime is rendered as DD/MM/YYYY HH:mm.
	AnalysisDatetime string
}

var sanitaryFields = []field{
	{tag: "F0", min: 0, max: 60, class: className},
	{tag: "F1", min: 0, max: 38, class: className},
	{tag: "F2", min: 8, max: 8, class: classDigit, date: ddmmyyyy},
	{tag: "F3", min: 1, max: 1, oneOf: "MFU"},
	{tag: "F4", min: 3, max: 7, class: classText},
	{tag: "F5", min: 1, max: 1, oneOf: "PNIX"},
	{tag: "F6", min: 12, max: 12, class: classDigit, date: ddmmyyyyhhmm},
}

// Kind implements Body.
func (Sanitary) Kind() Kind { return KindSanitary }

func (s Sanitary) values() []string {
	return []string{
		s.Lastname,
		s.Firstname,
		s.Birthdate,
		s.Gender,
		s.AnalysisCode,
		s.AnalysisResult,
		s.AnalysisDatetime,
	}
}

func newSanitary(v []string) Sanitary {
	return Sanitary{
		Lastname:         v[0],
		Firstname:        v[1],
		Birthdate:        v[2],
		Gender:           v[3],
		AnalysisCode:     v[4],
		AnalysisResult:   v[5],
		AnalysisDatetime: v[6],
	}
}
