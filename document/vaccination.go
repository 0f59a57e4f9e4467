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

// Vaccination is the body of a vaccination certificate (document type L1).
type Vaccination struct {
	Lastname  string
	Firstname string

	// Birthdate is rendered as DD/MM/YYYY.
	Birthdate string

	Disease         string
	PreventiveAgent string
	Vaccine         string
	VaccineMaker    string

	DosesTaken    string
	DosesExpected string

	// LastDoseDate is rendered as DD/MM/YYYY.
	LastDoseDate string

	// CycleState is the state of the vaccination cycle, e.g. "CO" for
	// completed.
	CycleState string
}

var vaccinationFields = []field{
	{tag: "L0", min: 0, max: 80, class: className},
	{tag: "L1", min: 0, max: 80, class: className},
	{tag: "L2", min: 8, max: 8, class: classDigit, date: ddmmyyyy},
	{tag: "L3", min: 0, max: 30, class: classText},
	{tag: "L4", min: 5, max: 15, class: classText},
	{tag: "L5", min: 5, max: 30, class: classText},
	{tag: "L6", min: 5, max: 30, class: classText},
	{tag: "L7", min: 1, max: 1, class: classDigit},
	{tag: "L8", min: 1, max: 1, class: classDigit},
	{tag: "L9", min: 8, max: 8, class: classDigit, date: ddmmyyyy},
	{tag: "LA", min: 2, max: 2, class: classAlpha},
}

// Kind implements Body.
func (Vaccination) Kind() Kind { return KindVaccination }

func (v Vaccination) values() []string {
	return []string{
		v.Lastname,
		v.Firstname,
		v.Birthdate,
		v.Disease,
		v.PreventiveAgent,
		v.Vaccine,
		v.VaccineMaker,
		v.DosesTaken,
		v.DosesExpected,
		v.LastDoseDate,
		v.CycleState,
	}
}

func newVaccination(v []string) Vaccination {
	return Vaccination{
		Lastname:        v[0],
		Firstname:       v[1],
		Birthdate:       v[2],
		Disease:         v[3],
		PreventiveAgent: v[4],
		Vaccine:         v[5],
		VaccineMaker:    v[6],
		DosesTaken:      v[7],
		DosesExpected:   v[8],
		LastDoseDate:    v[9],
		CycleState:      v[10],
	}
}
