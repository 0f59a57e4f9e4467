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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"

	"github.com/twoddoc/twoddoc-go/document"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatCBOR = "cbor"
)

type headerRecord struct {
	Version               string `json:"version" cbor:"version"`
	AuthorityID           string `json:"authorityId" cbor:"authorityId"`
	CertificateID         string `json:"certificateId" cbor:"certificateId"`
	DocumentDate          string `json:"documentDate" cbor:"documentDate"`
	DocumentSignatureDate string `json:"documentSignatureDate" cbor:"documentSignatureDate"`
	DocumentTypeID        string `json:"documentTypeId" cbor:"documentTypeId"`
	DocumentPerimeterID   string `json:"documentPerimeterId" cbor:"documentPerimeterId"`
	DocumentCountry       string `json:"documentCountry" cbor:"documentCountry"`
}

type record struct {
	Kind      string            `json:"kind" cbor:"kind"`
	Header    headerRecord      `json:"header" cbor:"header"`
	Body      map[string]string `json:"body" cbor:"body"`
	Signature string            `json:"signature" cbor:"signature"`
	Valid     *bool             `json:"valid,omitempty" cbor:"valid,omitempty"`
}

type namedValue struct {
	name  string
	value string
}

// bodyFields lists the body accessors in field order.
func bodyFields(b document.Body) []namedValue {
	switch b := b.(type) {
	case document.Sanitary:
		return []namedValue{
			{"lastname", b.Lastname},
			{"firstname", b.Firstname},
			{"birthdate", b.Birthdate},
			{"gender", b.Gender},
			{"analysisCode", b.AnalysisCode},
			{"analysisResult", b.AnalysisResult},
			{"analysisDatetime", b.AnalysisDatetime},
		}
	case document.Vaccination:
		return []namedValue{
			{"lastname", b.Lastname},
			{"firstname", b.Firstname},
			{"birthdate", b.Birthdate},
			{"disease", b.Disease},
			{"preventiveAgent", b.PreventiveAgent},
			{"vaccine", b.Vaccine},
			{"vaccineMaker", b.VaccineMaker},
			{"dosesTaken", b.DosesTaken},
			{"dosesExpected", b.DosesExpected},
			{"lastDoseDate", b.LastDoseDate},
			{"cycleState", b.CycleState},
		}
	}
	return nil
}

func newRecord(cert *document.Certificate) record {
	h := cert.Header()
	body := make(map[string]string)
	for _, f := range bodyFields(cert.Body()) {
		body[f.name] = f.value
	}
	return record{
		Kind: cert.Kind().String(),
		Header: headerRecord{
			Version:               h.Version,
			AuthorityID:           h.AuthorityID,
			CertificateID:         h.CertificateID,
			DocumentDate:          h.DocumentDate,
			DocumentSignatureDate: h.DocumentSignatureDate,
			DocumentTypeID:        h.DocumentTypeID,
			DocumentPerimeterID:   h.DocumentPerimeterID,
			DocumentCountry:       h.DocumentCountry,
		},
		Body:      body,
		Signature: cert.Signature(),
	}
}

// writeRecord writes rec to w in the given format.
func writeRecord(w io.Writer, format string, cert *document.Certificate, rec record) error {
	switch format {
	case formatJSON:
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatCBOR:
		b, err := cbor.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = w.Write(b)
		return err
	case formatText, "":
		return writeText(w, cert, rec)
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeText(w io.Writer, cert *document.Certificate, rec record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "=== 2D-DOC %s certificate ===\n", rec.Kind)
	h := rec.Header
	for _, f := range []namedValue{
		{"version", h.Version},
		{"authorityId", h.AuthorityID},
		{"certificateId", h.CertificateID},
		{"documentDate", h.DocumentDate},
		{"documentSignatureDate", h.DocumentSignatureDate},
		{"documentTypeId", h.DocumentTypeID},
		{"documentPerimeterId", h.DocumentPerimeterID},
		{"documentCountry", h.DocumentCountry},
	} {
		fmt.Fprintf(tw, "%s:\t%s\n", f.name, f.value)
	}
	for _, f := range bodyFields(cert.Body()) {
		fmt.Fprintf(tw, "%s:\t%s\n", f.name, f.value)
	}
	if rec.Valid != nil {
		fmt.Fprintf(tw, "signature:\t%s\n", validity(*rec.Valid))
	}
	return tw.Flush()
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
