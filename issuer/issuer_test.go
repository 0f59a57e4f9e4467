package issuer

import (
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/veraison/go-cose"

	"github.com/twoddoc/twoddoc-go/document"
	"github.com/twoddoc/twoddoc-go/signature"
	"github.com/twoddoc/twoddoc-go/testhelper"
)

var fixtureHeader = Header{
	Version:             "04",
	AuthorityID:         "FR00",
	CertificateID:       "0001",
	DocumentDate:        time.Date(2013, time.June, 20, 0, 0, 0, 0, time.UTC),
	SignatureDate:       time.Date(2013, time.June, 20, 9, 30, 0, 0, time.UTC),
	DocumentTypeID:      "B2",
	DocumentPerimeterID: "01",
	DocumentCountry:     "FR",
}

var fixtureSanitary = document.Sanitary{
	Lastname:         "CORRINE",
	Firstname:        "BERTHIER",
	Birthdate:        "06/12/1965",
	Gender:           "F",
	AnalysisCode:     "000",
	AnalysisResult:   "X",
	AnalysisDatetime: "20/06/2013 12:00",
}

func TestEncodeHeader(t *testing.T) {
	header, err := EncodeHeader(fixtureHeader)
	if err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}
	if expect := "DC04FR00000113371337B201FR"; header != expect {
		t.Errorf("Expected %s but got %s", expect, header)
	}

	h := fixtureHeader
	h.Version = ""
	h.DocumentDate = time.Time{}
	header, err = EncodeHeader(h)
	if err != nil {
		t.Fatalf("EncodeHeader() error = %v", err)
	}
	if expect := "DC04FR00000100001337B201FR"; header != expect {
		t.Errorf("Expected %s but got %s", expect, header)
	}
}

func TestEncodeHeaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *Header)
	}{
		{name: "authority too long", mutate: func(h *Header) { h.AuthorityID = "FR000" }},
		{name: "country too short", mutate: func(h *Header) { h.DocumentCountry = "F" }},
		{name: "country with digits", mutate: func(h *Header) { h.DocumentCountry = "F1" }},
		{name: "version not digits", mutate: func(h *Header) { h.Version = "V4" }},
		{name: "date before epoch", mutate: func(h *Header) { h.DocumentDate = time.Date(1999, time.May, 1, 0, 0, 0, 0, time.UTC) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := fixtureHeader
			tt.mutate(&h)
			if _, err := EncodeHeader(h); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestIssue(t *testing.T) {
	tests := []struct {
		name   string
		curve  elliptic.Curve
		header Header
		body   document.Body
	}{
		{
			name:   "sanitary on P-256",
			curve:  elliptic.P256(),
			header: fixtureHeader,
			body:   fixtureSanitary,
		},
		{
			name:  "vaccination on P-384",
			curve: elliptic.P384(),
			header: Header{
				AuthorityID:         "FR00",
				CertificateID:       "0001",
				DocumentDate:        time.Date(2021, time.April, 29, 0, 0, 0, 0, time.UTC),
				SignatureDate:       time.Date(2021, time.April, 29, 0, 0, 0, 0, time.UTC),
				DocumentTypeID:      "L1",
				DocumentPerimeterID: "01",
				DocumentCountry:     "FR",
			},
			body: document.Vaccination{
				Lastname:        "THEOULE SUR MER",
				Firstname:       "JEAN PAUL",
				Birthdate:       "31/05/1962",
				Disease:         "COVID-19",
				PreventiveAgent: "J07BX03",
				Vaccine:         "COMIRNATY PFIZER/BIONTECH",
				VaccineMaker:    "COMIRNATY PFIZER/BIONTECH",
				DosesTaken:      "1",
				DosesExpected:   "2",
				LastDoseDate:    "01/03/2021",
				CycleState:      "CO",
			},
		},
		{
			name:   "sanitary on P-521",
			curve:  elliptic.P521(),
			header: fixtureHeader,
			body:   fixtureSanitary,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuple := testhelper.GetECCertTuple(tt.curve)
			iss, err := New(tuple.PrivateKey)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			cert, err := iss.Issue(tt.header, tt.body)
			if err != nil {
				t.Fatalf("Issue() error = %v", err)
			}
			if cert.Body() != tt.body {
				t.Errorf("Expected body %+v but got %+v", tt.body, cert.Body())
			}

			for _, key := range []string{tuple.PublicKeyPEM(), tuple.CertificatePEM()} {
				ok, err := cert.VerifySignature(key)
				if err != nil {
					t.Fatalf("VerifySignature() error = %v", err)
				}
				if !ok {
					t.Error("Expected the issued certificate to verify")
				}
			}
			if cert.TryVerifySignature(testhelper.PublicKeyPEM) {
				t.Error("Expected verification with another key to fail")
			}

			sig, err := signature.DecodeSignature(cert.Signature())
			if err != nil {
				t.Fatal(err)
			}
			keySpec, err := signature.ExtractKeySpec(&tuple.PrivateKey.PublicKey)
			if err != nil {
				t.Fatal(err)
			}
			verifier, err := cose.NewVerifier(coseAlgorithms[keySpec.SignatureAlgorithm()], tuple.PrivateKey.Public())
			if err != nil {
				t.Fatalf("cose.NewVerifier() error = %v", err)
			}
			if err := verifier.Verify([]byte(cert.Message()), sig); err != nil {
				t.Errorf("Expected the COSE verifier to accept the signature: %v", err)
			}
		})
	}
}

func TestIssueReproducesFixtureMessage(t *testing.T) {
	iss, err := New(testhelper.GetECCertTuple(elliptic.P256()).PrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	cert, err := iss.Issue(fixtureHeader, fixtureSanitary)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if cert.Message() != testhelper.SanitaryMessage {
		t.Errorf("Expected message %q but got %q", testhelper.SanitaryMessage, cert.Message())
	}
}

func TestSign(t *testing.T) {
	tuple := testhelper.GetECCertTuple(elliptic.P256())
	iss, err := New(tuple.PrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	data, err := iss.Sign(testhelper.VaccinationMessage)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !strings.HasPrefix(data, testhelper.VaccinationMessage+"\x1f") {
		t.Errorf("Expected payload to start with the message and separator")
	}
	cert, err := document.Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cert.TryVerifySignature(tuple.PublicKeyPEM()) {
		t.Error("Expected signature to verify")
	}

	if _, err := iss.Sign(testhelper.SanitaryPayload); err == nil {
		t.Error("Expected an error for a message containing the unit separator")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("Expected an error for a nil key")
	}

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	_, err = New(rsaKey)
	var unsupported *signature.UnsupportedKeyError
	if !errors.As(err, &unsupported) {
		t.Errorf("Expected UnsupportedKeyError but got %v", err)
	}
}
