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

package x509

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/x509"
	"errors"
	"fmt"
	"time"
)

// signingDay is the precision of 2D-DOC signature dates.
const signingDay = 24 * time.Hour

// ValidateSigningCertChain takes an ordered certificate chain, leaf first,
// and validates issuance from the leaf to a self-signed root.
//
// The leaf must carry an ECDSA key on P-256, P-384 or P-521 usable for
// digital signatures. If signingDate is not nil, every certificate must be
// valid at some point of that day.
func ValidateSigningCertChain(certChain []*x509.Certificate, signingDate *time.Time) error {
	if len(certChain) < 2 {
		return errors.New("certificate chain must contain at least two certificates: a root and a leaf certificate")
	}

	for i, cert := range certChain {
		if err := validateSigningDate(cert, signingDate); err != nil {
			return err
		}
		if i == len(certChain)-1 {
			if !isSelfSigned(cert) {
				return errors.New("certificate chain must end with a root certificate (root certificates are self-signed)")
			}
		} else {
			if isSelfSigned(cert) {
				return errors.New("certificate chain must not contain self-signed intermediate certificates")
			} else if next := certChain[i+1]; !isIssuedBy(cert, next) {
				return fmt.Errorf("certificate with subject %q is not issued by %q", cert.Subject, next.Subject)
			}
		}

		if i == 0 {
			if err := validateLeafCertificate(cert); err != nil {
				return err
			}
		} else if err := validateCACertificate(cert, i-1); err != nil {
			return err
		}
	}
	return nil
}

// LeafKey returns the ECDSA key of the first certificate of a chain.
func LeafKey(certChain []*x509.Certificate) (*ecdsa.PublicKey, error) {
	if len(certChain) == 0 {
		return nil, errors.New("certificate chain is empty")
	}
	key, ok := certChain[0].PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("certificate with subject %q: key is %T, not ECDSA", certChain[0].Subject, certChain[0].PublicKey)
	}
	return key, nil
}

func isSelfSigned(cert *x509.Certificate) bool {
	return isIssuedBy(cert, cert)
}

func isIssuedBy(subject *x509.Certificate, issuer *x509.Certificate) bool {
	err := subject.CheckSignatureFrom(issuer)
	return err == nil && bytes.Equal(issuer.RawSubject, subject.RawIssuer)
}

func validateSigningDate(cert *x509.Certificate, signingDate *time.Time) error {
	if signingDate == nil {
		return nil
	}
	day := signingDate.UTC().Truncate(signingDay)
	if !day.Add(signingDay).After(cert.NotBefore) || day.After(cert.NotAfter) {
		return fmt.Errorf("certificate with subject %q was invalid at signing date %s. Certificate is valid from [%s] to [%s]",
			cert.Subject, day.Format(time.DateOnly), cert.NotBefore.UTC(), cert.NotAfter.UTC())
	}
	return nil
}

func validateCACertificate(cert *x509.Certificate, expectedPathLen int) error {
	if !cert.BasicConstraintsValid || !cert.IsCA {
		return fmt.Errorf("certificate with subject %q: ca field in basic constraints must be present, critical, and set to true", cert.Subject)
	}
	maxPathLen := cert.MaxPathLen
	isMaxPathLenPresent := maxPathLen > 0 || (maxPathLen == 0 && cert.MaxPathLenZero)
	if isMaxPathLenPresent && maxPathLen < expectedPathLen {
		return fmt.Errorf("certificate with subject %q: expected path length of %d but certificate has path length %d instead", cert.Subject, expectedPathLen, maxPathLen)
	}
	if cert.KeyUsage != 0 && cert.KeyUsage&x509.KeyUsageCertSign == 0 {
		return fmt.Errorf("certificate with subject %q: key usage must have the bit positions for key cert sign set", cert.Subject)
	}
	return nil
}

func validateLeafCertificate(cert *x509.Certificate) error {
	if cert.BasicConstraintsValid && cert.IsCA {
		return fmt.Errorf("certificate with subject %q: if the basic constraints extension is present, the ca field must be set to false", cert.Subject)
	}
	if cert.KeyUsage != 0 && cert.KeyUsage&x509.KeyUsageDigitalSignature == 0 {
		return fmt.Errorf("certificate with subject %q: key usage must have the bit positions for digital signature set", cert.Subject)
	}
	key, ok := cert.PublicKey.(*ecdsa.PublicKey)
	if !ok {
		return fmt.Errorf("certificate with subject %q: unsupported public key type %T", cert.Subject, cert.PublicKey)
	}
	switch bitSize := key.Curve.Params().BitSize; bitSize {
	case 256, 384, 521:
		return nil
	default:
		return fmt.Errorf("certificate with subject %q: ecdsa key size %d bits is not supported", cert.Subject, bitSize)
	}
}
