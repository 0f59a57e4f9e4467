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
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/twoddoc/twoddoc-go/document"
	"github.com/twoddoc/twoddoc-go/signature"
	"github.com/twoddoc/twoddoc-go/x509"
)

var errInvalidSignature = errors.New("signature is invalid")

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Decode a 2D-DOC payload and verify its signature",
		Flags: append(inputFlags("Raw 2D-DOC payload"),
			typeFlag(),
			formatFlag(),
			&cli.StringFlag{
				Name:    "key",
				Usage:   "Path to the public key or certificate of the issuer, PEM or DER",
				Sources: cli.EnvVars("TWODDOC_PUBLIC_KEY"),
			},
			&cli.StringFlag{
				Name:    "chain",
				Usage:   "Path to the certificate chain of the issuer, leaf first, validated at the signature date",
				Sources: cli.EnvVars("TWODDOC_CERT_CHAIN"),
			},
		),
		Action: runVerifyCommand,
	}
}

func runVerifyCommand(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	cert, err := parseCertificate(cmd)
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	key, err := verificationKey(cmd, cert)
	if err != nil {
		return err
	}
	ok, err := signature.VerifyKey([]byte(cert.Message()), cert.Signature(), key)
	if err != nil {
		return fmt.Errorf("failed to verify signature: %w", err)
	}
	logger.Debug("verified signature",
		"kind", cert.Kind().String(),
		"authority", cert.Header().AuthorityID,
		"certificate", cert.Header().CertificateID,
		"curve", key.Curve.Params().Name,
		"valid", ok)

	rec := newRecord(cert)
	rec.Valid = &ok
	if err := writeRecord(writer(cmd), cmd.String("format"), cert, rec); err != nil {
		return err
	}
	if !ok {
		return errInvalidSignature
	}
	return nil
}

// verificationKey returns the key selected by --key, or the leaf key of the
// chain selected by --chain once the chain is validated.
func verificationKey(cmd *cli.Command, cert *document.Certificate) (*ecdsa.PublicKey, error) {
	keyPath := cmd.String("key")
	chainPath := cmd.String("chain")
	switch {
	case keyPath == "" && chainPath == "":
		return nil, errors.New("either --key or --chain must be provided")
	case keyPath != "" && chainPath != "":
		return nil, errors.New("only one of --key or --chain should be provided")
	case keyPath != "":
		return x509.ReadPublicKeyFile(keyPath)
	}

	chain, err := x509.ReadCertificateFile(chainPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate chain: %w", err)
	}
	var signingDate *time.Time
	if t, ok := cert.Header().SignatureTime(); ok {
		signingDate = &t
	}
	if err := x509.ValidateSigningCertChain(chain, signingDate); err != nil {
		return nil, fmt.Errorf("invalid certificate chain: %w", err)
	}
	return x509.LeafKey(chain)
}
