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
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/twoddoc/twoddoc-go/issuer"
	"github.com/twoddoc/twoddoc-go/x509"
)

func signCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "Sign a 2D-DOC header and body and print the resulting payload",
		Flags: append(inputFlags("Header and body to sign"),
			typeFlag(),
			&cli.StringFlag{
				Name:     "key",
				Usage:    "Path to the PEM encoded ECDSA private key",
				Required: true,
				Sources:  cli.EnvVars("TWODDOC_PRIVATE_KEY"),
			},
		),
		Action: runSignCommand,
	}
}

func runSignCommand(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	message, err := readInput(cmd)
	if err != nil {
		return err
	}
	key, err := x509.ReadPrivateKeyFile(cmd.String("key"))
	if err != nil {
		return err
	}
	iss, err := issuer.New(key)
	if err != nil {
		return err
	}
	payload, err := iss.Sign(message)
	if err != nil {
		return fmt.Errorf("failed to sign message: %w", err)
	}

	// the result must decode before it is handed out
	cert, err := parseAs(cmd.String("type"), payload)
	if err != nil {
		return fmt.Errorf("signed payload does not decode: %w", err)
	}
	logger.Debug("signed message",
		"kind", cert.Kind().String(),
		"curve", key.Curve.Params().Name,
		"signatureLength", len(cert.Signature()))

	_, err = fmt.Fprintln(writer(cmd), payload)
	return err
}
