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
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Usage:   "Output format: text, json or cbor",
		Value:   formatText,
		Sources: cli.EnvVars("TWODDOC_FORMAT"),
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:   "decode",
		Usage:  "Decode a 2D-DOC payload without verifying its signature",
		Flags:  append(inputFlags("Raw 2D-DOC payload"), typeFlag(), formatFlag()),
		Action: runDecodeCommand,
	}
}

func runDecodeCommand(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	cert, err := parseCertificate(cmd)
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	logger.Debug("decoded payload",
		"kind", cert.Kind().String(),
		"documentType", cert.Header().DocumentTypeID,
		"authority", cert.Header().AuthorityID,
		"certificate", cert.Header().CertificateID)

	return writeRecord(writer(cmd), cmd.String("format"), cert, newRecord(cert))
}
