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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/twoddoc/twoddoc-go/document"
)

// escapes lets control characters be typed on a command line.
var escapes = strings.NewReplacer(
	`\x1d`, "\x1d", `\x1D`, "\x1d",
	`\x1e`, "\x1e", `\x1E`, "\x1e",
	`\x1f`, "\x1f", `\x1F`, "\x1f",
	"<GS>", "\x1d",
	"<RS>", "\x1e",
	"<US>", "\x1f",
)

func inputFlags(usage string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: usage + `; control characters may be written \x1d, \x1f, <GS> or <US>`,
		},
		&cli.StringFlag{
			Name:  "file",
			Usage: "Path to a file holding the " + strings.ToLower(usage),
		},
	}
}

// readInput returns the text passed with --data or --file.
func readInput(cmd *cli.Command) (string, error) {
	data := cmd.String("data")
	path := cmd.String("file")
	if data == "" && path == "" {
		return "", errors.New("either --data or --file must be provided")
	}
	if data != "" && path != "" {
		return "", errors.New("only one of --data or --file should be provided")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		data = strings.TrimRight(string(b), "\r\n")
	}
	return escapes.Replace(data), nil
}

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "type",
		Usage:   "Document layout: auto, sanitary or vaccination",
		Value:   "auto",
		Sources: cli.EnvVars("TWODDOC_TYPE"),
	}
}

// parseCertificate parses the input with the layout selected by --type.
func parseCertificate(cmd *cli.Command) (*document.Certificate, error) {
	data, err := readInput(cmd)
	if err != nil {
		return nil, err
	}
	return parseAs(cmd.String("type"), data)
}

// parseAs parses data with the layout named by t.
func parseAs(t, data string) (*document.Certificate, error) {
	switch t = strings.ToLower(t); t {
	case "", "auto":
		return document.Parse(data)
	case "sanitary":
		return document.ParseSanitary(data)
	case "vaccination":
		return document.ParseVaccination(data)
	default:
		return nil, fmt.Errorf("unknown document type %q", t)
	}
}
