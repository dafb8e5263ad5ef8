// SPDX-License-Identifier: MIT

// Package sysfile decodes linear-system documents into fraction matrices.
//
// Document shape (YAML):
//
//	rows:              # or `columns:`; exactly one of the two
//	  - ["1", "-2", "1"]
//	  - [0, 2, "-8"]
//	b: [0, 8, 10]      # optional right-hand side
//
// Entries are integers or "n/d" fractions. Unknown keys are rejected.
package sysfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/katalvlaran/linalg/matrix"
)

var (
	// ErrNoMatrix is returned when the document has neither rows nor columns.
	ErrNoMatrix = errors.New("sysfile: document has no rows or columns")

	// ErrAmbiguous is returned when the document has both rows and columns.
	ErrAmbiguous = errors.New("sysfile: document has both rows and columns")
)

// System is a decoded document: the coefficient matrix and optional right-hand side.
type System struct {
	A *matrix.Dense[fraction.Fraction]
	B []fraction.Fraction // nil when the document has no `b`
}

// document mirrors the YAML layout; entries stay textual until parsed so
// errors can name their position.
type document struct {
	Rows    [][]string `yaml:"rows"`
	Columns [][]string `yaml:"columns"`
	B       []string   `yaml:"b"`
}

// Load reads and decodes the document at path.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: read %s: %w", path, err)
	}
	sys, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sys, nil
}

// Parse decodes a document from data.
//
// Errors:
//   - ErrNoMatrix, ErrAmbiguous.
//   - YAML syntax / unknown-field errors from gopkg.in/yaml.v3.
//   - fraction.ErrSyntax / fraction.ErrDivisionByZero wrapped with the entry position.
//   - matrix.ErrInvalidDimensions / matrix.ErrRaggedInput from construction.
func Parse(data []byte) (*System, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMatrix // empty document
		}

		return nil, fmt.Errorf("sysfile: decode: %w", err)
	}

	hasRows, hasCols := len(doc.Rows) > 0, len(doc.Columns) > 0
	switch {
	case hasRows && hasCols:
		return nil, ErrAmbiguous
	case !hasRows && !hasCols:
		return nil, ErrNoMatrix
	}

	sys := &System{}
	var err error
	if hasRows {
		sys.A, err = build("rows", doc.Rows, matrix.NewFromRows[fraction.Fraction])
	} else {
		sys.A, err = build("columns", doc.Columns, matrix.NewFromColumns[fraction.Fraction])
	}
	if err != nil {
		return nil, err
	}

	if doc.B != nil {
		if sys.B, err = parseVec("b", doc.B); err != nil {
			return nil, err
		}
	}

	return sys, nil
}

// build parses nested entries and hands them to the given constructor.
func build(
	key string,
	nested [][]string,
	ctor func([][]fraction.Fraction) (*matrix.Dense[fraction.Fraction], error),
) (*matrix.Dense[fraction.Fraction], error) {
	vals := make([][]fraction.Fraction, len(nested))
	for i, entries := range nested {
		v, err := parseVec(fmt.Sprintf("%s[%d]", key, i), entries)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	m, err := ctor(vals)
	if err != nil {
		return nil, fmt.Errorf("sysfile: %s: %w", key, err)
	}

	return m, nil
}

func parseVec(where string, entries []string) ([]fraction.Fraction, error) {
	out := make([]fraction.Fraction, len(entries))
	for j, s := range entries {
		f, err := fraction.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("sysfile: %s[%d]: %w", where, j, err)
		}
		out[j] = f
	}

	return out, nil
}
