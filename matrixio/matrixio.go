// SPDX-License-Identifier: MIT
// Package matrixio reads and writes matrix documents.
//
// A document holds the rows of a matrix under a single "rows" key and may be
// written in YAML or JSON (JSON is accepted wherever YAML is):
//
//	rows:
//	  - [2, 5, 7]
//	  - [6, 3, 4]
//	  - [5, -2, -3]
//
// Decoding goes through matrix.NewFromRows, so empty or ragged rows fail with
// matrix.ErrBadShape and the usual status tiers apply.
package matrixio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/katalvlaran/densemat/matrix"
)

// StdinPath names standard input in Load.
const StdinPath = "-"

// Format selects the encoding produced by Encode.
type Format string

const (
	// FormatYAML encodes a document as YAML.
	FormatYAML Format = "yaml"
	// FormatJSON encodes a document as a single JSON line.
	FormatJSON Format = "json"
	// FormatText renders bracketed rows, one per line, as Dense.String does.
	FormatText Format = "text"
)

var (
	// ErrEmptyDocument is returned when the input holds no rows at all.
	ErrEmptyDocument = fmt.Errorf("%w: empty matrix document", matrix.ErrInvalidInput)

	// ErrUnknownFormat is returned for a Format outside yaml|json|text.
	ErrUnknownFormat = fmt.Errorf("%w: unknown format", matrix.ErrInvalidInput)
)

// Document is the serialized form of a matrix.
type Document struct {
	Rows [][]float64 `json:"rows"`
}

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatYAML, FormatJSON, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("matrixio: %q: %w", s, ErrUnknownFormat)
}

// Decode parses a YAML or JSON document into a new *matrix.Dense.
// opts are forwarded to matrix.NewFromRows.
func Decode(data []byte, opts ...matrix.Option) (*matrix.Dense, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("matrixio: decode: %w", ErrEmptyDocument)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, fmt.Errorf("matrixio: decode: %w", ErrEmptyDocument)
	}

	m, err := matrix.NewFromRows(doc.Rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}

	return m, nil
}

// Read drains r and decodes its contents.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}

	return Decode(data, opts...)
}

// Load decodes the document at path; StdinPath reads os.Stdin.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	if path == StdinPath {
		return Read(os.Stdin, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode renders m in the requested format.
// YAML and JSON cannot carry NaN or ±Inf; such cells fail to encode and only
// FormatText will render them.
func Encode(m matrix.Matrix, format Format) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("matrixio: encode: %w", err)
	}

	d, err := asDense(m)
	if err != nil {
		return nil, fmt.Errorf("matrixio: encode: %w", err)
	}

	var out []byte
	switch format {
	case FormatText:
		return []byte(d.String()), nil
	case FormatYAML:
		out, err = yaml.Marshal(Document{Rows: d.RawRows()})
	case FormatJSON:
		if out, err = json.Marshal(Document{Rows: d.RawRows()}); err == nil {
			out = append(out, '\n')
		}
	default:
		return nil, fmt.Errorf("matrixio: encode: %q: %w", string(format), ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("matrixio: encode: %w", err)
	}

	return out, nil
}

// Write encodes m and writes it to w.
func Write(w io.Writer, m matrix.Matrix, format Format) error {
	out, err := Encode(m, format)
	if err != nil {
		return err
	}
	_, err = w.Write(out)

	return err
}

// asDense returns m itself when it is a *Dense and a copy otherwise.
func asDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
