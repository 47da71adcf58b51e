// Package matrixfile reads adjacency matrices and their queries from YAML
// (or JSON, which YAML accepts) documents:
//
//	name: basic
//	matrix:
//	  - [0, 4, 0, 2]
//	  - [0, 0, 6, 0]
//	  - [0, 0, 0, 0]
//	  - [0, 1, 10, 0]
//	queries:
//	  - {from: 0, to: 1}
//	  - {from: 0, to: 2}
//
// Shape is not checked here; a non-square matrix is reported by the solver
// as a failed answer for each query.
package matrixfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floydpaths/floyd"
)

var (
	// ErrNoMatrix indicates a document without a matrix.
	ErrNoMatrix = errors.New("matrixfile: document has no matrix")

	// ErrFormat indicates an unsupported file extension.
	ErrFormat = errors.New("matrixfile: unsupported format")
)

// Query is one start→end request.
type Query struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Document is one matrix file.
type Document struct {
	Name    string      `yaml:"name"`
	Matrix  [][]float64 `yaml:"matrix"`
	Queries []Query     `yaml:"queries"`
}

// Load reads the document at path. Supported extensions: .yaml, .yml, .json.
// A document without a name is named after the file.
func Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s (supported: .yaml, .yml, .json)", ErrFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open matrix file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return doc, nil
}

// Decode parses a single document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoMatrix
		}

		return nil, fmt.Errorf("parse matrix document: %w", err)
	}
	if len(doc.Matrix) == 0 {
		return nil, ErrNoMatrix
	}

	return &doc, nil
}

// Encode writes doc as YAML to w.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode matrix document: %w", err)
	}

	return enc.Close()
}

// FromSample converts a built-in sample into a document.
func FromSample(s floyd.Sample) *Document {
	doc := &Document{Name: s.Name, Matrix: s.Rows}
	for _, q := range s.Queries {
		doc.Queries = append(doc.Queries, Query{From: q.From, To: q.To})
	}

	return doc
}
