package matrixfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floydpaths/floyd"
)

const basicYAML = `name: basic
matrix:
  - [0, 4, 0, 2]
  - [0, 0, 6, 0]
  - [0, 0, 0, 0]
  - [0, 1, 10, 0]
queries:
  - {from: 0, to: 1}
  - {from: 0, to: 2}
`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(basicYAML))
	require.NoError(t, err)
	assert.Equal(t, "basic", doc.Name)
	assert.Equal(t, []float64{0, 1, 10, 0}, doc.Matrix[3])
	assert.Equal(t, []Query{{0, 1}, {0, 2}}, doc.Queries)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoMatrix)

	_, err = Decode(strings.NewReader("name: x\n"))
	assert.ErrorIs(t, err, ErrNoMatrix)

	_, err = Decode(strings.NewReader("matrix: [[0]]\nweights: 3\n"))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = Decode(strings.NewReader("matrix: [[0, a]]\n"))
	assert.Error(t, err)
}

func TestDecode_RaggedIsKept(t *testing.T) {
	doc, err := Decode(strings.NewReader("matrix: [[0, 1, 2], [1, 0, 2]]\nqueries: [{from: 0, to: 1}]\n"))
	require.NoError(t, err)

	a := floyd.ShortestPath(doc.Matrix, 0, 1)
	assert.Equal(t, floyd.OutcomeDimension, a.Outcome)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unnamed.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"matrix": [[0, 1], [0, 0]], "queries": [{"from": 0, "to": 1}]}`), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unnamed", doc.Name)
	assert.Equal(t, [][]float64{{0, 1}, {0, 0}}, doc.Matrix)

	_, err = Load(filepath.Join(dir, "m.txt"))
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestEncodeRoundTripSample(t *testing.T) {
	s := floyd.Samples()[1]
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, FromSample(s)))

	doc, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Name, doc.Name)
	assert.Equal(t, s.Rows, doc.Matrix)
	require.Len(t, doc.Queries, len(s.Queries))
	assert.Equal(t, s.Queries[0].To, doc.Queries[0].To)
}
