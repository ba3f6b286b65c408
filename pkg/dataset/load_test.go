package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadCSV(t *testing.T) {
	tbl, err := Load("testdata/designs.csv", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, "index", tbl.Columns[0])
	assert.True(t, tbl.HasColumn("robot viability rating [wall panels] (0 to 1)"))

	carbon, err := tbl.Float64s("embodied carbon (kgCO2e)")
	require.NoError(t, err)
	assert.Equal(t, []float64{120.5, 100, 150, 160}, carbon)
}

func TestLoadJSONKeepsFirstRecordOrder(t *testing.T) {
	tbl, err := Load("testdata/designs.json", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "carbon", "time", "note"}, tbl.Columns)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"3", "150", "", "late"}, tbl.Rows[2])
	assert.Equal(t, []string{"1", "120.5", "30", ""}, tbl.Rows[0])

	_, err = tbl.Float64s("time")
	assert.ErrorIs(t, err, pareto.ErrInvalidInput)
}

func TestLoadYAMLAndJSONL(t *testing.T) {
	for _, path := range []string{"testdata/designs.yaml", "testdata/designs.jsonl"} {
		tbl, err := Load(path, LoadOptions{})
		require.NoError(t, err, path)
		assert.Equal(t, []string{"index", "carbon", "time"}, tbl.Columns, path)

		points, err := tbl.Points("carbon", "time")
		require.NoError(t, err, path)
		assert.Equal(t, []pareto.Point{{X: 120.5, Y: 30}, {X: 100, Y: 45}}, points, path)
	}
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "designs.xlsx")
	f := excelize.NewFile()
	cells := map[string]any{
		"A1": "index", "B1": "x", "C1": "y",
		"A2": 1, "B2": 0.5, "C2": 10,
		"A3": 2, "B3": 0.75, "C3": 12,
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", cell, v))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	tbl, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"index", "x", "y"}, tbl.Columns)
	xs, err := tbl.Float64s("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.75}, xs)

	_, err = Load(path, LoadOptions{Sheet: "Missing"})
	assert.Error(t, err)
}

func TestLoadTSVAndUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	tsv := filepath.Join(dir, "d.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("a\tb\n1\t2\n"), 0o644))
	tbl, err := Load(tsv, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Columns)

	txt := filepath.Join(dir, "d.txt")
	require.NoError(t, os.WriteFile(txt, []byte("a,b\n3,4\n"), 0o644))
	tbl, err = Load(txt, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", "4"}}, tbl.Rows)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("", LoadOptions{})
	assert.Error(t, err)

	_, err = Load("testdata/does-not-exist.csv", LoadOptions{})
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "obj.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"x": 1}`), 0o644))
	_, err = Load(path, LoadOptions{})
	assert.ErrorIs(t, err, pareto.ErrInvalidInput)

	nested := filepath.Join(t.TempDir(), "nested.json")
	require.NoError(t, os.WriteFile(nested, []byte(`[{"x": [1, 2]}]`), 0o644))
	_, err = Load(nested, LoadOptions{})
	assert.ErrorIs(t, err, pareto.ErrInvalidInput)
}

func TestReadDelimitedStripsBOMAndPadsRows(t *testing.T) {
	tbl, err := ReadDelimited(strings.NewReader("\ufeffx, y,z\n1,2\n"), "inline", ',')
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, tbl.Columns)
	assert.Equal(t, [][]string{{"1", "2", ""}}, tbl.Rows)

	_, err = ReadDelimited(strings.NewReader(""), "empty", ',')
	assert.ErrorIs(t, err, pareto.ErrInvalidInput)

	_, err = ReadDelimited(strings.NewReader("x\n1,2\n"), "wide", ',')
	assert.ErrorIs(t, err, pareto.ErrInvalidInput)
}
