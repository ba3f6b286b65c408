package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// LoadOptions tweaks format-specific parsing.
type LoadOptions struct {
	// Sheet selects the worksheet of an .xlsx file. Empty means the first sheet.
	Sheet string
}

// Load reads a table, picking the parser from the file extension.
func Load(path string, opts LoadOptions) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("dataset path is empty")
	}
	ext := strings.ToLower(filepath.Ext(path))

	var (
		t   *Table
		err error
	)
	switch ext {
	case ".tsv":
		t, err = loadDelimited(path, '\t')
	case ".xlsx", ".xlsm":
		t, err = loadXLSX(path, opts.Sheet)
	case ".json", ".yaml", ".yml":
		t, err = loadRecords(path)
	case ".jsonl", ".ndjson":
		t, err = loadJSONL(path)
	default:
		t, err = loadDelimited(path, ',')
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("path", path).
		Int("rows", t.Len()).
		Int("columns", len(t.Columns)).
		Msg("Loaded dataset")
	return t, nil
}

func loadDelimited(path string, comma rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDelimited(f, path, comma)
}

// ReadDelimited parses CSV-like input whose first record is the header.
func ReadDelimited(r io.Reader, source string, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", source)
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s is empty", source)
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return NewTable(source, header, records[1:])
}

func loadXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open workbook %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", path).Msg("Failed to close workbook")
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %q of %s", sheet, path)
	}
	// trailing blank rows come back as empty slices
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "sheet %q of %s is empty", sheet, path)
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return NewTable(path+"#"+sheet, header, rows[1:])
}

// loadRecords reads a JSON array or YAML sequence of flat objects. The yaml
// node API keeps the key order of the first record as the column order.
func loadRecords(path string) (*Table, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(blob, &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, errors.Wrapf(pareto.ErrInvalidInput, "%s must hold a list of records", path)
	}

	b := newRecordBuilder(path)
	for i, item := range root.Content {
		if err := b.add(item, i+1); err != nil {
			return nil, err
		}
	}
	return b.table()
}

func loadJSONL(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	b := newRecordBuilder(path)
	sc := bufio.NewScanner(f)
	// Allow fairly long lines.
	buf := make([]byte, 0, 1024*1024)
	sc.Buffer(buf, 10*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(line), &doc); err != nil {
			return nil, errors.Wrapf(err, "jsonl parse error at line %d", lineNo)
		}
		if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
			return nil, errors.Wrapf(pareto.ErrInvalidInput, "jsonl line %d is not an object", lineNo)
		}
		if err := b.add(doc.Content[0], lineNo); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return b.table()
}

type recordBuilder struct {
	source  string
	columns []string
	index   map[string]int
	rows    [][]string
}

func newRecordBuilder(source string) *recordBuilder {
	return &recordBuilder{source: source, index: map[string]int{}}
}

func (b *recordBuilder) add(node *yaml.Node, recordNo int) error {
	if node.Kind != yaml.MappingNode {
		return errors.Wrapf(pareto.ErrInvalidInput, "%s: record %d is not an object", b.source, recordNo)
	}
	row := make([]string, len(b.columns))
	for k := 0; k+1 < len(node.Content); k += 2 {
		key, val := node.Content[k], node.Content[k+1]
		if val.Kind != yaml.ScalarNode {
			return errors.Wrapf(pareto.ErrInvalidInput, "%s: record %d field %q is not a scalar", b.source, recordNo, key.Value)
		}
		idx, ok := b.index[key.Value]
		if !ok {
			idx = len(b.columns)
			b.index[key.Value] = idx
			b.columns = append(b.columns, key.Value)
			row = append(row, "")
		}
		if val.Tag != "!!null" {
			row[idx] = val.Value
		}
	}
	b.rows = append(b.rows, row)
	return nil
}

func (b *recordBuilder) table() (*Table, error) {
	return NewTable(b.source, b.columns, b.rows)
}
