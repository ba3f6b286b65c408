package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/charmbracelet/glamour"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

// Format names an output renderer.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTemplate Format = "template"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown, FormatHTML, FormatTemplate}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "md" {
		return FormatMarkdown, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown output format %q", s)
}

// Extension returns the file extension used when saving a format.
func (f Format) Extension() string {
	switch f {
	case FormatTable, FormatTemplate:
		return "txt"
	case FormatMarkdown:
		return "md"
	default:
		return string(f)
	}
}

// RenderOptions tweak individual renderers.
type RenderOptions struct {
	// Template is the text/template source for FormatTemplate. Sprig
	// functions are available.
	Template string
	// Terminal renders markdown through glamour for display.
	Terminal bool
	// GlamourStyle defaults to "dark".
	GlamourStyle string
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *Report, format Format, opts RenderOptions) error {
	switch format {
	case FormatTable:
		return renderTable(w, r)
	case FormatJSON:
		blob, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal report")
		}
		_, err = fmt.Fprintln(w, string(blob))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(err, "failed to encode report")
		}
		return enc.Close()
	case FormatCSV:
		return renderCSV(w, r)
	case FormatMarkdown:
		return renderMarkdown(w, r, opts)
	case FormatHTML:
		return renderHTML(w, r)
	case FormatTemplate:
		return renderTemplate(w, r, opts.Template)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func header(r *Report) []string {
	return []string{
		"index", "id",
		fmt.Sprintf("%s (%s)", r.XColumn, r.XDirection.Short()),
		fmt.Sprintf("%s (%s)", r.YColumn, r.YDirection.Short()),
		"front", "marker",
	}
}

func cells(row Row) []string {
	front := ""
	if row.Front {
		front = "yes"
	}
	return []string{
		strconv.Itoa(row.Index),
		row.ID,
		formatFloat(row.X),
		formatFloat(row.Y),
		front,
		row.Symbol,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func renderTable(w io.Writer, r *Report) error {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header(r))
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	for _, row := range r.Rows {
		t.Append(cells(row))
	}
	t.SetFooter([]string{"", "", "", "", fmt.Sprintf("%d/%d", r.FrontCount, r.TotalCount), ""})
	t.Render()
	return nil
}

func renderCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "id", r.XColumn, r.YColumn, "front", "marker"}); err != nil {
		return err
	}
	for _, row := range r.Rows {
		c := cells(row)
		c[4] = strconv.FormatBool(row.Front)
		c[5] = row.Marker
		if err := cw.Write(c); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Markdown returns the report as a GitHub-flavoured markdown document.
func Markdown(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s vs %s\n\n", r.XColumn, r.YColumn)
	if r.Classified {
		fmt.Fprintf(&b, "%d of %d points on the Pareto front (x %s, y %s).\n\n",
			r.FrontCount, r.TotalCount, r.XDirection, r.YDirection)
	} else {
		b.WriteString("Pareto classification is disabled for this column pair.\n\n")
	}
	h := header(r)
	b.WriteString("| " + strings.Join(escapeCells(h), " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(h)) + "\n")
	for _, row := range r.Rows {
		b.WriteString("| " + strings.Join(escapeCells(cells(row)), " | ") + " |\n")
	}
	return b.String()
}

func escapeCells(in []string) []string {
	out := make([]string, len(in))
	for i, c := range in {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}

func renderMarkdown(w io.Writer, r *Report, opts RenderOptions) error {
	md := Markdown(r)
	if !opts.Terminal {
		_, err := io.WriteString(w, md)
		return err
	}
	style := opts.GlamourStyle
	if style == "" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return errors.Wrap(err, "failed to render markdown")
	}
	_, err = io.WriteString(w, out)
	return err
}

func renderHTML(w io.Writer, r *Report) error {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(r)), &buf); err != nil {
		return errors.Wrap(err, "failed to convert report to html")
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func renderTemplate(w io.Writer, r *Report, src string) error {
	if strings.TrimSpace(src) == "" {
		return errors.New("template output needs a template")
	}
	tmpl, err := template.New("report").Funcs(sprig.TxtFuncMap()).Parse(src)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}
	if err := tmpl.Execute(w, r); err != nil {
		return errors.Wrap(err, "failed to execute template")
	}
	return nil
}
