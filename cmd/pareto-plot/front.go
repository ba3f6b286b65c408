package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/dataset"
	"github.com/goldsmith323/Robotic-Constructability/pkg/highlight"
	"github.com/goldsmith323/Robotic-Constructability/pkg/pareto"
	"github.com/goldsmith323/Robotic-Constructability/pkg/policy"
	"github.com/goldsmith323/Robotic-Constructability/pkg/report"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type FrontSettings struct {
	DataPath  string   `mapstructure:"data"`
	Sheet     string   `mapstructure:"sheet"`
	X         string   `mapstructure:"x"`
	Y         string   `mapstructure:"y"`
	XDir      string   `mapstructure:"x-dir"`
	YDir      string   `mapstructure:"y-dir"`
	NoExclude bool     `mapstructure:"no-exclude"`
	Format    string   `mapstructure:"format"`
	Template  string   `mapstructure:"template"`
	FrontOnly bool     `mapstructure:"front-only"`
	Highlight []string `mapstructure:"highlight"`
	Workers   int      `mapstructure:"workers"`
	Out       string   `mapstructure:"out"`
	Save      bool     `mapstructure:"save"`
}

func newFrontCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "front",
		Short: "Classify the design points of two columns into Pareto front and dominated",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &FrontSettings{}
			if err := bindSettings(cmd, s); err != nil {
				return errors.Wrap(err, "failed to initialize settings")
			}
			p, err := loadPolicy()
			if err != nil {
				return err
			}
			prompt := newColumnPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			return runFront(cmd.Context(), s, p, prompt, cmd.OutOrStdout())
		},
	}

	addDataFlags(cmd)
	cmd.Flags().String("x", "", "X-axis column (prompted on a terminal when omitted)")
	cmd.Flags().String("y", "", "Y-axis column (prompted on a terminal when omitted)")
	cmd.Flags().String("x-dir", "", "Override the x direction (max or min)")
	cmd.Flags().String("y-dir", "", "Override the y direction (max or min)")
	cmd.Flags().Bool("no-exclude", false, "Classify even when the policy excludes a column")
	cmd.Flags().String("format", "", "Output format: table, json, yaml, csv, markdown, html, template (default: table on a terminal, json otherwise)")
	cmd.Flags().String("template", "", "Go template for --format template (sprig functions available)")
	cmd.Flags().Bool("front-only", false, "Only print front and highlighted points")
	cmd.Flags().StringSlice("highlight", nil, "Point ids to highlight with cycling markers")
	cmd.Flags().Int("workers", 0, "Parallel workers for classification (0 = GOMAXPROCS)")
	cmd.Flags().String("out", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("save", false, "Write the report to <x>_vs_<y>.<ext> in the current directory")

	return cmd
}

func runFront(ctx context.Context, s *FrontSettings, p *policy.Policy, prompt columnPrompter, w io.Writer) error {
	tbl, err := loadTable(s.DataPath, s.Sheet)
	if err != nil {
		return err
	}

	if err := resolveAxes(s, tbl, prompt); err != nil {
		return err
	}

	res := p.Resolve(s.X, s.Y)
	if s.XDir != "" {
		if res.X, err = pareto.ParseDirection(s.XDir); err != nil {
			return errors.Wrap(err, "--x-dir")
		}
	}
	if s.YDir != "" {
		if res.Y, err = pareto.ParseDirection(s.YDir); err != nil {
			return errors.Wrap(err, "--y-dir")
		}
	}

	points, err := tbl.Points(s.X, s.Y)
	if err != nil {
		return err
	}

	var mask pareto.Mask
	if res.Classify || s.NoExclude {
		c := &pareto.Classifier{X: res.X, Y: res.Y, Workers: s.Workers}
		mask, err = c.Classify(ctx, points)
		if err != nil {
			return err
		}
		log.Info().
			Str("x", s.X).Str("y", s.Y).
			Int("points", len(points)).
			Int("front", mask.Count()).
			Msg("Classified design points")
	} else {
		log.Info().Str("x", s.X).Str("y", s.Y).Msg("Column pair excluded from Pareto classification")
	}

	hl, err := highlightPoints(tbl, p, s.Highlight)
	if err != nil {
		return err
	}

	ids := tbl.IDs(p.IDColumn)
	r, err := report.Build(report.Input{
		Source:     tbl.Source,
		XColumn:    s.X,
		YColumn:    s.Y,
		XDirection: res.X,
		YDirection: res.Y,
		Points:     points,
		IDs:        ids,
		Mask:       mask,
		Highlights: hl,
		FrontOnly:  s.FrontOnly,
	})
	if err != nil {
		return err
	}

	return writeReport(r, s, w)
}

func resolveAxes(s *FrontSettings, tbl *dataset.Table, prompt columnPrompter) error {
	var err error
	if s.X == "" {
		if prompt == nil {
			return errors.New("--x is required")
		}
		if s.X, err = prompt("Select X-axis column:", tbl.Columns); err != nil {
			return err
		}
	}
	if s.Y == "" {
		if prompt == nil {
			return errors.New("--y is required")
		}
		if s.Y, err = prompt("Select Y-axis column:", tbl.Columns); err != nil {
			return err
		}
	}
	return nil
}

// highlightPoints resolves ids through the policy's id column, falling back
// to zero-based row numbers when the dataset has no such column.
func highlightPoints(tbl *dataset.Table, p *policy.Policy, ids []string) (*highlight.Set, error) {
	set := highlight.NewSet()
	if len(ids) == 0 {
		return set, nil
	}
	cycle := highlight.NewCycle(p.Markers)
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		row, err := lookupRow(tbl, p.IDColumn, id)
		if err != nil {
			return nil, err
		}
		marker := set.Pick(cycle, row)
		log.Debug().Str("id", id).Int("row", row).Str("marker", marker).Msg("Highlighted point")
	}
	return set, nil
}

func lookupRow(tbl *dataset.Table, idColumn, id string) (int, error) {
	if idColumn != "" && tbl.HasColumn(idColumn) {
		return tbl.RowByID(idColumn, id)
	}
	row, err := strconv.Atoi(id)
	if err != nil || row < 0 || row >= tbl.Len() {
		return -1, errors.Wrapf(pareto.ErrInvalidInput, "no row %q in %s", id, tbl.Source)
	}
	return row, nil
}

func writeReport(r *report.Report, s *FrontSettings, w io.Writer) error {
	out := s.Out
	if out == "" && s.Save {
		f, err := outputFormat(s.Format, nil)
		if err != nil {
			return err
		}
		out = report.DefaultFileName(r, f.Extension())
	}

	if out == "" {
		f, err := outputFormat(s.Format, w)
		if err != nil {
			return err
		}
		return report.Render(w, r, f, report.RenderOptions{
			Template: s.Template,
			Terminal: isTerminal(w),
		})
	}

	f, err := outputFormat(s.Format, nil)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}
	file, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "failed to create report file")
	}
	if err := report.Render(file, r, f, report.RenderOptions{Template: s.Template}); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to write report file")
	}
	log.Info().Str("path", out).Str("format", string(f)).Msg("Saved report")
	fmt.Fprintf(w, "Wrote report to: %s\n", out)
	return nil
}

// outputFormat picks table for terminals and json for pipes and files when
// no format was requested.
func outputFormat(name string, w io.Writer) (report.Format, error) {
	if name != "" {
		return report.ParseFormat(name)
	}
	if w != nil && isTerminal(w) {
		return report.FormatTable, nil
	}
	return report.FormatJSON, nil
}
