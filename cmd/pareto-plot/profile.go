package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/profile"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ProfileSettings struct {
	DataPath string  `mapstructure:"data"`
	Sheet    string  `mapstructure:"sheet"`
	Point    string  `mapstructure:"point"`
	Width    float64 `mapstructure:"width"`
	Format   string  `mapstructure:"format"`
}

// barCells is the length of the text bar drawn for a full-width metric.
const barCells = 20

func newProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show how one design point scores on every profile metric",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &ProfileSettings{}
			if err := bindSettings(cmd, s); err != nil {
				return errors.Wrap(err, "failed to initialize settings")
			}
			p, err := loadPolicy()
			if err != nil {
				return err
			}
			tbl, err := loadTable(s.DataPath, s.Sheet)
			if err != nil {
				return err
			}
			if strings.TrimSpace(s.Point) == "" {
				return errors.New("--point is required")
			}
			row, err := lookupRow(tbl, p.IDColumn, s.Point)
			if err != nil {
				return err
			}
			prof, err := profile.Build(tbl, row, p.Metrics, s.Width)
			if err != nil {
				return err
			}
			prof.ID = s.Point
			return printProfile(cmd.OutOrStdout(), prof, s.Format, s.Width)
		},
	}
	addDataFlags(cmd)
	cmd.Flags().String("point", "", "Id of the design point (row number when the dataset has no id column)")
	cmd.Flags().Float64("width", profile.DefaultBarWidth, "Full bar width")
	cmd.Flags().String("format", "table", "Output format: table, json, yaml")
	return cmd
}

func printProfile(w io.Writer, prof *profile.Profile, format string, width float64) error {
	switch format {
	case "json":
		blob, err := json.MarshalIndent(prof, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(blob))
		return err
	case "yaml":
		return yaml.NewEncoder(w).Encode(prof)
	case "table", "":
	default:
		return errors.Errorf("unknown profile format %q", format)
	}

	if width <= 0 {
		width = profile.DefaultBarWidth
	}
	fmt.Fprintf(w, "Point %s (row %d)\n", prof.ID, prof.Row)
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"metric", "direction", "value", "ratio", ""})
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	for _, b := range prof.Bars {
		cells := barLength(b.Width, width)
		t.Append([]string{
			b.Column,
			b.Direction.Short(),
			fmt.Sprintf("%g", b.Value),
			fmt.Sprintf("%.2f", b.Ratio),
			strings.Repeat("█", cells) + strings.Repeat("░", barCells-cells),
		})
	}
	t.Render()
	return nil
}

// barLength converts a bar width into text cells, clamped to [0, barCells].
func barLength(w, full float64) int {
	cells := math.Round(w / full * barCells)
	if math.IsNaN(cells) || cells < 0 {
		return 0
	}
	if cells > barCells {
		return barCells
	}
	return int(cells)
}
