package main

import (
	"io"
	"strconv"

	"github.com/goldsmith323/Robotic-Constructability/pkg/dataset"
	"github.com/goldsmith323/Robotic-Constructability/pkg/policy"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type ColumnsSettings struct {
	DataPath string `mapstructure:"data"`
	Sheet    string `mapstructure:"sheet"`
}

func newColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List dataset columns with their resolved direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &ColumnsSettings{}
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
			return printColumns(cmd.OutOrStdout(), tbl, p)
		},
	}
	addDataFlags(cmd)
	return cmd
}

func printColumns(w io.Writer, tbl *dataset.Table, p *policy.Policy) error {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"column", "direction", "excluded", "numeric"})
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	for _, c := range tbl.Columns {
		_, numErr := tbl.Float64s(c)
		t.Append([]string{
			c,
			p.Direction(c).String(),
			strconv.FormatBool(p.Excluded(c)),
			strconv.FormatBool(numErr == nil),
		})
	}
	t.Render()
	return nil
}
