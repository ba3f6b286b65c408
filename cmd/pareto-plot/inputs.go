package main

import (
	"io"
	"os"
	"strings"

	"github.com/goldsmith323/Robotic-Constructability/pkg/dataset"
	"github.com/goldsmith323/Robotic-Constructability/pkg/policy"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	input "github.com/tcnksm/go-input"
)

func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("data", "", "Path to the dataset (.csv, .tsv, .xlsx, .json, .jsonl, .yaml)")
	cmd.Flags().String("sheet", "", "Worksheet to read from .xlsx datasets (default: first sheet)")
}

func loadPolicy() (*policy.Policy, error) {
	return policy.Load(viper.GetString("policy"))
}

func loadTable(path, sheet string) (*dataset.Table, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("--data is required")
	}
	return dataset.Load(path, dataset.LoadOptions{Sheet: sheet})
}

func isTerminal(f interface{}) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// columnPrompter asks the user to pick a column. It is nil when stdin is not
// interactive.
type columnPrompter func(query string, columns []string) (string, error)

func newColumnPrompter(r io.Reader, w io.Writer) columnPrompter {
	if !isTerminal(r) {
		return nil
	}
	ui := &input.UI{
		Writer: w,
		Reader: r,
	}
	return func(query string, columns []string) (string, error) {
		return selectColumn(ui, query, columns)
	}
}

func selectColumn(ui *input.UI, query string, columns []string) (string, error) {
	if len(columns) == 0 {
		return "", errors.New("dataset has no columns")
	}
	answer, err := ui.Select(query, columns, &input.Options{
		Required: true,
		Loop:     true,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to read column selection")
	}
	return answer, nil
}
