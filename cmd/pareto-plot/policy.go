package main

import (
	"fmt"

	"github.com/goldsmith323/Robotic-Constructability/pkg/policy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect and validate axis policies",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of policy files",
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := policy.SchemaJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(blob))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective policy as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPolicy()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return err
			}
			return enc.Close()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate [files...]",
		Short: "Validate policy files against the schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := policy.Load(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			}
			return nil
		},
	})

	return cmd
}
