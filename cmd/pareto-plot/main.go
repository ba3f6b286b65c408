package main

import (
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCommand()
	cobra.CheckErr(rootCmd.Execute())
}
