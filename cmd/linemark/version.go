package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/linemark"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linemark",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linemark version %s\n", strings.TrimSpace(linemark.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
