package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/cantor"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cantor %s\n", cantor.Version)
	},
}
