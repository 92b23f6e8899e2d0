package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcfiber/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcfiber",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get())
		fmt.Println("Reinforced Concrete Fiber Section Analysis")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
