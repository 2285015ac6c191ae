package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "populator",
	Short: "Populate a directory with a realistic enterprise file share",
	Long: `populator fills a target directory with department folders, topical
subfolders, and seeded sample files so product demos have a
believable file share to point at. Identical seeds reproduce
identical layouts regardless of concurrency.`,
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(infoCmd)
}
