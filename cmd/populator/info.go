package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/Joe-Costa/ClusterPopulator/internal/catalog"
	"github.com/Joe-Costa/ClusterPopulator/internal/naming"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display platform and catalog information",
	Long:  `Print the host platform, the naming profile that would apply, and the department catalog.`,
	RunE:  runInfo,
}

var infoWindows bool

func init() {
	infoCmd.Flags().BoolVarP(&infoWindows, "windows", "w", false, "Report as if Windows names were forced")
}

func runInfo(cmd *cobra.Command, args []string) error {
	profile := naming.ForPlatform(infoWindows)

	fmt.Printf("Platform Information\n")
	fmt.Printf("====================\n\n")
	fmt.Printf("OS/Arch:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("CPU Cores:        %d\n", runtime.NumCPU())
	fmt.Printf("Naming profile:   %s\n", profile)
	fmt.Printf("Max name length:  %d\n", naming.MaxNameLength)

	fmt.Printf("\nDepartment Catalog\n")
	fmt.Printf("------------------\n")
	for _, d := range catalog.Departments {
		fmt.Printf("%-16s weight=%-3d subfolders=%d extensions=%d\n",
			d.Name, d.Weight, len(d.Subdirs), len(d.Extensions))
	}
	return nil
}
