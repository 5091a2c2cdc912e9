package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/renamer/internal/cli"
	"github.com/arthur-debert/renamer/pkg/ui/output/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		os.Exit(1)
	}
}
