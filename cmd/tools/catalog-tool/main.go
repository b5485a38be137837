// cmd/tools/catalog-tool/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catalogPath string

func main() {
	root := &cobra.Command{
		Use:           "catalog-tool",
		Short:         "Inspect, edit and serve endpoint catalog files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&catalogPath, "path", "configs/endpoints.yaml", "catalog file (.yaml, .yml or .json)")

	root.AddCommand(
		newValidateCmd(),
		newListCmd(),
		newAddCmd(),
		newSetCmd(),
		newAddParamCmd(),
		newConvertCmd(),
		newServeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
