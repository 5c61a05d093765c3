package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/dotspec/internal/version"
)

var versionFormat string

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.GetBuildInfo()
		switch versionFormat {
		case "json":
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
		case "text":
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:     %s\n", info.BuildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  go:        %s\n", info.GoVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "  platform:  %s\n", info.Platform)
		default:
			return fmt.Errorf("unknown format %q (want text or json)", versionFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "Output format (text, json)")
}
