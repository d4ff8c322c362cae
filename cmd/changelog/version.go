package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reillywatson/changelogger/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display detailed version information including version number,
git commit, build date, Go version, and platform information.

Examples:
  changelog version               # Display detailed version info
  changelog version --format json # Display version info in JSON format`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			switch format {
			case "json":
				return printVersionJSON(cmd.OutOrStdout(), info)
			case "text":
				return printVersionText(cmd.OutOrStdout(), info)
			default:
				return fmt.Errorf("unsupported output format: %s (supported: text, json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text|json)")
	return cmd
}

func printVersionText(w io.Writer, info version.Info) error {
	fmt.Fprintf(w, "changelog version information:\n")
	fmt.Fprintf(w, "  Version:     %s\n", info.Version)
	if info.GitCommit != "" {
		fmt.Fprintf(w, "  Git Commit:  %s\n", info.GitCommit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(w, "  Build Date:  %s\n", info.BuildDate)
	}
	fmt.Fprintf(w, "  Go Version:  %s\n", info.GoVersion)
	fmt.Fprintf(w, "  Compiler:    %s\n", info.Compiler)
	_, err := fmt.Fprintf(w, "  Platform:    %s\n", info.Platform)
	return err
}

func printVersionJSON(w io.Writer, info version.Info) error {
	output, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal version info to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
