package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.gatech.edu/ECEInnovation/Thumb-Prettier/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "format [flags] <path> [path...]",
	Short: "Format assembly source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "list files that are not formatted instead of rewriting them")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted in parallel (0 uses every CPU)")
	fmtCmd.Flags().Bool("quiet", false, "suppress non-essential output")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	if writeToStdout && check {
		return fmt.Errorf("format: --stdout cannot be used with --check")
	}

	results, err := driver.FormatPaths(cmd.Context(), args, driver.FormatOptions{
		Check:  check,
		Stdout: writeToStdout,
		Jobs:   jobs,
		Format: conf.FormatOptions(),
	})
	if err != nil {
		return err
	}

	hasErrors, hasChanges := false, false
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			errColor.Fprintf(os.Stderr, "format: %s: %v\n", res.Path, res.Err)
			continue
		}

		switch {
		case writeToStdout:
			os.Stdout.Write(res.Formatted)
		case check && res.Changed:
			hasChanges = true
			if !quiet {
				warnColor.Fprintln(os.Stdout, res.Path)
			}
		case res.Changed && !quiet:
			okColor.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
		}
	}

	if hasErrors {
		return fmt.Errorf("format: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("format: formatting changes required")
	}
	return nil
}
