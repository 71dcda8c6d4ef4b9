package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ostafen/winpath/internal/lint"
	"github.com/ostafen/winpath/internal/logger"
)

func DefineLintCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "lint [file]",
		Short:        "Validate a list of paths read from a file or stdin, one per line",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         RunLint,
	}

	cmd.Flags().BoolP("wildcards", "w", false, "allow * and ? in file names")
	cmd.Flags().Int("max-len", 0, "flag paths longer than this many bytes (0 disables)")
	cmd.Flags().Bool("reserved", false, "flag components that collide with reserved device names")
	cmd.Flags().String("log-level", "INFO", "minimum log level (DEBUG, INFO, WARN, ERROR)")

	return cmd
}

func RunLint(cmd *cobra.Command, args []string) error {
	opts, err := parseLintOptions(cmd)
	if err != nil {
		return err
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	rep, err := lint.Run(in, os.Stdout, opts)
	if err != nil {
		return err
	}

	fmt.Printf("checked %d paths: %d invalid, %d too long, %d reserved\n",
		rep.Checked, rep.Invalid, rep.TooLong, rep.Reserved)

	if !rep.Clean() {
		return fmt.Errorf("%d of %d paths failed", rep.Failed(), rep.Checked)
	}
	return nil
}

func parseLintOptions(cmd *cobra.Command) (lint.Options, error) {
	wildcards, _ := cmd.Flags().GetBool("wildcards")
	maxLen, _ := cmd.Flags().GetInt("max-len")
	reserved, _ := cmd.Flags().GetBool("reserved")
	logLevel, _ := cmd.Flags().GetString("log-level")

	if maxLen < 0 {
		return lint.Options{}, fmt.Errorf("max-len must be non-negative")
	}

	return lint.Options{
		Wildcards: wildcards,
		MaxLen:    maxLen,
		Reserved:  reserved,
		LogLevel:  logger.ParseLevel(logLevel),
	}, nil
}
