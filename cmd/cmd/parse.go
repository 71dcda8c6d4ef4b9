package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ostafen/winpath/internal/cwd"
	"github.com/ostafen/winpath/pkg/winpath"
)

func DefineParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "parse <path>",
		Short:        "Decompose a Windows path into root, directories, file name and extension",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunParse,
	}

	cmd.Flags().BoolP("wildcards", "w", false, "allow * and ? in the file name")
	cmd.Flags().Bool("long", false, "also print the long-path (\\\\?\\) form")

	return cmd
}

func RunParse(cmd *cobra.Command, args []string) error {
	wildcards, _ := cmd.Flags().GetBool("wildcards")
	long, _ := cmd.Flags().GetBool("long")

	parse := winpath.Parse
	if wildcards {
		parse = winpath.ParseWildcard
	}

	p, err := parse(args[0])
	if err != nil {
		return err
	}

	label := color.New(color.FgCyan).SprintFunc()

	fmt.Printf("%s %s\n", label("Path:"), p)
	fmt.Printf("%s %s\n", label("Kind:"), p.Kind())
	fmt.Printf("%s %q\n", label("Root:"), p.Root())
	if dir, ok := p.Dir(); ok {
		fmt.Printf("%s %q\n", label("Dir:"), dir)
	} else {
		fmt.Printf("%s <none>\n", label("Dir:"))
	}
	fmt.Printf("%s %q\n", label("File:"), p.FileName())
	fmt.Printf("%s %q\n", label("Ext:"), p.Ext())
	fmt.Printf("%s %s\n", label("Components:"), strings.Join(p.Components(), " | "))
	if p.HasReservedName() {
		fmt.Printf("%s file name is a reserved device name\n", color.YellowString("Warning:"))
	}

	if long {
		lp, err := p.LongPath(cwd.Current)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", label("Long:"), lp)
	}
	return nil
}
