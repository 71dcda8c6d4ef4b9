package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/winpath/internal/cwd"
	"github.com/ostafen/winpath/pkg/winpath"
)

func DefineLongPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "longpath <path>...",
		Short:        "Print the long-path (\\\\?\\) form of each path",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunLongPath,
	}
}

func RunLongPath(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		p, err := winpath.Parse(arg)
		if err != nil {
			return err
		}
		lp, err := p.LongPath(cwd.Current)
		if err != nil {
			return err
		}
		fmt.Println(lp)
	}
	return nil
}
