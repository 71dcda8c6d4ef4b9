package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ostafen/winpath/pkg/winpath"
)

func DefineJoinCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "join <base> <elem>...",
		Short:        "Combine path elements into a single path",
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE:         RunJoin,
	}
}

func RunJoin(cmd *cobra.Command, args []string) error {
	p, err := winpath.Parse(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		elem, err := winpath.ParseWildcard(arg)
		if err != nil {
			return err
		}
		p, err = p.Join(elem)
		if err != nil {
			return err
		}
	}
	fmt.Println(p)
	return nil
}
