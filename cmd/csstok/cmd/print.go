package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamdustan/postcss"
)

func (a *app) newPrintCommand() *cobra.Command {
	var p postcss.Printer
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Scan a stylesheet and print it back from its tokens",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := inputName(args)
			s, err := a.scan(cmd, name)
			if err != nil {
				return err
			}
			tokens, err := s.All()
			if err != nil {
				return fmt.Errorf("%s:%w", displayName(name), err)
			}
			return p.Print(cmd.OutOrStdout(), tokens)
		},
	}
	cmd.Flags().BoolVar(&p.StripComments, "strip-comments", false, "omit comments from the output")
	return cmd
}
