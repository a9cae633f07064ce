package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iamdustan/postcss/token/dump"
)

func (a *app) newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a stylesheet",
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
			a.logger.Info("scanned", "input", displayName(name), "tokens", len(tokens))

			format, err := dump.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			enc := dump.NewEncoder(cmd.OutOrStdout())
			enc.Format = format
			enc.Color = a.cfg.Color
			return enc.Encode(tokens)
		},
	}
}
