package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errCheckFailed is returned when at least one input fails to scan.
var errCheckFailed = errors.New("check failed")

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Report scan errors for each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}

			failed := 0
			for _, name := range args {
				s, err := a.scan(cmd, name)
				if err != nil {
					return err
				}

				n := 0
				for _, err := range s.Tokens() {
					if err != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "%s:%v\n", displayName(name), err)
						failed++
						break
					}
					n++
				}
				a.logger.Debug("checked", "input", displayName(name), "tokens", n)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d inputs", errCheckFailed, failed, len(args))
			}
			return nil
		},
	}
}
