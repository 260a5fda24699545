package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/lock"
)

func newPasswordCmd(a *app) *cobra.Command {
	var store lock.Store

	cmd := &cobra.Command{
		Use:   config.CmdPassword,
		Short: config.CmdShortPassword,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   config.CmdPasswordSet,
			Short: config.CmdShortPwSet,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				pw, err := passwordArg(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				if err := store.Set(pw); err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), a.translator.Msg(config.TKeyPasswordStored))
				return err
			},
		},
		&cobra.Command{
			Use:   config.CmdPasswordVerify,
			Short: config.CmdShortPwVerify,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				pw, err := passwordArg(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				err = store.Verify(pw)
				if errors.Is(err, lock.ErrPasswordMismatch) {
					fmt.Fprintln(cmd.OutOrStdout(), a.translator.Msg(config.TKeyPasswordBad))
					return err
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), a.translator.Msg(config.TKeyPasswordOK))
				return err
			},
		},
		&cobra.Command{
			Use:   config.CmdPasswordClear,
			Short: config.CmdShortPwClear,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := store.Clear(); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.translator.Msg(config.TKeyPasswordCleared))
				return err
			},
		},
	)
	return cmd
}

// passwordArg returns the single positional argument, or the first line of r
// when none is given.
func passwordArg(r io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", lock.ErrPasswordEmpty
	}
	return strings.TrimRight(sc.Text(), "\r"), nil
}
