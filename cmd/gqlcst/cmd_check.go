package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dhamidi/gqlcst/format"
	"github.com/dhamidi/gqlcst/workspace"
)

var errSyntax = errors.New("syntax errors found")

func newCheckCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:           "check <path>...",
		Short:         "Report syntax errors in GraphQL files and directories",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := workspace.New(".", parserOptions("")...)
			for _, arg := range args {
				info, err := os.Stat(arg)
				if err != nil {
					return err
				}
				if info.IsDir() {
					err = ws.ScanDir(cmd.Context(), arg)
				} else {
					_, err = ws.ScanFile(arg)
				}
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			enc := format.NewLineEncoder(out)
			for _, path := range ws.Paths() {
				if err := enc.Encode(ws.GetFile(path).Result); err != nil {
					return err
				}
			}

			errCount := len(ws.Diagnostics())
			if !quiet {
				files, size := ws.Size()
				fmt.Fprintf(cmd.ErrOrStderr(), "checked %s files (%s), %s errors\n",
					humanize.Comma(int64(files)), humanize.Bytes(size), humanize.Comma(int64(errCount)))
			}
			if errCount > 0 {
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the summary line")

	return cmd
}
