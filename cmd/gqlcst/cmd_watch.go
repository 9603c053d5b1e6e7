package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gqlcst/format"
	"github.com/dhamidi/gqlcst/workspace"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Check GraphQL files and re-check them whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ws := workspace.New(dir, parserOptions("")...)
			if err := ws.ScanAll(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := format.NewLineEncoder(out)
			for _, path := range ws.Paths() {
				if err := enc.Encode(ws.GetFile(path).Result); err != nil {
					return err
				}
			}

			w, err := workspace.NewWatcher(ws,
				func(doc *workspace.Document) {
					if len(doc.Result.Errors) == 0 {
						fmt.Fprintf(out, "%s: ok\n", doc.Path)
						return
					}
					_ = enc.Encode(doc.Result)
				},
				func(path string) {
					fmt.Fprintf(out, "%s: removed\n", path)
				})
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintf(cmd.ErrOrStderr(), "watching %d files in %s\n", len(ws.Paths()), dir)
			return w.Run(ctx)
		},
	}
}
