package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/gqlcst/format"
	"github.com/dhamidi/gqlcst/graphql/parser"
)

const (
	historyFile = ".gqlcst_history"
	promptMain  = "gql> "
	promptCont  = "...> "
)

type prompter interface {
	Prompt(prompt string) (string, error)
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse GraphQL interactively",
		Long:  "Parse GraphQL interactively. Input is read until it forms a complete document or an empty line is entered; the syntax tree and errors are then printed. Type :quit to exit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ln := liner.NewLiner()
			defer ln.Close()
			ln.SetCtrlCAborts(true)

			home, _ := os.UserHomeDir()
			histPath := filepath.Join(home, historyFile)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					f.Close()
				}
			}()

			out := cmd.OutOrStdout()
			for {
				src, ok := readDocument(ln, parserOptions("")...)
				if !ok {
					fmt.Fprintln(out)
					return nil
				}
				switch strings.TrimSpace(src) {
				case "":
					continue
				case ":quit", ":q":
					return nil
				}
				ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
				if err := format.NewTreeEncoder(out).Encode(parser.Parse([]byte(src), parserOptions("")...)); err != nil {
					return err
				}
			}
		},
	}
}

// readDocument prompts for lines until they parse without running into the
// end of input, or until an empty continuation line forces the parse. It
// returns false at end of input.
func readDocument(p prompter, opts ...parser.Option) (string, bool) {
	var sb strings.Builder
	for {
		prompt := promptMain
		if sb.Len() > 0 {
			prompt = promptCont
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C discards the pending input.
			return "", true
		}

		if sb.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return sb.String(), true
			}
			sb.WriteByte('\n')
		}
		sb.WriteString(line)

		src := sb.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if !parser.Parse([]byte(src), opts...).Incomplete() {
			return src, true
		}
	}
}
