package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/gqlcst/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Inspect and verify the EBNF grammar of GraphQL",
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarShowCmd())
	cmd.AddCommand(newGrammarTokensCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Verify an EBNF grammar file, or the built-in grammar when no file is given",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if len(args) == 0 {
				err = grammar.Verify()
			} else {
				err = grammar.CheckFile(args[0], startProduction)
			}
			if err != nil {
				printErrors(cmd.OutOrStdout(), err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	var lexical bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the built-in grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := grammar.Source()
			if lexical {
				src = grammar.LexicalSource()
			}
			_, err := io.WriteString(cmd.OutOrStdout(), src)
			return err
		},
	}

	cmd.Flags().BoolVar(&lexical, "lexical", false, "print the token grammar instead of the document grammar")

	return cmd
}

func newGrammarTokensCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a file with the grammar driven lexer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			l, err := grammar.NewGraphQLLexer(data, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range l.Tokenize() {
				if !all && grammar.IgnoredKinds[tok.Kind] {
					continue
				}
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include whitespace and comments")

	return cmd
}

func printErrors(w io.Writer, err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Fprintln(w, e)
	}
}
