package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dhamidi/gqlcst/format"
	"github.com/dhamidi/gqlcst/graphql/parser"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a GraphQL document and dump its syntax tree",
		Long:  "Parse a GraphQL document and dump its syntax tree. With no file, or when file is -, the document is read from standard input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			filename := ""
			if len(args) == 1 && args[0] != "-" {
				filename = args[0]
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open: %w", err)
				}
				defer f.Close()
				r = f
			}

			enc, err := format.New(viper.GetString("format"), cmd.OutOrStdout())
			if err != nil {
				return err
			}

			res, err := parser.NewParser(r, parserOptions(filename)...).Finish()
			if err != nil {
				return err
			}
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "tree", "output format ("+strings.Join(format.Names, ", ")+")")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))

	return cmd
}
