package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/gqlcst/graphql/parser"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "gqlcst",
		Short:        "An error tolerant GraphQL parser",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(configFile); err != nil {
				return err
			}
			configureLogging()
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default .gqlcst.yaml in the current directory)")
	flags.CountP("verbose", "v", "increase log verbosity")
	flags.String("log-file", "", "write logs to this file instead of stderr")
	flags.Int("recursion-limit", parser.DefaultRecursionLimit, "maximum nesting depth, 0 for no limit")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("log-file", flags.Lookup("log-file"))
	_ = viper.BindPFlag("recursion-limit", flags.Lookup("recursion-limit"))

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

// initConfig reads the optional config file and GQLCST_* environment
// variables. Flags given on the command line take precedence over both.
func initConfig(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName(".gqlcst")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("GQLCST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func configureLogging() {
	var path *string
	if logFile := viper.GetString("log-file"); logFile != "" {
		path = &logFile
	}
	commonlog.Configure(viper.GetInt("verbose"), path)
}

func parserOptions(file string) []parser.Option {
	opts := []parser.Option{parser.WithRecursionLimit(viper.GetInt("recursion-limit"))}
	if file != "" {
		opts = append(opts, parser.WithFile(file))
	}
	return opts
}
