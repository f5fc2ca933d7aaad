package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kotrans/internal"
)

// RunFunc is the signature of a command implementation.
type RunFunc func(cmd *cobra.Command, args []string) error

// Actions holds the implementations of the subcommands. The binary wires
// them so this package stays free of the processing layers.
type Actions struct {
	Translate  RunFunc
	Strategies RunFunc
	Serve      RunFunc
	Models     RunFunc
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags, actions Actions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kotrans",
		Short: "English to Korean translator for code identifiers and comments",
		Long: `kotrans translates English identifiers and comments in source code to Korean.

Identifiers in camelCase, PascalCase, snake_case, kebab-case and CONSTANT_CASE
are split into words and looked up in a built-in developer dictionary first.
Anything the dictionary cannot handle falls through to GPT, Gemini and the
MyMemory, Google and LibreTranslate web services.

Examples:
  kotrans translate userName             # 사용자 이름
  kotrans translate --comment "// the user"
  kotrans translate --batch words.txt    # Translate every line of a file
  kotrans strategies userName            # Show which strategies would run
  kotrans serve                          # Local HTTP API for editor hosts`,
		Version:       internal.Version,
		SilenceUsage: true,
	}

	setupPersistentFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newTranslateCommand(flags, actions.Translate),
		newStrategiesCommand(actions.Strategies),
		newServeCommand(flags, actions.Serve),
		newToggleCommand(),
		newModelsCommand(actions.Models),
	)

	return rootCmd
}

func newTranslateCommand(flags *Flags, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate an identifier, phrase or comment",
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.BatchFile != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: run,
	}

	cmd.Flags().StringVarP(&flags.Strategy, "strategy", "s", "", "Use only the named strategy (e.g. \"Local Dictionary\")")
	cmd.Flags().BoolVarP(&flags.Comment, "comment", "c", false, "Treat the input as a source comment")
	cmd.Flags().BoolVarP(&flags.Detailed, "detailed", "d", false, "Print the full result as JSON")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate every line of a file (\"-\" for stdin)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Directory to write translations.txt to after a batch run")

	return cmd
}

func newStrategiesCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "strategies [text]",
		Short: "List registered strategies, or those able to handle text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
}

func newServeCommand(flags *Flags, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log encoding: json or console")
	viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func newToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Enable or disable hover translation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enabled, err := ToggleEnabled()
			if err != nil {
				return err
			}
			state := "disabled"
			if enabled {
				state = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Korean translation %s\n", state)
			return nil
		},
	}
}

func newModelsCommand(run RunFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List OpenAI chat models usable for translation",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
}

func setupPersistentFlags(cmd *cobra.Command, flags *Flags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kotrans.yaml)")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")
	pf.StringVar(&flags.Glossary, "glossary", "", "YAML file with extra dictionary terms")
	pf.StringSliceVar(&flags.Disabled, "disable", nil, "Strategy identifiers to disable (local, gpt, gemini, mymemory, google, libre)")
	pf.StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model used for GPT translation")
	pf.StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model used for Gemini translation")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	viper.BindPFlag("log.level", pf.Lookup("log-level"))
	viper.BindPFlag("dictionary.glossary", pf.Lookup("glossary"))
	viper.BindPFlag("strategies.disabled", pf.Lookup("disable"))
	viper.BindPFlag("openai.model", pf.Lookup("openai-model"))
	viper.BindPFlag("gemini.model", pf.Lookup("gemini-model"))
}
