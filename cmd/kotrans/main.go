package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/kotrans/internal/cli"
	"codeberg.org/snonux/kotrans/internal/hover"
	"codeberg.org/snonux/kotrans/internal/logging"
	"codeberg.org/snonux/kotrans/internal/models"
	"codeberg.org/snonux/kotrans/internal/processor"
	"codeberg.org/snonux/kotrans/internal/server"
	"codeberg.org/snonux/kotrans/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags, cli.Actions{
		Translate: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, flags)
		},
		Strategies: func(cmd *cobra.Command, args []string) error {
			return runStrategies(cmd, args, flags)
		},
		Serve: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
		Models: runModels,
	})

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newTranslator builds a translator from the current configuration.
func newTranslator(settings cli.Settings, format string) (*translation.Translator, *zap.Logger, error) {
	logger, err := logging.New(settings.LogLevel, format)
	if err != nil {
		return nil, nil, err
	}

	translator, err := translation.NewTranslator(settings.TranslationConfig(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create translator: %w", err)
	}
	return translator, logger, nil
}

func runTranslate(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	translator, logger, err := newTranslator(cli.LoadSettings(), logging.FormatConsole)
	if err != nil {
		return err
	}
	defer logger.Sync()

	proc := processor.NewProcessor(flags, translator)
	if flags.BatchFile != "" {
		return proc.ProcessBatch(cmd.Context())
	}
	return proc.ProcessSingle(cmd.Context(), args[0])
}

func runStrategies(_ *cobra.Command, args []string, flags *cli.Flags) error {
	translator, logger, err := newTranslator(cli.LoadSettings(), logging.FormatConsole)
	if err != nil {
		return err
	}
	defer logger.Sync()

	text := ""
	if len(args) > 0 {
		text = args[0]
	}
	return processor.NewProcessor(flags, translator).ListStrategies(text)
}

func runServe(cmd *cobra.Command, flags *cli.Flags) error {
	settings := cli.LoadSettings()
	translator, logger, err := newTranslator(settings, flags.LogFormat)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var current atomic.Pointer[cli.Settings]
	current.Store(&settings)

	cli.WatchSettings(func(updated cli.Settings) {
		current.Store(&updated)
		translator.Reconfigure(updated.OpenAIKey, updated.OpenAIModel, updated.GeminiKey, updated.GeminiModel)
		logger.Info("configuration reloaded", zap.Bool("enabled", updated.Enabled))
	})

	provider := hover.NewProvider(translator, func() hover.Settings {
		return current.Load().HoverSettings()
	})

	srv := server.New(translator,
		server.WithLogger(logger),
		server.WithHover(provider),
	)
	return srv.Run(cmd.Context(), settings.ServerAddr)
}

func runModels(cmd *cobra.Command, _ []string) error {
	settings := cli.LoadSettings()
	return models.NewLister(settings.OpenAIKey, settings.OpenAIURL).ListAvailableModels(cmd.Context())
}
