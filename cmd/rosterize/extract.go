package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rosterize/rosterize/internal/batch"
	"github.com/rosterize/rosterize/internal/config"
	"github.com/rosterize/rosterize/internal/eml"
	"github.com/rosterize/rosterize/internal/output"
	"github.com/rosterize/rosterize/internal/providers"
	"github.com/rosterize/rosterize/internal/roster"
	"github.com/rosterize/rosterize/internal/xlsx"
)

var (
	extractVerbose   bool
	extractBatchSize int
	extractProvider  string
	extractModel     string
)

var extractCmd = &cobra.Command{
	Use:   "extract <eml-file-or-dir> <template.xlsx> <output.xlsx>",
	Short: "Extract roster data from emails into a spreadsheet",
	Long: `Extract roster data from one .eml file or a directory of .eml files.

The template's header row defines the output columns. One row is appended
per email, in input order; the output file is persisted after every row.

Examples:
  rosterize extract inbox/ template.xlsx roster.xlsx
  rosterize extract update.eml template.xlsx roster.xlsx -v
  rosterize extract inbox/ template.xlsx roster.xlsx -b 10`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		input, templatePath, outputPath := args[0], args[1], args[2]

		level := slog.LevelInfo
		if extractVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		sources, err := eml.CollectSources(input)
		if err != nil {
			return err
		}
		logger.Info("collected email sources", "count", len(sources))

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()
		cm.OnChange(func(c *config.Config) {
			logger.Info("config file changed on disk, provider settings apply on next run",
				"providers", len(c.LLMProviders))
		})
		cm.WatchConfig()

		registry, err := providers.BuildRegistry(cfg.ProviderConfigs(), logger)
		if err != nil {
			return err
		}

		providerName := extractProvider
		if providerName == "" {
			providerName = cfg.Defaults.Provider
		}
		client, err := registry.Get(providerName)
		if err != nil {
			return err
		}

		batchSize := extractBatchSize
		if batchSize <= 0 {
			batchSize = cfg.Defaults.BatchSize
		}

		sink, err := xlsx.Open(templatePath, outputPath)
		if err != nil {
			return err
		}
		defer sink.Close()

		runner, err := batch.NewRunner(batch.Config{
			Schema:      roster.DefaultSchema(),
			Mapping:     roster.DefaultHeaderMapping(),
			Client:      client,
			Sink:        sink,
			Reader:      batch.ReaderFunc(eml.Load),
			Logger:      logger,
			BatchSize:   batchSize,
			Model:       extractModel,
			Temperature: cfg.Defaults.Temperature,
			MaxTokens:   cfg.Defaults.MaxTokens,
			Validate:    extractVerbose,
		})
		if err != nil {
			return err
		}

		report, err := runner.Run(ctx, sources)
		if err != nil {
			return err
		}

		if output.IsStructured() {
			return output.Render(report)
		}
		fmt.Printf("Done: %d processed, %d skipped. Output saved at %s\n",
			report.Processed, report.Skipped, sink.OutputPath())
		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "enable detailed logs for debugging")
	extractCmd.Flags().IntVarP(&extractBatchSize, "batch", "b", 0, "emails per progress batch (default from config)")
	extractCmd.Flags().StringVar(&extractProvider, "provider", "", "LLM provider name (default from config)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "model override for the selected provider")
}
