package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"doctranslate/internal/config"
	"doctranslate/internal/extractor"
	"doctranslate/internal/langdetect"
	"doctranslate/internal/logging"
	"doctranslate/internal/port"
	"doctranslate/internal/service"
	s3storage "doctranslate/internal/storage/s3"
	"doctranslate/internal/translator"

	// Translator providers register themselves with the factory.
	_ "doctranslate/internal/translator/claude"
	_ "doctranslate/internal/translator/gemini"
	_ "doctranslate/internal/translator/ollama"
	_ "doctranslate/internal/translator/openai"
)

var version = "dev"

var envFile string

// app holds the components shared by every command.
type app struct {
	cfg         *config.Config
	logger      zerolog.Logger
	translator  port.Translator
	documents   service.DocumentService
	translation service.TranslationService
}

var rootCmd = &cobra.Command{
	Use:           "doctranslate",
	Short:         "AI document translator",
	Long:          "Extracts text from PDF, DOCX and TXT documents and translates it with a large language model.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before configuration")
	rootCmd.AddCommand(serveCmd, extractCmd, translateCmd, languagesCmd)
}

// loadEnv applies the dotenv file without overriding the real environment.
func loadEnv() error {
	if envFile == "" {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	return nil
}

func newApp(ctx context.Context) (*app, error) {
	if err := loadEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Server.Environment, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	tr, err := translator.NewTranslator(&cfg.Translator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize translator: %w", err)
	}

	var archive port.ArchiveStorage
	if cfg.Storage.Enabled() {
		archive, err = s3storage.NewArchive(ctx, &cfg.Storage.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize archive storage: %w", err)
		}
	}

	ext := extractor.New(langdetect.New(), logger)

	return &app{
		cfg:         cfg,
		logger:      logger,
		translator:  tr,
		documents:   service.NewDocumentService(ext, &cfg.Upload, logger),
		translation: service.NewTranslationService(tr, archive, logger),
	}, nil
}
