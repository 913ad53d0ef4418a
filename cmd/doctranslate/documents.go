package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"doctranslate/internal/domain"
	"doctranslate/internal/service"
)

var (
	apiKey     string
	targetLang string
	outputPath string
	format     string
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Print the text extracted from a PDF, DOCX or TXT document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		extracted, err := extractFile(cmd, a, args[0])
		if err != nil {
			return err
		}
		if extracted.DetectedLanguage != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Detected language: %s\n", extracted.DetectedLanguage)
		}
		fmt.Fprint(cmd.OutOrStdout(), extracted.Content)
		return nil
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "Translate a document and write translated_<name>",
	Long: `Translate a document with the configured provider.

The API key is read from --api-key or DOCTRANSLATE_API_KEY and is only sent to
the provider. The translation is written to --output, or to translated_<name>
in the current directory. Use "-" to print it instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		key := apiKey
		if key == "" {
			key = os.Getenv("DOCTRANSLATE_API_KEY")
		}

		extracted, err := extractFile(cmd, a, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Translating to %s...\n", targetLang)
		result, err := a.translation.Translate(cmd.Context(), service.TranslateInput{
			Text:           extracted.Content,
			TargetLanguage: targetLang,
			Credential:     key,
		})
		if err != nil {
			return err
		}

		if outputPath == "-" {
			fmt.Fprint(cmd.OutOrStdout(), result.Content)
			return nil
		}

		out, err := a.translation.Download(cmd.Context(), service.DownloadInput{
			Text:           result.Content,
			FileName:       extracted.FileName,
			Format:         format,
			TargetLanguage: string(result.Language),
		})
		if err != nil {
			return err
		}

		dest := outputPath
		if dest == "" {
			dest = out.FileName
		}
		if err := os.WriteFile(dest, out.Content, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", dest)
		if out.ArchiveURL != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Archived copy: %s\n", out.ArchiveURL)
		}
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported target languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range domain.Languages {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", l, l.Tag())
		}
	},
}

func init() {
	translateCmd.Flags().StringVar(&apiKey, "api-key", "", "provider API key (default $DOCTRANSLATE_API_KEY)")
	translateCmd.Flags().StringVarP(&targetLang, "lang", "l", string(domain.LanguageEnglish),
		"target language: "+joinLanguages())
	translateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, or - for stdout")
	translateCmd.Flags().StringVar(&format, "format", service.DownloadFormatText, "output format: txt or docx")
}

func extractFile(cmd *cobra.Command, a *app, path string) (*domain.ExtractedText, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}

	return a.documents.Extract(cmd.Context(), service.ExtractInput{
		FileName: filepath.Base(path),
		File:     f,
		Size:     info.Size(),
	})
}

func joinLanguages() string {
	names := make([]string, 0, len(domain.Languages))
	for _, l := range domain.Languages {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}
