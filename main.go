package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const apiKeyEnvVar = "OPENAI_API_KEY"

var (
	detailFlag      string
	modelFlag       string
	apiKey          string
	settingsFile    string
	checkConfigMode bool
	debugMode       bool
)

var rootCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize any file using the OpenAI API",
	Long: `Extracts text from plain-text, PDF, HTML and Word documents and asks the
OpenAI Chat Completions API for a summary at a chosen detail level.

Detail levels:
  brief    - 2-3 sentences with key points only
  medium   - one paragraph covering main ideas (default)
  detailed - multiple paragraphs with comprehensive coverage`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Set debug mode globally
		if debugMode {
			SetDebugMode(true)
		}

		if checkConfigMode {
			os.Exit(checkConfig(os.Stdout, os.Getenv(apiKeyEnvVar)))
		}

		if len(args) == 0 {
			cmd.Help()
			os.Exit(1)
		}

		level := DetailLevel(detailFlag)
		if !ValidDetailLevel(level) {
			log.Fatalf("Invalid detail level %q: choose brief, medium or detailed", detailFlag)
		}

		// Get API key
		key, err := resolveAPIKey(apiKey, os.Getenv(apiKeyEnvVar))
		if err != nil {
			log.Fatalf("%v", err)
		}

		settings, err := loadSettings(settingsFile)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if modelFlag != "" {
			settings.Model = modelFlag
		}

		processor := NewProcessor(key, settings, os.Stdout)
		if err := processor.ProcessFile(context.Background(), args[0], level); err != nil {
			var readErr *ReadError
			if errors.As(err, &readErr) || errors.Is(err, errEmptyContent) {
				log.Fatalf("ERROR: %v", err)
			}
			log.Fatalf("ERROR: Failed to generate summary: %v\n\nPlease check:\n  1. Your API key is valid\n  2. You have available API credits\n  3. The OpenAI API service is accessible", err)
		}
	},
}

// resolveAPIKey picks the credential from the flag value or the environment.
// A missing credential is fatal before any file is touched, so the error
// carries the remediation instructions.
func resolveAPIKey(flagValue, envValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envValue != "" {
		return envValue, nil
	}
	return "", fmt.Errorf("%s environment variable not set.\n\nPlease set your API key:\n  export %s='sk-...'\n\nOr add it to your shell profile (~/.bashrc or ~/.zshrc) for persistence.",
		apiKeyEnvVar, apiKeyEnvVar)
}

// checkConfig reports credential status without touching files or the
// network. Returns the process exit code.
func checkConfig(out io.Writer, key string) int {
	if key == "" {
		fmt.Fprintf(out, "✗ %s is not set\n\nPlease set your API key:\n  export %s='sk-...'\n", apiKeyEnvVar, apiKeyEnvVar)
		return 1
	}
	fmt.Fprintf(out, "✓ %s is set\n", apiKeyEnvVar)
	fmt.Fprintln(out, "✓ OpenAI client is available")
	return 0
}

func init() {
	rootCmd.Flags().StringVar(&detailFlag, "detail", "medium", "Level of detail: brief, medium or detailed")
	rootCmd.Flags().StringVar(&modelFlag, "model", "", "OpenAI model to use (default: "+defaultModel+")")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "OpenAI API key")
	rootCmd.Flags().StringVar(&settingsFile, "config", "", "Path to a YAML settings file")
	rootCmd.Flags().BoolVar(&checkConfigMode, "check-config", false, "Check if the API key is configured")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
