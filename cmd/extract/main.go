package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hermetic-io/articlext"
)

var (
	outputFormat    string
	url             string
	includeImages   bool
	includeLinks    bool
	includeTables   bool
	favorPrecision  bool
	favorRecall     bool
	targetLanguage  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "articlext - extract clean article content from an HTML document",
		Long:  "Reads an HTML document from a file (or stdin when no file is given) and prints the extracted content and metadata.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExtract,
	}

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text|html|json)")
	rootCmd.Flags().StringVar(&url, "url", "", "Known canonical URL of the document")
	rootCmd.Flags().BoolVar(&includeImages, "images", false, "Collect images")
	rootCmd.Flags().BoolVar(&includeLinks, "links", false, "Preserve links instead of flattening them")
	rootCmd.Flags().BoolVar(&includeTables, "tables", true, "Include tables in extracted content")
	rootCmd.Flags().BoolVar(&favorPrecision, "precision", false, "Favor precision over recall")
	rootCmd.Flags().BoolVar(&favorRecall, "recall", false, "Favor recall over precision")
	rootCmd.Flags().StringVar(&targetLanguage, "lang", "", "Reject documents whose declared language differs")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("articlext v0.1.0")
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	opts := buildOptions()
	result, err := articlext.ExtractBytes(data, opts...)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return printJSON(result)
	case "html":
		fmt.Println(result.ContentHTML)
	default:
		fmt.Println(result.ContentText)
	}
	return nil
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func buildOptions() []articlext.Option {
	var opts []articlext.Option
	if includeImages {
		opts = append(opts, articlext.WithIncludeImages())
	}
	if includeLinks {
		opts = append(opts, articlext.WithIncludeLinks())
	}
	if !includeTables {
		opts = append(opts, articlext.WithoutTables())
	}
	if favorPrecision {
		opts = append(opts, articlext.WithFavorPrecision())
	}
	if favorRecall {
		opts = append(opts, articlext.WithFavorRecall())
	}
	if url != "" {
		opts = append(opts, articlext.WithURL(url))
	}
	if targetLanguage != "" {
		opts = append(opts, articlext.WithTargetLanguage(targetLanguage))
	}
	return opts
}

func printJSON(result *articlext.ExtractResult) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
