package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptx2slidev/internal/adapters/secondary/config"
	"github.com/fredcamaral/pptx2slidev/internal/adapters/secondary/extractor"
	"github.com/fredcamaral/pptx2slidev/internal/adapters/secondary/pptx"
	"github.com/fredcamaral/pptx2slidev/internal/adapters/secondary/renderer"
	"github.com/fredcamaral/pptx2slidev/internal/domain/services"
)

var outputDir string

// convertCmd converts a single presentation.
var convertCmd = &cobra.Command{
	Use:   "convert <file.pptx>",
	Short: "Convert one PowerPoint file to a Slidev deck",
	Long: `Convert a single .pptx file into a Slidev presentation directory
containing slides.md and any extracted images.

Example:
  pptx2slidev convert talk.pptx
  pptx2slidev convert talk.pptx -o ./slidev-presentations`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

// batchCmd converts every presentation in a directory, sequentially.
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Convert every .pptx file in a directory",
	Long: `Convert all .pptx files in a directory, one after another, into a
shared output directory. A file that fails to convert is reported and
skipped; the rest of the batch still runs.

Example:
  pptx2slidev batch ./presentations -o ./slidev-presentations`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// newConversionService wires the pipeline for a command invocation.
func newConversionService(cmd *cobra.Command) (*services.ConversionService, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	cfg, err := config.NewTOMLLoader().Load(cmd.Context(), ".")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return services.NewConversionService(
		pptx.NewReader(),
		extractor.NewService(logger),
		renderer.NewService(cfg),
		cfg,
		logger,
	), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	service, err := newConversionService(cmd)
	if err != nil {
		return err
	}

	result, err := service.ConvertFile(cmd.Context(), args[0], outputDir)
	if err != nil {
		return err
	}

	cmd.Printf("Converted %d slides (%d images) to %s\n", result.Slides, result.Images, result.OutputPath)
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	service, err := newConversionService(cmd)
	if err != nil {
		return err
	}

	results, err := service.ConvertBatch(cmd.Context(), args[0], outputDir)
	if err != nil {
		return err
	}

	for _, result := range results {
		cmd.Printf("Converted %s -> %s (%d slides, %d images)\n",
			result.SourcePath, result.OutputPath, result.Slides, result.Images)
	}
	cmd.Printf("Batch complete: %d presentation(s) converted\n", len(results))
	return nil
}

func init() {
	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "./slidev-presentations", "Output directory")
	batchCmd.Flags().StringVarP(&outputDir, "output", "o", "./slidev-presentations", "Output directory")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(batchCmd)
}
