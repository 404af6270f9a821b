package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredcamaral/pptx2slidev/internal/adapters/secondary/verify"
)

// checkCmd validates a generated deck.
var checkCmd = &cobra.Command{
	Use:   "check <slides.md>",
	Short: "Validate a generated Slidev deck",
	Long: `Re-parse a generated deck: decode the frontmatter, split the slide
sections, confirm each parses as markdown, and flag unescaped angle
brackets that would break Slidev's Vue layer.

Example:
  pptx2slidev check ./slidev-presentations/my-talk/slides.md`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0]) // #nosec G304 - path is the user-supplied deck file
	if err != nil {
		return fmt.Errorf("reading deck: %w", err)
	}

	report, err := verify.NewVerifier().Verify(content)
	if err != nil {
		return err
	}

	cmd.Printf("Sections: %d\n", report.Sections)
	cmd.Printf("Images:   %d\n", report.Images)
	if theme, ok := report.Frontmatter["theme"]; ok {
		cmd.Printf("Theme:    %v\n", theme)
	}

	if len(report.Problems) == 0 {
		cmd.Println("Deck looks valid.")
		return nil
	}

	for _, problem := range report.Problems {
		cmd.Printf("Problem: %s\n", problem)
	}
	return fmt.Errorf("%d problem(s) found", len(report.Problems))
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
