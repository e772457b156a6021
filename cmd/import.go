package cmd

import (
	"fmt"
	"slices"

	"github.com/abhisek/lingua/internal/config"
	"github.com/abhisek/lingua/internal/words"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <spreadsheet.xlsx>",
	Short: "Import a custom word list from a spreadsheet",
	Long: `Import custom vocabulary from an .xlsx spreadsheet. The first sheet is
read with one word per row (header row skipped):

  word | translation | pronunciation | category | difficulty | example | example translation

Only word and translation are required. Imported words appear alongside
the built-in lists for the chosen language.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")
		if !slices.Contains(words.Languages(), lang) {
			return fmt.Errorf("unknown language %q (expected one of %v)", lang, words.Languages())
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		result, err := words.ImportXLSX(args[0], lang, cfg.DataDir)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d words", result.Imported)
		if result.Skipped > 0 {
			fmt.Printf(", skipped %d rows", result.Skipped)
		}
		fmt.Println(".")
		for _, e := range result.Errors {
			fmt.Println("  " + e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("lang", "ta", "Language code for the imported words (en, hi, ta)")
}
