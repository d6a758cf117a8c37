package cmd

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file.pdf>",
	Short: "Validate a generated PDF and report its page count",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	input := args[0]
	if err := api.ValidateFile(input, nil); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	pages, err := api.PageCountFile(input)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	fmt.Printf("%s: valid PDF, %d page(s)\n", input, pages)
	return nil
}
