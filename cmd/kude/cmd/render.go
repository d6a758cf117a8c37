package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/spf13/cobra"

	"github.com/sifenlabs/kude/internal/render"
)

var (
	renderCompanyID   string
	renderCompanyName string
	renderLogoPath    string
	renderOutput      string
	renderValidate    bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file.xml>",
	Short: "Render a SIFEN XML document to a KuDE PDF",
	Long: `Render a SIFEN XML document to its printable KuDE PDF.

The document kind (factura or nota de crédito) is read from the XML
itself; both use the same command.

Examples:
  # Render to a default-named PDF
  kude render factura.xml

  # Render with logo and company name on the legal text
  kude render factura.xml --company 6 --company-name "ACME S.A." --logo media/logoFactura.png

  # Validate the generated PDF with pdfcpu
  kude render factura.xml -o out.pdf --validate`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&renderCompanyID, "company", "", "Emitting company code (logo placement profile)")
	renderCmd.Flags().StringVar(&renderCompanyName, "company-name", "", "Company name printed in the payment-default clause")
	renderCmd.Flags().StringVar(&renderLogoPath, "logo", "", "Path to the company logo PNG")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output PDF path (default: input name with .pdf)")
	renderCmd.Flags().BoolVar(&renderValidate, "validate", false, "Validate the generated PDF with pdfcpu")
}

func runRender(cmd *cobra.Command, args []string) error {
	input := args[0]
	xmlData, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	var logo []byte
	if renderLogoPath != "" {
		logo, err = os.ReadFile(renderLogoPath)
		if err != nil {
			return fmt.Errorf("reading logo %s: %w", renderLogoPath, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	printVerbose("rendering %s\n", input)
	gen := render.NewGenerator()
	pdf, err := gen.Render(ctx, xmlData, renderCompanyID, renderCompanyName, logo)
	if err != nil {
		return err
	}

	output := renderOutput
	if output == "" {
		output = strings.TrimSuffix(input, ".xml") + ".pdf"
	}
	if err := os.WriteFile(output, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	printVerbose("wrote %s (%d bytes)\n", output, len(pdf))

	if renderValidate {
		if err := api.ValidateFile(output, nil); err != nil {
			return fmt.Errorf("generated PDF failed validation: %w", err)
		}
		fmt.Printf("%s: valid PDF\n", output)
	}
	return nil
}
