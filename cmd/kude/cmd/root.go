package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose  bool
	mediaDir string
)

var rootCmd = &cobra.Command{
	Use:   "kude",
	Short: "Render Paraguayan SIFEN electronic documents as printable KuDE PDFs",
	Long: `kude turns signed SIFEN XML (facturas and notas de crédito) into the
printable KuDE representation.

Accepted input shapes:
  - SOAP consultation response (rEnviDeResponse envelope)
  - rLoteDE batch (first document is rendered)
  - bare rDE document

Examples:
  # Render a document to PDF
  kude render factura.xml -o factura.pdf

  # Render with a company logo and validate the output
  kude render factura.xml --company 6 --logo media/logoFactura.png --validate

  # Start the HTTP API
  kude serve --address :3000 --media-dir ./media`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&mediaDir, "media-dir", "", "Directory with company logo files (env: KUDE_MEDIA_DIR)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if mediaDir == "" {
		mediaDir = os.Getenv("KUDE_MEDIA_DIR")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
