package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sifenlabs/kude/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server that renders KuDE PDFs.

The API provides endpoints for:
  - POST /api/pdf/factura      - Render a factura
  - POST /api/pdf/notacredito  - Render a nota de crédito
  - GET  /health               - Health check

Both POST endpoints take {"xml": "...", "cod_empresa": "...",
"nome_empresa": "..."} and answer with the PDF bytes, or with a
{"code": 0, "message": "..."} body on failure.

Examples:
  # Start server on default port
  kude serve

  # Custom port with logos
  kude serve --address :3000 --media-dir ./media

  # Debug mode with request logging
  kude serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	config := &server.Config{
		Address:      serverAddr,
		MediaDir:     mediaDir,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	fmt.Printf("Starting server on %s\n", serverAddr)
	if mediaDir != "" {
		fmt.Printf("Serving logos from %s\n", mediaDir)
	} else {
		fmt.Println("No media directory set; documents render without logos")
	}

	return srv.Run()
}
