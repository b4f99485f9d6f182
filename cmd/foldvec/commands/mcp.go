// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Serves classification and vectorization tools over stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/fold"
	"github.com/foldlab/foldvec/internal/mcp"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start an MCP (Model Context Protocol) server over stdio, exposing
fold classification and sequence vectorization against stored runs so
LLM agents can call them as tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  foldvec mcp`,
	}
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(resolveDBPath(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	classifier := fold.NewClassifier(cfg.MinThreshold, cfg.MaxThreshold)

	server := mcpserver.NewMCPServer(
		"foldvec",
		"0.1.0",
	)
	mcp.RegisterTools(server, store, classifier)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("foldvec MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received")
		}
		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}
	return nil
}
