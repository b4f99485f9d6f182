// ABOUTME: MCP tool definitions and registration for the foldvec server
// ABOUTME: Exposes fold classification and sequence vectorization over stored runs
package mcp

import (
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/foldlab/foldvec/internal/fold"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *sqlite.Store, classifier *fold.Classifier) *Handlers {
	handlers := &Handlers{
		store:      store,
		classifier: classifier,
		models:     make(map[string]model),
		mu:         &sync.Mutex{},
	}

	// 1. classify_fold - label a chain from its secondary-structure fractions
	server.AddTool(mcp.Tool{
		Name:        "classify_fold",
		Description: "Classify a protein chain's fold type (alpha, beta, alpha+beta, other) from its helix and strand fractions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"alpha": map[string]interface{}{
					"type":        "number",
					"description": "Fraction of residues in helices (0-1)",
				},
				"beta": map[string]interface{}{
					"type":        "number",
					"description": "Fraction of residues in strands (0-1)",
				},
			},
			Required: []string{"alpha", "beta"},
		},
	}, handlers.ClassifyFold)

	// 2. vectorize_sequence - feature vector from a stored run's model
	server.AddTool(mcp.Tool{
		Name:        "vectorize_sequence",
		Description: "Compute the fixed-length feature vector of a residue sequence using the embedding model of a stored run.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"run_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of a stored pipeline run with a trained model",
				},
				"sequence": map[string]interface{}{
					"type":        "string",
					"description": "Residue sequence to vectorize",
				},
			},
			Required: []string{"run_id", "sequence"},
		},
	}, handlers.VectorizeSequence)

	// 3. list_runs - enumerate stored pipeline runs
	server.AddTool(mcp.Tool{
		Name:        "list_runs",
		Description: "List stored pipeline runs with their parameters and record counts.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListRuns)

	return handlers
}
