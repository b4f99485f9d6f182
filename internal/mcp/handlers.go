// ABOUTME: MCP tool handler implementations for the foldvec server
// ABOUTME: Serves classification and vectorization against stored models
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/foldlab/foldvec/internal/embed"
	"github.com/foldlab/foldvec/internal/fold"
	"github.com/foldlab/foldvec/internal/storage/sqlite"
	"github.com/foldlab/foldvec/internal/tokenize"
)

// model pairs a loaded embedding table with the k its run tokenized with
type model struct {
	table *embed.Table
	k     int
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store      *sqlite.Store
	classifier *fold.Classifier

	// Loaded models, cached per run id. Tables are immutable, so the lock
	// only guards the map itself.
	models map[string]model
	mu     *sync.Mutex
}

// ClassifyFold handles the classify_fold tool
func (h *Handlers) ClassifyFold(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	alpha, err := request.RequireFloat("alpha")
	if err != nil {
		return mcp.NewToolResultError("alpha argument is required and must be a number"), nil
	}
	beta, err := request.RequireFloat("beta")
	if err != nil {
		return mcp.NewToolResultError("beta argument is required and must be a number"), nil
	}
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return mcp.NewToolResultError("alpha and beta must be fractions in [0,1]"), nil
	}

	response := map[string]interface{}{
		"alpha":     alpha,
		"beta":      beta,
		"fold_type": h.classifier.Classify(alpha, beta),
	}
	return jsonResult(response)
}

// VectorizeSequence handles the vectorize_sequence tool
func (h *Handlers) VectorizeSequence(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runID, err := request.RequireString("run_id")
	if err != nil {
		return mcp.NewToolResultError("run_id argument is required and must be a string"), nil
	}
	sequence, err := request.RequireString("sequence")
	if err != nil {
		return mcp.NewToolResultError("sequence argument is required and must be a string"), nil
	}

	m, err := h.loadModel(runID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading model: %v", err)), nil
	}

	tokens := tokenize.Kmers(sequence, m.k)
	response := map[string]interface{}{
		"run_id":         runID,
		"dim":            m.table.Dim(),
		"token_count":    len(tokens),
		"feature_vector": m.table.Mean(tokens),
	}
	return jsonResult(response)
}

// ListRuns handles the list_runs tool
func (h *Handlers) ListRuns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runs, err := h.store.ListRuns()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing runs: %v", err)), nil
	}
	return jsonResult(map[string]interface{}{"runs": runs, "count": len(runs)})
}

// loadModel returns the cached model for a run, loading it from the store
// on first use
func (h *Handlers) loadModel(runID string) (model, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if m, ok := h.models[runID]; ok {
		return m, nil
	}
	run, err := h.store.GetRun(runID)
	if err != nil {
		return model{}, err
	}
	if run == nil {
		return model{}, fmt.Errorf("run %s not found", runID)
	}
	table, err := h.store.LoadModel(runID)
	if err != nil {
		return model{}, err
	}
	m := model{table: table, k: run.K}
	h.models[runID] = m
	return m, nil
}

func jsonResult(response interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
