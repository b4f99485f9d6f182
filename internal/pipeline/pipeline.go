// ABOUTME: Pipeline drives fold labeling, tokenization, training and vectorization
// ABOUTME: Per-record worker pools around a single global training barrier
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/foldlab/foldvec/internal/config"
	"github.com/foldlab/foldvec/internal/embed"
	"github.com/foldlab/foldvec/internal/fold"
	"github.com/foldlab/foldvec/internal/models"
	"github.com/foldlab/foldvec/internal/tokenize"
)

// RecordError reports a single rejected record. Rejections never abort the
// batch; they are tallied on the Result.
type RecordError struct {
	Index int    `json:"index"` // position in the input batch
	ID    string `json:"id"`
	Err   error  `json:"-"`
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.ID, e.Err)
}

// Result is the outcome of one pipeline run. Outputs are in stable input
// order. Table is nil when a remote embedder produced the vectors.
type Result struct {
	RunID     string
	Outputs   []models.OutputRecord
	Table     *embed.Table
	VocabSize int
	Errors    []RecordError
}

// Pipeline sequences the components over a batch of chain records:
// validate, classify and tokenize per record, train the embedding once over
// the full corpus, then vectorize per record against the frozen table.
type Pipeline struct {
	cfg        *config.Config
	classifier *fold.Classifier
	remote     embed.SequenceEmbedder
}

// New creates a Pipeline from validated configuration. With the openai
// backend configured, vectors come from the remote embedder and the local
// training stage is skipped.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{
		cfg:        cfg,
		classifier: fold.NewClassifier(cfg.MinThreshold, cfg.MaxThreshold),
	}
	if cfg.EmbedderBackend == config.EmbedderOpenAI {
		remote, err := embed.NewOpenAIEmbedder(embed.OpenAIConfig{
			APIKey:     cfg.OpenAIKey,
			Model:      cfg.EmbeddingModel,
			Dim:        cfg.RemoteDim,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
		})
		if err != nil {
			return nil, err
		}
		p.remote = remote
	}
	return p, nil
}

// NewWithRemote creates a Pipeline that uses the given embedder instead of
// local training, regardless of the configured backend
func NewWithRemote(cfg *config.Config, remote embed.SequenceEmbedder) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:        cfg,
		classifier: fold.NewClassifier(cfg.MinThreshold, cfg.MaxThreshold),
		remote:     remote,
	}, nil
}

type job struct {
	index  int // position in the input batch
	record models.ChainRecord
}

// Run processes one batch of chain records. Malformed and duplicate records
// are rejected individually (first occurrence of an id wins); an empty
// vocabulary aborts the whole run.
func (p *Pipeline) Run(ctx context.Context, records []models.ChainRecord) (*Result, error) {
	result := &Result{RunID: uuid.New().String()}

	var jobs []job
	seen := make(map[string]int)
	for i := range records {
		rec := records[i]
		if err := rec.Validate(); err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, ID: rec.ID, Err: err})
			continue
		}
		if first, dup := seen[rec.ID]; dup {
			result.Errors = append(result.Errors, RecordError{
				Index: i,
				ID:    rec.ID,
				Err:   fmt.Errorf("duplicate id (first seen at record %d)", first),
			})
			continue
		}
		seen[rec.ID] = i
		jobs = append(jobs, job{index: i, record: rec})
	}

	// Stage 1: fold labels and token sequences, per record in parallel.
	// Workers write to disjoint indices, so no locking is needed; forEach
	// returns only after every worker has finished, which is the barrier
	// training depends on.
	labels := make([]models.FoldType, len(jobs))
	tokens := make([][]string, len(jobs))
	p.forEach(len(jobs), func(n int) {
		labels[n] = p.classifier.Classify(jobs[n].record.Alpha, jobs[n].record.Beta)
		tokens[n] = tokenize.Kmers(jobs[n].record.Sequence, p.cfg.K)
	})

	// Stage 2: train once over the full corpus. The table is frozen from
	// here on and shared read-only by all vectorization workers.
	embedder := p.remote
	if embedder == nil {
		trainer := &embed.Trainer{
			Dim:          p.cfg.Dim,
			Window:       p.cfg.Window,
			MinTokenFreq: p.cfg.MinTokenFreq,
			Epochs:       p.cfg.Epochs,
			LearningRate: p.cfg.LearningRate,
			Seed:         p.cfg.Seed,
		}
		table, err := trainer.Train(tokens)
		if err != nil {
			return nil, fmt.Errorf("training embedding: %w", err)
		}
		result.Table = table
		result.VocabSize = table.Len()
		embedder = embed.NewTableEmbedder(table, p.cfg.K)
	}

	// Stage 3: vectorize per record against the frozen table
	vectors := make([][]float64, len(jobs))
	vectorErrs := make([]error, len(jobs))
	p.forEach(len(jobs), func(n int) {
		vectors[n], vectorErrs[n] = embedder.Embed(ctx, jobs[n].record.Sequence)
	})

	// Assemble in stable input order; jobs are already sorted by index
	for n := range jobs {
		if vectorErrs[n] != nil {
			result.Errors = append(result.Errors, RecordError{
				Index: jobs[n].index,
				ID:    jobs[n].record.ID,
				Err:   vectorErrs[n],
			})
			continue
		}
		rec := jobs[n].record
		result.Outputs = append(result.Outputs, models.OutputRecord{
			ID:            rec.ID,
			Alpha:         rec.Alpha,
			Beta:          rec.Beta,
			Coil:          rec.Coil,
			FoldType:      labels[n],
			FeatureVector: vectors[n],
		})
	}
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Index < result.Errors[j].Index
	})
	return result, nil
}

// forEach runs fn for every index in [0, n) across the configured number of
// workers and returns once all calls have completed
func (p *Pipeline) forEach(n int, fn func(int)) {
	workers := p.cfg.Workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	indexes := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}
