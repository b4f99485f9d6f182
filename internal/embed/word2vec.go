// ABOUTME: Skip-gram embedding trainer with negative sampling over k-mer corpora
// ABOUTME: Batch operation over the whole corpus, reproducible under a fixed seed
package embed

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyVocabulary is returned when the corpus yields no retainable tokens,
// so no feature vectors can ever be produced from the run.
var ErrEmptyVocabulary = errors.New("embedding corpus has an empty vocabulary")

const (
	// negativeSamples is the number of noise tokens drawn per training pair
	negativeSamples = 5

	// unigramTableSize is the size of the sampling table for noise draws
	unigramTableSize = 1 << 17

	// unigramPower flattens the unigram distribution for negative sampling
	unigramPower = 0.75

	// maxExponent clips dot products before the sigmoid to avoid overflow
	maxExponent = 6.0
)

// Trainer learns one dense vector per retained token by modeling local
// co-occurrence: each token's vector is trained to be predictive of tokens
// inside a symmetric window in the same sequence. Context never crosses
// sequence boundaries. Training runs on a single goroutine with a seeded
// RNG, so identical inputs and parameters reproduce the identical table.
type Trainer struct {
	Dim          int     // vector dimensionality
	Window       int     // context window radius
	MinTokenFreq int     // tokens rarer than this are dropped (<=1 keeps all)
	Epochs       int     // passes over the corpus
	LearningRate float64 // initial learning rate, decays linearly
	Seed         int64
}

// vocabulary is the frozen token set observed at training time, with ids
// assigned in first-appearance order so runs are reproducible.
type vocabulary struct {
	tokens []string
	ids    map[string]int
	counts []int
}

// Train consumes the full corpus (one token sequence per chain) and returns
// the frozen embedding table. It observes every sequence before producing
// any vector. An empty corpus, or one whose tokens are all dropped by the
// frequency threshold, fails with ErrEmptyVocabulary.
func (t *Trainer) Train(corpus [][]string) (*Table, error) {
	vocab := buildVocabulary(corpus, t.MinTokenFreq)
	if len(vocab.tokens) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Encode sequences as id slices, skipping dropped tokens. The window
	// then spans the surviving neighbors, as in the reference word2vec.
	encoded := make([][]int, 0, len(corpus))
	totalTokens := 0
	for _, tokens := range corpus {
		ids := make([]int, 0, len(tokens))
		for _, token := range tokens {
			if id, ok := vocab.ids[token]; ok {
				ids = append(ids, id)
			}
		}
		encoded = append(encoded, ids)
		totalTokens += len(ids)
	}

	rng := rand.New(rand.NewSource(t.Seed))

	// Input vectors start at small random offsets, output vectors at zero
	syn0 := make([][]float64, len(vocab.tokens))
	syn1 := make([][]float64, len(vocab.tokens))
	for i := range syn0 {
		syn0[i] = make([]float64, t.Dim)
		syn1[i] = make([]float64, t.Dim)
		for d := 0; d < t.Dim; d++ {
			syn0[i][d] = (rng.Float64() - 0.5) / float64(t.Dim)
		}
	}

	noise := buildUnigramTable(vocab.counts)
	gradient := make([]float64, t.Dim)

	processed := 0
	total := t.Epochs * totalTokens
	for epoch := 0; epoch < t.Epochs; epoch++ {
		for _, sentence := range encoded {
			for i, center := range sentence {
				// Linear learning-rate decay over all epochs
				lr := t.LearningRate * (1 - float64(processed)/float64(total+1))
				if lr < t.LearningRate*1e-4 {
					lr = t.LearningRate * 1e-4
				}
				processed++

				if t.Window <= 0 {
					continue
				}
				// Shrink the window randomly per position, weighting
				// near neighbors more heavily than distant ones
				radius := rng.Intn(t.Window) + 1
				for j := i - radius; j <= i+radius; j++ {
					if j < 0 || j >= len(sentence) || j == i {
						continue
					}
					t.trainPair(syn0, syn1, center, sentence[j], lr, noise, rng, gradient)
				}
			}
		}
	}

	vectors := make(map[string][]float64, len(vocab.tokens))
	for id, token := range vocab.tokens {
		vectors[token] = syn0[id]
	}
	return &Table{dim: t.Dim, vectors: vectors}, nil
}

// trainPair applies one skip-gram update: the center token's input vector is
// pushed toward the context token's output vector and away from sampled
// noise tokens.
func (t *Trainer) trainPair(syn0, syn1 [][]float64, center, context int, lr float64, noise []int, rng *rand.Rand, gradient []float64) {
	for d := range gradient {
		gradient[d] = 0
	}
	for n := 0; n <= negativeSamples; n++ {
		target := context
		label := 1.0
		if n > 0 {
			target = noise[rng.Intn(len(noise))]
			if target == context {
				continue
			}
			label = 0.0
		}
		g := (label - sigmoid(floats.Dot(syn0[center], syn1[target]))) * lr
		floats.AddScaled(gradient, g, syn1[target])
		floats.AddScaled(syn1[target], g, syn0[center])
	}
	floats.Add(syn0[center], gradient)
}

// buildVocabulary counts tokens across the corpus and retains those meeting
// the frequency threshold, assigning ids in first-appearance order.
func buildVocabulary(corpus [][]string, minFreq int) *vocabulary {
	counts := make(map[string]int)
	var order []string
	for _, tokens := range corpus {
		for _, token := range tokens {
			if counts[token] == 0 {
				order = append(order, token)
			}
			counts[token]++
		}
	}

	if minFreq < 1 {
		minFreq = 1
	}
	vocab := &vocabulary{ids: make(map[string]int)}
	for _, token := range order {
		if counts[token] < minFreq {
			continue
		}
		vocab.ids[token] = len(vocab.tokens)
		vocab.tokens = append(vocab.tokens, token)
		vocab.counts = append(vocab.counts, counts[token])
	}
	return vocab
}

// buildUnigramTable prepares the noise distribution for negative sampling:
// token ids appear proportionally to count^unigramPower.
func buildUnigramTable(counts []int) []int {
	table := make([]int, unigramTableSize)
	var norm float64
	for _, c := range counts {
		norm += math.Pow(float64(c), unigramPower)
	}
	id := 0
	cumulative := math.Pow(float64(counts[0]), unigramPower) / norm
	for i := range table {
		table[i] = id
		if float64(i)/float64(unigramTableSize) > cumulative {
			if id < len(counts)-1 {
				id++
			}
			cumulative += math.Pow(float64(counts[id]), unigramPower) / norm
		}
	}
	return table
}

func sigmoid(x float64) float64 {
	if x > maxExponent {
		return 1
	}
	if x < -maxExponent {
		return 0
	}
	return 1 / (1 + math.Exp(-x))
}
