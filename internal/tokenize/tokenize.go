// ABOUTME: Overlapping k-mer tokenization of residue sequences
// ABOUTME: A sequence of length L yields L-k+1 tokens at stride 1
package tokenize

// Kmers returns every k-length contiguous substring of seq in order, one per
// offset. A sequence shorter than k yields no tokens. The function never
// truncates or pads; validating k is the caller's job. Residue symbols are
// single bytes, so slicing is done on bytes rather than runes.
func Kmers(seq string, k int) []string {
	if k <= 0 || len(seq) < k {
		return nil
	}
	tokens := make([]string, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		tokens = append(tokens, seq[i:i+k])
	}
	return tokens
}
