package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an Algorithm that MaxFlow cannot run.
var ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")

// Algorithm names a max-flow implementation.
type Algorithm string

const (
	AlgorithmDinic       Algorithm = "dinic"
	AlgorithmEdmondsKarp Algorithm = "edmonds_karp"

	// DefaultAlgorithm is used when no algorithm is named.
	DefaultAlgorithm = AlgorithmDinic
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDinic, AlgorithmEdmondsKarp}
}

// ParseAlgorithm maps s (case-insensitive, "-" accepted for "_") to an
// Algorithm. The empty string yields DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return DefaultAlgorithm, nil
	}
	for _, a := range Algorithms() {
		if string(a) == norm {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MaxFlow runs algo on n. An empty algo runs DefaultAlgorithm.
func MaxFlow(
	ctx context.Context,
	algo Algorithm,
	n Network,
	source, sink string,
	opts *Options,
) (float64, error) {
	switch algo {
	case "", AlgorithmDinic:
		return Dinic(ctx, n, source, sink, opts)
	case AlgorithmEdmondsKarp:
		return EdmondsKarp(ctx, n, source, sink, opts)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}
