package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecallAt(t *testing.T) {
	predicted := []string{"A", "B", "C", "D"}
	relevant := []string{"A", "C", "E"}

	tests := []struct {
		name      string
		predicted []string
		relevant  []string
		k         int
		want      float64
	}{
		{"top 3 finds two of three", predicted, relevant, 3, 2.0 / 3.0},
		{"top 1 finds one of three", predicted, relevant, 1, 1.0 / 3.0},
		{"k beyond predictions", predicted, relevant, 10, 2.0 / 3.0},
		{"no relevant items", predicted, nil, 3, 0},
		{"no predictions", nil, relevant, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RecallAt(tt.predicted, tt.relevant, tt.k), 1e-9)
		})
	}
}

func TestPrecisionAt(t *testing.T) {
	predicted := []string{"A", "B", "C", "D"}
	relevant := []string{"A", "C", "E"}

	tests := []struct {
		name      string
		predicted []string
		relevant  []string
		k         int
		want      float64
	}{
		{"top 3", predicted, relevant, 3, 2.0 / 3.0},
		{"top 1 is a hit", predicted, relevant, 1, 1.0},
		{"k beyond predictions divides by actual count", predicted, relevant, 10, 0.5},
		{"no predictions", nil, relevant, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PrecisionAt(tt.predicted, tt.relevant, tt.k), 1e-9)
		})
	}
}

func TestNDCGAt(t *testing.T) {
	predicted := []string{"A", "B", "C", "D"}
	relevant := []string{"A", "C", "E"}

	// DCG@3: hit at rank 1 contributes 1/log2(2), hit at rank 3
	// contributes 1/log2(4). IDCG@3 assumes hits at ranks 1..3.
	wantDCG := 1.0 + 0.5
	wantIDCG := 1.0 + 0.6309297535714575 + 0.5

	assert.InDelta(t, wantDCG/wantIDCG, NDCGAt(predicted, relevant, 3), 1e-9)
	assert.InDelta(t, 1.0, NDCGAt(predicted, relevant, 1), 1e-9)
	assert.InDelta(t, 0, NDCGAt(predicted, nil, 3), 1e-9)
	assert.InDelta(t, 0, NDCGAt(nil, relevant, 3), 1e-9)
}

func TestNDCGAt_PerfectRanking(t *testing.T) {
	predicted := []string{"A", "C"}
	relevant := []string{"A", "C"}
	assert.InDelta(t, 1.0, NDCGAt(predicted, relevant, 2), 1e-9)
}
