package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyInterestSignal(t *testing.T) {
	cases := []struct {
		name      string
		current   []float32
		embedding []float32
		weight    float64
		expected  []float32
	}{
		{
			name:      "zero_current_view",
			current:   nil,
			embedding: []float32{1, 0, 0},
			weight:    0.08,
			expected:  []float32{0.08, 0, 0},
		},
		{
			name:      "save_pulls_toward_embedding",
			current:   []float32{1, 0, 0},
			embedding: []float32{0, 1, 0},
			weight:    0.3,
			expected:  []float32{0.7, 0.3, 0},
		},
		{
			name:      "length_mismatch_resets_current",
			current:   []float32{1, 1},
			embedding: []float32{0, 1, 0},
			weight:    0.5,
			expected:  []float32{0, 0.5, 0},
		},
		{
			name:      "non_finite_coerced_to_zero",
			current:   []float32{float32(math.NaN()), 0.5, float32(math.Inf(1))},
			embedding: []float32{0.5, 0.5, 0.5},
			weight:    0.2,
			expected:  []float32{0, 0.5, 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyInterestSignal(tc.current, tc.embedding, tc.weight)
			require.Len(t, got, len(tc.embedding))
			for i := range got {
				assert.InDelta(t, tc.expected[i], got[i], 1e-6)
				assert.False(t, math.IsNaN(float64(got[i])))
				assert.False(t, math.IsInf(float64(got[i]), 0))
			}
		})
	}
}

// Applying the same signal twice must match the closed-form two-step
// exponential update, not double-apply or skip a step.
func TestApplyInterestSignal_TwoStepClosedForm(t *testing.T) {
	embedding := []float32{0.6, 0.8, 0}
	w := 0.2

	step1 := ApplyInterestSignal(nil, embedding, w)
	step2 := ApplyInterestSignal(step1, embedding, w)

	// closed form: (1-w)*w*e + w*e = w*(2-w)*e
	for i, e := range embedding {
		want := w * (2 - w) * float64(e)
		assert.InDelta(t, want, float64(step2[i]), 1e-6)
	}
}

func TestNormalizeL2(t *testing.T) {
	cases := []struct {
		name     string
		input    []float32
		expected []float32
	}{
		{
			name:     "already_unit",
			input:    []float32{1, 0, 0},
			expected: []float32{1, 0, 0},
		},
		{
			name:     "save_scenario",
			input:    []float32{0.7, 0.3, 0},
			expected: []float32{0.9191, 0.3939, 0},
		},
		{
			name:     "zero_vector_unchanged",
			input:    []float32{0, 0, 0},
			expected: []float32{0, 0, 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeL2(tc.input)
			for i := range got {
				assert.InDelta(t, tc.expected[i], got[i], 1e-4)
			}
		})
	}
}

func TestNormalizeL2_UnitNorm(t *testing.T) {
	vectors := [][]float32{
		{0.08, 0, 0},
		{0.7, 0.3, 0},
		{-1, 2, -3, 4},
		{1e-8, 1e-8},
	}

	for _, v := range vectors {
		normalized := NormalizeL2(v)

		var sumSquares float64
		for _, x := range normalized {
			sumSquares += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, math.Sqrt(sumSquares), 1e-6)
	}
}

func TestJournalEntry_EmbeddingInput(t *testing.T) {
	cases := []struct {
		name     string
		entry    JournalEntry
		expected string
	}{
		{
			name: "all_fields",
			entry: JournalEntry{
				Title:  "Three days in Kyoto",
				Region: "Kansai, Japan",
				Body:   "We arrived by shinkansen...",
			},
			expected: "Three days in Kyoto\nKansai, Japan\nWe arrived by shinkansen...",
		},
		{
			name: "blank_region_omitted",
			entry: JournalEntry{
				Title:  "Three days in Kyoto",
				Region: "  ",
				Body:   "We arrived by shinkansen...",
			},
			expected: "Three days in Kyoto\nWe arrived by shinkansen...",
		},
		{
			name:     "empty_entry",
			entry:    JournalEntry{},
			expected: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.entry.EmbeddingInput())
		})
	}
}
