package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(logger.NewDefault())
}

func TestEvaluateYes(t *testing.T) {
	n := newTestNormalizer()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"native bool true", true, true},
		{"native bool false", false, false},
		{"lowercase yes", "yes", true},
		{"mixed case yes", "Yes", true},
		{"short y", "y", true},
		{"string true", "true", true},
		{"padded yes", "  yes  ", true},
		{"no", "no", false},
		{"unrelated text", "maybe next quarter", false},
		{"number instead of bool", 7.0, false},
		{"list instead of bool", []any{"yes"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			responses := models.ResponseSet{"q": tt.value}
			assert.Equal(t, tt.want, n.Evaluate(responses, catalog.Yes("q")))
		})
	}
}

func TestEvaluateNoRequiresExplicitNegative(t *testing.T) {
	n := newTestNormalizer()

	assert.True(t, n.Evaluate(models.ResponseSet{"q": "no"}, catalog.No("q")))
	assert.True(t, n.Evaluate(models.ResponseSet{"q": false}, catalog.No("q")))
	assert.True(t, n.Evaluate(models.ResponseSet{"q": "None"}, catalog.No("q")))

	// absence is no evidence, not a no
	assert.False(t, n.Evaluate(models.ResponseSet{}, catalog.No("q")))
	assert.False(t, n.Evaluate(models.ResponseSet{"q": nil}, catalog.No("q")))
	assert.False(t, n.Evaluate(models.ResponseSet{"q": "unsure"}, catalog.No("q")))
}

func TestEvaluateMissingKeyNeverMatches(t *testing.T) {
	n := newTestNormalizer()
	empty := models.ResponseSet{}

	assert.False(t, n.Evaluate(empty, catalog.Yes("q")))
	assert.False(t, n.Evaluate(empty, catalog.Contains("q", "guard")))
	assert.False(t, n.Evaluate(empty, catalog.AtMost("q", 5)))
	assert.False(t, n.Evaluate(empty, catalog.AtLeast("q", 5)))
	assert.False(t, n.Evaluate(empty, catalog.AnyOf("q", "a", "b")))
}

func TestEvaluateContains(t *testing.T) {
	n := newTestNormalizer()

	responses := models.ResponseSet{"coverage": "Guards on site 24/7 including weekends"}
	assert.True(t, n.Evaluate(responses, catalog.Contains("coverage", "24")))
	assert.True(t, n.Evaluate(responses, catalog.Contains("coverage", "GUARDS")))
	assert.False(t, n.Evaluate(responses, catalog.Contains("coverage", "vacant")))

	// wrong shape degrades to no evidence
	assert.False(t, n.Evaluate(models.ResponseSet{"coverage": 24.0}, catalog.Contains("coverage", "24")))
}

func TestEvaluateNumericThresholds(t *testing.T) {
	n := newTestNormalizer()

	assert.True(t, n.Evaluate(models.ResponseSet{"days": 14.0}, catalog.AtMost("days", 30)))
	assert.True(t, n.Evaluate(models.ResponseSet{"days": 30.0}, catalog.AtMost("days", 30)))
	assert.False(t, n.Evaluate(models.ResponseSet{"days": 31.0}, catalog.AtMost("days", 30)))

	assert.True(t, n.Evaluate(models.ResponseSet{"headcount": 250.0}, catalog.AtLeast("headcount", 250)))
	assert.False(t, n.Evaluate(models.ResponseSet{"headcount": 249.0}, catalog.AtLeast("headcount", 250)))

	// questionnaires frequently encode numbers as text
	assert.True(t, n.Evaluate(models.ResponseSet{"days": "14"}, catalog.AtMost("days", 30)))
	assert.False(t, n.Evaluate(models.ResponseSet{"days": "about two weeks"}, catalog.AtMost("days", 30)))
}

func TestEvaluateAnyOf(t *testing.T) {
	n := newTestNormalizer()
	p := catalog.AnyOf("spots", "stockroom", "receiving")

	// decoded JSON arrives as []any
	assert.True(t, n.Evaluate(models.ResponseSet{"spots": []any{"entrances", "stockroom"}}, p))
	assert.True(t, n.Evaluate(models.ResponseSet{"spots": []string{"Receiving"}}, p))
	assert.False(t, n.Evaluate(models.ResponseSet{"spots": []any{"entrances"}}, p))

	// single selection submitted without list wrapping
	assert.True(t, n.Evaluate(models.ResponseSet{"spots": "stockroom"}, p))

	// mixed-type list degrades to no evidence
	assert.False(t, n.Evaluate(models.ResponseSet{"spots": []any{"stockroom", 3.0}}, p))
}
