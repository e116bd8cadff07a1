// Package services implements the four-stage assessment pipeline: response
// normalization, threat scoring, control recommendation and posture
// aggregation. Every operation is a pure function of its inputs and the
// injected catalog registry; no service holds per-call state.
package services

import (
	"strconv"
	"strings"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/pkg/logger"
)

// Normalizer evaluates catalog predicates against raw interview answers.
// Interview data is messy: the same question may come back as a bool, a
// "Yes"/"no" string, a number encoded as text, or a multi-select list. The
// normalizer absorbs all of that so rule tables stay short boolean records.
//
// An absent key or a value of the wrong shape for its predicate evaluates to
// false ("no evidence"), never to an error. Shape mismatches are logged as
// warnings so noisy questionnaires surface in operations without breaking a
// scoring run.
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a predicate evaluator
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{log: log.WithComponent("normalizer")}
}

// Evaluate tests one predicate against the response set
func (n *Normalizer) Evaluate(responses models.ResponseSet, p catalog.Predicate) bool {
	raw, ok := responses[p.Key]
	if !ok || raw == nil {
		return false
	}

	switch p.Kind {
	case catalog.PredicateYes:
		return n.asBool(p.Key, raw)
	case catalog.PredicateNo:
		return n.isExplicitNo(raw)
	case catalog.PredicateContains:
		s, ok := n.asString(p.Key, raw)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(p.Match))
	case catalog.PredicateAtMost:
		v, ok := n.asNumber(p.Key, raw)
		return ok && v <= p.Threshold
	case catalog.PredicateAtLeast:
		v, ok := n.asNumber(p.Key, raw)
		return ok && v >= p.Threshold
	case catalog.PredicateAnyOf:
		items, ok := n.asStringList(p.Key, raw)
		if !ok {
			return false
		}
		for _, item := range items {
			for _, want := range p.Values {
				if strings.EqualFold(strings.TrimSpace(item), want) {
					return true
				}
			}
		}
		return false
	}

	n.log.Warn().Str("key", p.Key).Str("kind", string(p.Kind)).Msg("unknown predicate kind")
	return false
}

// asBool maps affirmative answers in either encoding to true
func (n *Normalizer) asBool(key string, raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "yes", "y", "true":
			return true
		}
		return false
	default:
		n.warnShape(key, "yes/no", raw)
		return false
	}
}

// isExplicitNo matches only a stated negative. An absent or unexpected value
// is no evidence, not a no; callers that need that distinction use PredicateNo
// sparingly.
func (n *Normalizer) isExplicitNo(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return !v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "no", "n", "false", "none":
			return true
		}
	}
	return false
}

func (n *Normalizer) asString(key string, raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		n.warnShape(key, "text", raw)
		return "", false
	}
	return s, true
}

func (n *Normalizer) asNumber(key string, raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			n.warnShape(key, "number", raw)
			return 0, false
		}
		return f, true
	default:
		n.warnShape(key, "number", raw)
		return 0, false
	}
}

func (n *Normalizer) asStringList(key string, raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				n.warnShape(key, "list of text", raw)
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case string:
		// single selection submitted without list wrapping
		return []string{v}, true
	default:
		n.warnShape(key, "list of text", raw)
		return nil, false
	}
}

func (n *Normalizer) warnShape(key, expected string, raw any) {
	n.log.Warn().
		Str("key", key).
		Str("expected", expected).
		Type("got", raw).
		Msg("answer shape mismatch, treating as no evidence")
}
