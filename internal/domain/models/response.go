package models

// ResponseSet maps interview question identifiers to raw answer values.
//
// Values arrive from the questionnaire layer as decoded JSON, so an answer may
// be a string, bool, float64, []any / []string, or a nested map. The response
// normalizer is the only code that inspects the concrete types; everything else
// treats a ResponseSet as opaque. A ResponseSet is immutable for the duration
// of a scoring run.
type ResponseSet map[string]any

// Clone returns a shallow copy. Callers that persist a run keep their own copy
// so a later questionnaire edit cannot alias into a stored run.
func (r ResponseSet) Clone() ResponseSet {
	out := make(ResponseSet, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
