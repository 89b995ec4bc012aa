// Package score implements the main-content extractor: structural
// scoring over candidate block elements, producing a content subtree.
package score

import "regexp"

// inclusionRE rewards containers whose class/id suggests article body
// content.
var inclusionRE = regexp.MustCompile(`(?i)article|body|content|entry|main|post|story|text`)

// Thresholds is the per-mode inclusion table from spec.md §4.4.
type Thresholds struct {
	MinTextLen     int
	MaxLinkDensity float64
	MinScore       float64
}

var (
	precisionThresholds = Thresholds{MinTextLen: 25, MaxLinkDensity: 0.30, MinScore: 2.0}
	balancedThresholds  = Thresholds{MinTextLen: 15, MaxLinkDensity: 0.45, MinScore: 1.0}
	recallThresholds    = Thresholds{MinTextLen: 10, MaxLinkDensity: 0.55, MinScore: 0.3}
)

// ThresholdsFor resolves the inclusion table for the given mode flags.
// Precision wins if both are set (callers should already have resolved
// that conflict in Options, but this stays defensive).
func ThresholdsFor(favorPrecision, favorRecall bool) Thresholds {
	switch {
	case favorPrecision:
		return precisionThresholds
	case favorRecall:
		return recallThresholds
	default:
		return balancedThresholds
	}
}
