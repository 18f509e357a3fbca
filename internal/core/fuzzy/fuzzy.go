// Package fuzzy re-scores retrieval candidates with weighted approximate matching
//
// Each candidate is compared against the query across three fields with fixed
// weights: primary title 1.0, alternative titles 0.9, description 0.7. Matching
// is token position independent. The result is a score in [0,1] where lower is
// a better fit; acceptance is gated by a query-length dependent threshold.
package fuzzy

import (
	"unicode/utf8"

	"github.com/xrash/smetrics"

	"socsearch/internal/core/querynorm"
)

// Field identifies which candidate field produced the best fit
type Field int

// Fields in weight order
const (
	FieldTitle Field = iota
	FieldAlternative
	FieldDescription
)

// field weights
const (
	weightTitle       = 1.0
	weightAlternative = 0.9
	weightDescription = 0.7
)

// Jaro-Winkler parameters (package recommended defaults)
const (
	jwBoostThreshold = 0.7
	jwPrefixSize     = 4
)

// Candidate carries the text fields of one retrieval row
type Candidate struct {
	Title             string
	AlternativeTitles []string
	Description       string
}

// Result is the outcome of re-scoring one candidate
type Result struct {
	// Score is in [0,1], lower is better
	Score float64
	// Best is the field that produced the score
	Best Field
	// MatchedAlternatives lists alternative titles that individually clear
	// the acceptance threshold, in candidate order
	MatchedAlternatives []string
}

// Quality is the multiplicative factor carried into ranking for an accepted result
func (r Result) Quality() float64 { return 1 - r.Score }

// Threshold returns the acceptance threshold for a query
// short queries get the strict threshold since near-misses dominate otherwise
func Threshold(query string) float64 {
	if utf8.RuneCountInString(querynorm.Fold(query)) <= 3 {
		return 0.3
	}
	return 0.5
}

// Evaluate scores one candidate against the query
func Evaluate(query string, c Candidate) Result {
	q := querynorm.Fold(query)

	best := weightTitle * similarity(q, c.Title)
	out := Result{Best: FieldTitle}

	thr := Threshold(query)
	for _, alt := range c.AlternativeTitles {
		s := weightAlternative * similarity(q, alt)
		if 1-s <= thr {
			out.MatchedAlternatives = append(out.MatchedAlternatives, alt)
		}
		if s > best {
			best = s
			out.Best = FieldAlternative
		}
	}

	if s := weightDescription * similarity(q, c.Description); s > best {
		best = s
		out.Best = FieldDescription
	}

	out.Score = 1 - best
	return out
}

// Accepted evaluates and applies the threshold gate
func Accepted(query string, c Candidate) (Result, bool) {
	r := Evaluate(query, c)
	return r, r.Score <= Threshold(query)
}

// similarity compares a folded query against raw field text in [0,1]
// it takes the better of whole-string similarity and the mean of per-token
// best alignments so word order does not matter
func similarity(q, text string) float64 {
	if q == "" {
		return 0
	}
	t := querynorm.Fold(text)
	if t == "" {
		return 0
	}

	whole := smetrics.JaroWinkler(q, t, jwBoostThreshold, jwPrefixSize)

	qTokens := querynorm.Tokens(q)
	tTokens := querynorm.Tokens(t)
	if len(qTokens) == 0 || len(tTokens) == 0 {
		return whole
	}

	var sum float64
	for _, qt := range qTokens {
		bestTok := 0.0
		for _, tt := range tTokens {
			if s := smetrics.JaroWinkler(qt, tt, jwBoostThreshold, jwPrefixSize); s > bestTok {
				bestTok = s
			}
		}
		sum += bestTok
	}
	if tokens := sum / float64(len(qTokens)); tokens > whole {
		return tokens
	}
	return whole
}
