package evaluate

import (
	"github.com/ppetrenko/textra/internal/model"
)

// Evaluator compares a ranked result list to a relevance-judgment set
// of document IDs. It is a pure function of its inputs and never
// fails.
type Evaluator struct{}

// NewEvaluator creates a new evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate computes aggregate quality metrics for the given results.
// Empty results yield all-zero metrics regardless of expectations. An
// empty expectation set yields precision = recall = 1 by convention:
// nothing was expected, so nothing was missed. Membership is decided
// on the document ID, not the chunk ID.
func (e *Evaluator) Evaluate(results []model.SearchResult, expectedDocIDs []string) model.EvaluationMetrics {
	if len(results) == 0 {
		return model.EvaluationMetrics{}
	}

	relevance := e.relevance(results)
	precision, recall := e.precisionRecall(results, expectedDocIDs)

	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	return model.EvaluationMetrics{
		Relevance: relevance,
		Precision: precision,
		Recall:    recall,
		F1Score:   f1,
	}
}

// relevance is the mean result score capped at 1.0. The cap guards
// against scoring functions that exceed the [0,1] design range.
func (e *Evaluator) relevance(results []model.SearchResult) float64 {
	total := 0.0
	for _, r := range results {
		total += r.Score
	}
	avg := total / float64(len(results))
	if avg > 1.0 {
		return 1.0
	}
	return avg
}

func (e *Evaluator) precisionRecall(results []model.SearchResult, expectedDocIDs []string) (float64, float64) {
	if len(expectedDocIDs) == 0 {
		return 1.0, 1.0
	}

	expected := make(map[string]struct{}, len(expectedDocIDs))
	for _, id := range expectedDocIDs {
		expected[id] = struct{}{}
	}

	relevantRetrieved := 0
	for _, r := range results {
		if _, ok := expected[r.DocumentID]; ok {
			relevantRetrieved++
		}
	}

	precision := float64(relevantRetrieved) / float64(len(results))
	recall := float64(relevantRetrieved) / float64(len(expectedDocIDs))
	return precision, recall
}
