// Package matching blends a user's evaluation scores into a per-book match
// percentage and decides whether the book is recommended.
//
// Everything here is a pure function of (candidates, scores, params): no
// clock, no randomness, so a ranking can always be reproduced.
package matching

import (
	"sort"

	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/settings"
)

// DefaultLimit is how many books a ranking returns when Params.Limit is unset.
const DefaultLimit = 6

// EvaluationScore is the authoritative score of one user for one evaluation:
// the latest submitted rating with answers.
type EvaluationScore struct {
	EvaluationID uint
	RatingID     uint
	Percentage   float64
}

type LinkedEvaluation struct {
	ID    uint
	Title string
}

type Candidate struct {
	BookID      uint
	BookTitle   string
	Evaluations []LinkedEvaluation
}

func CandidateFromBook(b model.Book) Candidate {
	c := Candidate{BookID: b.ID, BookTitle: b.Title}
	for _, ev := range b.LinkedEvaluations() {
		c.Evaluations = append(c.Evaluations, LinkedEvaluation{ID: ev.ID, Title: ev.Title})
	}
	return c
}

type Params struct {
	Threshold       float64
	DisplayBoundary float64
	Limit           int
}

func ParamsFrom(snap settings.Snapshot, limit int) Params {
	return Params{
		Threshold:       snap.RecommendationThreshold,
		DisplayBoundary: snap.DisplayBoundary,
		Limit:           limit,
	}
}

type EvaluationResult struct {
	EvaluationID    uint    `json:"evaluation_id"`
	EvaluationTitle string  `json:"evaluation_title"`
	RatingID        uint    `json:"rating_id"`
	UserScore       float64 `json:"user_score"`
	IsPassed        bool    `json:"is_passed"`
}

type Result struct {
	BookID          uint    `json:"book_id"`
	BookTitle       string  `json:"book_title"`
	MatchPercentage float64 `json:"match_percentage"`
	// HasAttempt is false when none of the linked evaluations was completed;
	// such a book has MatchPercentage 0 and is never recommended.
	HasAttempt     bool `json:"has_attempt"`
	IsRecommended  bool `json:"is_recommended"`
	MeetsThreshold bool `json:"meets_threshold"`

	EvaluationResults []EvaluationResult `json:"evaluation_results"`
	// Linked evaluations the user never completed; excluded from the mean.
	UnattemptedEvaluationIDs []uint `json:"unattempted_evaluation_ids,omitempty"`
}

// Match computes the result for one book.
func Match(c Candidate, scores map[uint]EvaluationScore, p Params) Result {
	res := Result{BookID: c.BookID, BookTitle: c.BookTitle, EvaluationResults: []EvaluationResult{}}

	seen := make(map[uint]bool, len(c.Evaluations))
	sum := 0.0
	for _, ev := range c.Evaluations {
		if seen[ev.ID] {
			continue
		}
		seen[ev.ID] = true

		s, ok := scores[ev.ID]
		if !ok {
			res.UnattemptedEvaluationIDs = append(res.UnattemptedEvaluationIDs, ev.ID)
			continue
		}
		res.EvaluationResults = append(res.EvaluationResults, EvaluationResult{
			EvaluationID:    ev.ID,
			EvaluationTitle: ev.Title,
			RatingID:        s.RatingID,
			UserScore:       s.Percentage,
			IsPassed:        s.Percentage >= p.Threshold,
		})
		sum += s.Percentage
	}

	if n := len(res.EvaluationResults); n > 0 {
		res.HasAttempt = true
		res.MatchPercentage = sum / float64(n)
	}
	res.IsRecommended = res.HasAttempt && res.MatchPercentage >= p.Threshold
	res.MeetsThreshold = res.HasAttempt && res.MatchPercentage >= p.DisplayBoundary
	return res
}

// Rank matches every candidate and returns the best Params.Limit results,
// highest match first, ties broken by book id. Low or zero matches are still
// returned so there is always something to show.
func Rank(candidates []Candidate, scores map[uint]EvaluationScore, p Params) []Result {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	seen := make(map[uint]bool, len(candidates))
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		if seen[c.BookID] {
			continue
		}
		seen[c.BookID] = true
		results = append(results, Match(c, scores, p))
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchPercentage != results[j].MatchPercentage {
			return results[i].MatchPercentage > results[j].MatchPercentage
		}
		if results[i].HasAttempt != results[j].HasAttempt {
			return results[i].HasAttempt
		}
		return results[i].BookID < results[j].BookID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
