// Package scoring converts one rating's Likert answers into a single 0-100
// evaluation percentage.
//
// Each answered criterion contributes
//
//	answer{score}Percentage * questionPercentage / 100
//
// and the contributions are summed. When the evaluation's question
// percentages drifted away from 100 the sum is normalized by total/100.
// Authoring drift is reported as Defects next to the result, never as an error.
package scoring

import (
	"errors"
	"fmt"
	"math"

	"github.com/lshigami/Shelfscore/internal/model"
)

// ErrMalformedInput marks inputs that break the data contract (bad answer
// values, items for foreign criteria) as opposed to business outcomes.
var ErrMalformedInput = errors.New("malformed scoring input")

type DefectKind string

const (
	DefectAnswerDistribution DefectKind = "answer_distribution_sum"
	DefectQuestionPercentage DefectKind = "question_percentage_sum"
)

// AuthoringDefect is a warning for an administrator: the stored percentages do
// not add up to 100. CriterionID is zero for evaluation level defects.
type AuthoringDefect struct {
	Kind        DefectKind `json:"kind"`
	CriterionID uint       `json:"criterion_id,omitempty"`
	Total       float64    `json:"total"`
}

func (d AuthoringDefect) String() string {
	switch d.Kind {
	case DefectAnswerDistribution:
		return fmt.Sprintf("criterion %d answer percentages sum to %.2f, expected 100", d.CriterionID, d.Total)
	case DefectQuestionPercentage:
		return fmt.Sprintf("question percentages sum to %.2f, expected 100", d.Total)
	}
	return string(d.Kind)
}

type Contribution struct {
	CriterionID      uint    `json:"criterion_id"`
	Score            int     `json:"score"`
	AnswerPercentage float64 `json:"answer_percentage"`
	Contribution     float64 `json:"contribution"`
}

type Result struct {
	// Percentage is clamped to [0,100] and not rounded; use Round2 for display.
	Percentage float64 `json:"percentage"`
	// Scoreable is false when the evaluation has no criteria. A zero
	// Percentage with Scoreable true is a genuine 0%.
	Scoreable               bool              `json:"scoreable"`
	TotalQuestionPercentage float64           `json:"total_question_percentage"`
	Normalized              bool              `json:"normalized"`
	Contributions           []Contribution    `json:"contributions,omitempty"`
	Defects                 []AuthoringDefect `json:"defects,omitempty"`
}

// Warnings renders the defects for storage next to a rating.
func (r Result) Warnings() []string {
	if len(r.Defects) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Defects))
	for _, d := range r.Defects {
		out = append(out, d.String())
	}
	return out
}

// Score computes the evaluation percentage for the given answers. Criteria
// without an item contribute nothing; required-answer checks belong to the
// caller (see MissingRequired) and happen before scoring.
func Score(criteria []model.Criterion, items []model.RatingItem) (Result, error) {
	if len(criteria) == 0 {
		return Result{Scoreable: false}, nil
	}

	byID := make(map[uint]model.Criterion, len(criteria))
	res := Result{Scoreable: true}

	for _, c := range criteria {
		if _, dup := byID[c.ID]; dup {
			return Result{}, fmt.Errorf("%w: criterion %d listed twice", ErrMalformedInput, c.ID)
		}
		if invalidPercentage(c.QuestionPercentage) {
			return Result{}, fmt.Errorf("%w: criterion %d question percentage %.2f", ErrMalformedInput, c.ID, c.QuestionPercentage)
		}
		answerTotal := 0.0
		for i, p := range c.StoredPercentages() {
			if invalidPercentage(p) {
				return Result{}, fmt.Errorf("%w: criterion %d answer %d percentage %.2f", ErrMalformedInput, c.ID, i+1, p)
			}
			answerTotal += p
		}
		if !model.SumsToHundred(answerTotal) {
			res.Defects = append(res.Defects, AuthoringDefect{Kind: DefectAnswerDistribution, CriterionID: c.ID, Total: answerTotal})
		}
		byID[c.ID] = c
		res.TotalQuestionPercentage += c.QuestionPercentage
	}

	if !model.SumsToHundred(res.TotalQuestionPercentage) {
		res.Defects = append(res.Defects, AuthoringDefect{Kind: DefectQuestionPercentage, Total: res.TotalQuestionPercentage})
	}

	answered := make(map[uint]model.RatingItem, len(items))
	for _, it := range items {
		if _, ok := byID[it.CriterionID]; !ok {
			return Result{}, fmt.Errorf("%w: item answers criterion %d which is not part of the evaluation", ErrMalformedInput, it.CriterionID)
		}
		if _, dup := answered[it.CriterionID]; dup {
			return Result{}, fmt.Errorf("%w: criterion %d answered twice", ErrMalformedInput, it.CriterionID)
		}
		answered[it.CriterionID] = it
	}

	sum := 0.0
	for _, c := range criteria {
		it, ok := answered[c.ID]
		if !ok {
			continue
		}
		pct, ok := c.AnswerPercentage(it.Score)
		if !ok {
			return Result{}, fmt.Errorf("%w: criterion %d score %d outside 1-%d", ErrMalformedInput, c.ID, it.Score, model.LikertPoints)
		}
		contribution := pct * c.QuestionPercentage / 100
		sum += contribution
		res.Contributions = append(res.Contributions, Contribution{
			CriterionID:      c.ID,
			Score:            it.Score,
			AnswerPercentage: pct,
			Contribution:     contribution,
		})
	}

	switch {
	case res.TotalQuestionPercentage <= 0:
		sum = 0
	case !model.SumsToHundred(res.TotalQuestionPercentage):
		sum = sum / (res.TotalQuestionPercentage / 100)
		res.Normalized = true
	}

	res.Percentage = clamp(sum)
	return res, nil
}

// MissingRequired lists the required criteria the items do not answer, in
// criteria order. A rating with missing required answers is incomplete and
// must not be submitted.
func MissingRequired(criteria []model.Criterion, items []model.RatingItem) []uint {
	answered := make(map[uint]bool, len(items))
	for _, it := range items {
		answered[it.CriterionID] = true
	}
	var missing []uint
	for _, c := range criteria {
		if c.IsRequired && !answered[c.ID] {
			missing = append(missing, c.ID)
		}
	}
	return missing
}

// Round2 rounds to two decimals, the precision scores are displayed and stored with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func invalidPercentage(p float64) bool {
	return math.IsNaN(p) || math.IsInf(p, 0) || p < 0
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
