package model

import (
	"errors"
	"fmt"
	"math"
)

// LikertPoints is the number of answer options every criterion offers.
const LikertPoints = 5

// PercentageTolerance absorbs float noise when checking that percentages add up to 100.
const PercentageTolerance = 0.01

var ErrInvalidDistribution = errors.New("invalid answer distribution")

// AnswerDistribution is the share of a criterion's own contribution earned for
// each Likert answer. The only way to build one is NewAnswerDistribution, so a
// value in hand always sums to 100.
type AnswerDistribution struct {
	values [LikertPoints]float64
}

func NewAnswerDistribution(percentages ...float64) (AnswerDistribution, error) {
	var d AnswerDistribution
	if len(percentages) != LikertPoints {
		return d, fmt.Errorf("%w: expected %d percentages, got %d", ErrInvalidDistribution, LikertPoints, len(percentages))
	}
	total := 0.0
	for i, p := range percentages {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return d, fmt.Errorf("%w: answer %d percentage %.2f is outside 0-100", ErrInvalidDistribution, i+1, p)
		}
		d.values[i] = p
		total += p
	}
	if !SumsToHundred(total) {
		return AnswerDistribution{}, fmt.Errorf("%w: percentages sum to %.2f, expected 100", ErrInvalidDistribution, total)
	}
	return d, nil
}

func (d AnswerDistribution) Percentages() [LikertPoints]float64 {
	return d.values
}

func SumsToHundred(total float64) bool {
	return math.Abs(total-100) <= PercentageTolerance
}
