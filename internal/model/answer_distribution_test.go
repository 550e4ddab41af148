package model

import (
	"errors"
	"testing"
)

func TestNewAnswerDistribution(t *testing.T) {
	testCases := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"linear", []float64{0, 25, 50, 75, 100}, true}, // sums to 250
		{"sums to hundred", []float64{0, 10, 20, 30, 40}, false},
		{"all on top answer", []float64{0, 0, 0, 0, 100}, false},
		{"float noise tolerated", []float64{33.333, 33.333, 33.334, 0, 0}, false},
		{"negative", []float64{-10, 10, 20, 30, 50}, true},
		{"above hundred", []float64{0, 0, 0, 0, 101}, true},
		{"too few", []float64{50, 50}, true},
		{"too many", []float64{20, 20, 20, 20, 10, 10}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAnswerDistribution(tc.values...)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDistribution) {
					t.Fatalf("expected ErrInvalidDistribution, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCriterionSetDistribution(t *testing.T) {
	d, err := NewAnswerDistribution(0, 10, 20, 30, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var c Criterion
	c.SetDistribution(d)

	for score, want := range map[int]float64{1: 0, 2: 10, 3: 20, 4: 30, 5: 40} {
		got, ok := c.AnswerPercentage(score)
		if !ok || got != want {
			t.Fatalf("AnswerPercentage(%d)=%v,%v want %v,true", score, got, ok, want)
		}
	}
	if _, ok := c.AnswerPercentage(0); ok {
		t.Fatalf("score 0 must be rejected")
	}
	if _, ok := c.AnswerPercentage(6); ok {
		t.Fatalf("score 6 must be rejected")
	}
}

func TestBookLinkedEvaluationsDeduplicates(t *testing.T) {
	one, two := uint(1), uint(2)
	b := Book{Categories: []BookCategory{
		{ID: 10, EvaluationID: &one, Evaluation: &Evaluation{ID: 1, Title: "Focus"}},
		{ID: 11},
		{ID: 12, EvaluationID: &two},
		{ID: 13, EvaluationID: &one},
	}}

	evs := b.LinkedEvaluations()
	if len(evs) != 2 {
		t.Fatalf("expected 2 evaluations, got %d", len(evs))
	}
	if evs[0].ID != 1 || evs[0].Title != "Focus" || evs[1].ID != 2 {
		t.Fatalf("unexpected evaluations: %+v", evs)
	}
}
