package service

import (
	"context"
	"testing"

	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
)

func TestEvaluationServiceCreateValidation(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name     string
		criteria []dto.CriterionCreateDTO
	}{
		{"answer percentages sum to 90", []dto.CriterionCreateDTO{criterionReq(1, 100, true, 0, 20, 20, 20, 30)}},
		{"question percentages sum to 90", []dto.CriterionCreateDTO{
			criterionReq(1, 50, true, distFirst...),
			criterionReq(2, 40, true, distFirst...),
		}},
		{"order used twice", []dto.CriterionCreateDTO{
			criterionReq(1, 50, true, distFirst...),
			criterionReq(1, 50, true, distFirst...),
		}},
		{"four answers", []dto.CriterionCreateDTO{criterionReq(1, 100, true, 25, 25, 25, 25)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.evaluations.CreateEvaluation(context.Background(), dto.EvaluationCreateDTO{Title: tt.name, Criteria: tt.criteria})
			assertCode(t, err, apperr.CodeInvalid)
			if e, _ := apperr.As(err); len(e.Details) == 0 {
				t.Errorf("expected details for %q", tt.name)
			}
		})
	}
}

func TestEvaluationServiceCreateStoresDistribution(t *testing.T) {
	h := newHarness(t)
	ev := h.activeEvaluation(t, "Reading stamina", twoCriteria()...)

	if ev.Status != string(model.EvaluationActive) || len(ev.Criteria) != 2 {
		t.Fatalf("evaluation = %+v", ev)
	}
	c := ev.Criteria[0]
	got := []float64{c.Answer1Percentage, c.Answer2Percentage, c.Answer3Percentage, c.Answer4Percentage, c.Answer5Percentage}
	want := distFirst
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("answer%d percentage = %v, want %v", i+1, got[i], want[i])
		}
	}

	_, err := h.evaluations.CreateEvaluation(context.Background(), dto.EvaluationCreateDTO{Title: "Reading stamina", Criteria: twoCriteria()})
	assertCode(t, err, apperr.CodeConflict)
}

func TestEvaluationServiceVisibility(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	draft, err := h.evaluations.CreateEvaluation(ctx, dto.EvaluationCreateDTO{Title: "Unreleased", Criteria: twoCriteria()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if draft.Status != string(model.EvaluationDraft) {
		t.Fatalf("default status = %s, want DRAFT", draft.Status)
	}

	_, err = h.evaluations.GetEvaluation(ctx, draft.ID)
	assertCode(t, err, apperr.CodeNotFound)
	list, _ := h.evaluations.ListActive(ctx)
	if len(list) != 0 {
		t.Fatalf("drafts listed: %+v", list)
	}

	if _, err := h.evaluations.UpdateStatus(ctx, draft.ID, model.EvaluationActive); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	list, _ = h.evaluations.ListActive(ctx)
	if len(list) != 1 || list[0].CriterionCount != 2 {
		t.Fatalf("active list = %+v", list)
	}
	if _, err := h.evaluations.GetEvaluation(ctx, draft.ID); err != nil {
		t.Errorf("GetEvaluation after activation: %v", err)
	}

	_, err = h.evaluations.UpdateStatus(ctx, 999, model.EvaluationActive)
	assertCode(t, err, apperr.CodeNotFound)
	_, err = h.evaluations.UpdateStatus(ctx, draft.ID, model.EvaluationStatus("PAUSED"))
	assertCode(t, err, apperr.CodeInvalid)
}
