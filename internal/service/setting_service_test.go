package service

import (
	"context"
	"testing"

	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/settings"
)

func TestSettingServiceDefaults(t *testing.T) {
	h := newHarness(t)
	snap, err := h.settings.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Version != 0 || snap.RecommendationThreshold != 70 || snap.RecommendedBookDiscount != nil || snap.DisplayBoundary != 70 {
		t.Errorf("default snapshot = %+v", snap)
	}
}

func TestSettingServiceUpdate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	got, err := h.settings.Update(ctx, settings.KeyRecommendationThreshold, " 60 ")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Value != "60" || got.Version != 1 {
		t.Errorf("updated row = %+v, want value 60 version 1", got)
	}
	h.setSetting(t, settings.KeyRecommendedBookDiscount, "25")

	snap, err := h.settings.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Version != 2 || snap.RecommendationThreshold != 60 || snap.RecommendedBookDiscount == nil || *snap.RecommendedBookDiscount != 25 {
		t.Errorf("snapshot = %+v", snap)
	}

	h.setSetting(t, settings.KeyRecommendedBookDiscount, "")
	snap, _ = h.settings.Snapshot(ctx)
	if snap.RecommendedBookDiscount != nil || snap.Version != 3 {
		t.Errorf("cleared snapshot = %+v", snap)
	}

	list, err := h.settings.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list.Settings) != 2 || list.Snapshot.Version != 3 {
		t.Errorf("List = %+v", list)
	}
}

func TestSettingServiceUpdateRejects(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name  string
		key   string
		value string
		code  apperr.Code
	}{
		{"unknown key", "theme", "dark", apperr.CodeNotFound},
		{"not a number", settings.KeyRecommendationThreshold, "high", apperr.CodeInvalid},
		{"above 100", settings.KeyRecommendationThreshold, "120", apperr.CodeInvalid},
		{"negative", settings.KeyRecommendedBookDiscount, "-5", apperr.CodeInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.settings.Update(context.Background(), tt.key, tt.value)
			assertCode(t, err, tt.code)
		})
	}

	snap, _ := h.settings.Snapshot(context.Background())
	if snap.Version != 0 {
		t.Errorf("rejected updates bumped version to %d", snap.Version)
	}
}
