package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/Shelfscore/config"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/cache"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/repository"
	"github.com/lshigami/Shelfscore/internal/testutil"
	"gorm.io/gorm"
)

const epsilon = 0.0001

type harness struct {
	db              *gorm.DB
	now             time.Time
	cache           cache.RecommendationCache
	settings        SettingService
	evaluations     EvaluationService
	ratings         RatingService
	catalog         CatalogService
	coupons         CouponService
	recommendations RecommendationService
	checkout        CheckoutService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{Recommendation: config.Recommendation{DisplayBoundary: 70, Limit: 6}}
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	evaluationRepo := repository.NewEvaluationRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	bookRepo := repository.NewBookRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	recoCache := cache.NewMemoryRecommendationCache()

	settingSvc := NewSettingService(repository.NewSettingRepository(db), cfg)
	ratingSvc := NewRatingService(evaluationRepo, ratingRepo, recoCache).(*ratingService)
	ratingSvc.now = clock
	couponSvc := NewCouponService(couponRepo).(*couponService)
	couponSvc.now = clock
	recoSvc := NewRecommendationService(ratingRepo, bookRepo, settingSvc, recoCache, cfg)
	checkoutSvc := NewCheckoutService(db, bookRepo, couponRepo, repository.NewPurchaseRepository(db), settingSvc, recoSvc).(*checkoutService)
	checkoutSvc.now = clock

	return &harness{
		db:              db,
		now:             now,
		cache:           recoCache,
		settings:        settingSvc,
		evaluations:     NewEvaluationService(evaluationRepo),
		ratings:         ratingSvc,
		catalog:         NewCatalogService(bookRepo, evaluationRepo),
		coupons:         couponSvc,
		recommendations: recoSvc,
		checkout:        checkoutSvc,
	}
}

func criterionReq(order int, questionPct float64, required bool, answers ...float64) dto.CriterionCreateDTO {
	return dto.CriterionCreateDTO{
		Title:              "criterion",
		OrderInEvaluation:  order,
		QuestionPercentage: questionPct,
		IsRequired:         required,
		AnswerPercentages:  answers,
	}
}

// Distributions summing to 100 that keep the 60/40 scenario: answer 4 of
// the first criterion earns 75, answer 3 of the second earns 40.
var (
	distFirst  = []float64{0, 0, 0, 75, 25}
	distSecond = []float64{0, 10, 40, 20, 30}
)

// twoCriteria is the 60/40 evaluation where answers 4 and 3 score 61%.
func twoCriteria() []dto.CriterionCreateDTO {
	return []dto.CriterionCreateDTO{
		criterionReq(1, 60, true, distFirst...),
		criterionReq(2, 40, true, distSecond...),
	}
}

func (h *harness) activeEvaluation(t *testing.T, title string, criteria ...dto.CriterionCreateDTO) *dto.EvaluationResponseDTO {
	t.Helper()
	ev, err := h.evaluations.CreateEvaluation(context.Background(), dto.EvaluationCreateDTO{Title: title, Status: "ACTIVE", Criteria: criteria})
	if err != nil {
		t.Fatalf("create evaluation %s: %v", title, err)
	}
	return ev
}

// submit answers every criterion of ev in order with scores and submits.
func (h *harness) submit(t *testing.T, userID uint, ev *dto.EvaluationResponseDTO, scores ...int) *dto.RatingResponseDTO {
	t.Helper()
	ctx := context.Background()
	r, err := h.ratings.StartRating(ctx, userID, ev.ID)
	if err != nil {
		t.Fatalf("start rating: %v", err)
	}
	req := dto.RatingItemsSaveDTO{UserID: userID}
	for i, s := range scores {
		req.Items = append(req.Items, dto.RatingItemDTO{CriterionID: ev.Criteria[i].ID, Score: s})
	}
	if _, err := h.ratings.SaveAnswers(ctx, r.ID, req); err != nil {
		t.Fatalf("save answers: %v", err)
	}
	submitted, err := h.ratings.SubmitRating(ctx, r.ID, userID)
	if err != nil {
		t.Fatalf("submit rating: %v", err)
	}
	return submitted
}

func (h *harness) category(t *testing.T, name string, evaluationID *uint) *dto.CategoryResponseDTO {
	t.Helper()
	c, err := h.catalog.CreateCategory(context.Background(), dto.CategoryCreateDTO{Name: name, EvaluationID: evaluationID})
	if err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func (h *harness) book(t *testing.T, title string, price float64, discount *float64, categoryIDs ...uint) *dto.BookResponseDTO {
	t.Helper()
	b, err := h.catalog.CreateBook(context.Background(), dto.BookCreateDTO{Title: title, Price: price, DiscountPercentage: discount, CategoryIDs: categoryIDs})
	if err != nil {
		t.Fatalf("create book %s: %v", title, err)
	}
	return b
}

func (h *harness) setSetting(t *testing.T, key, value string) {
	t.Helper()
	if _, err := h.settings.Update(context.Background(), key, value); err != nil {
		t.Fatalf("update %s: %v", key, err)
	}
}

func assertCode(t *testing.T, err error, want apperr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := apperr.CodeOf(err); got != want {
		t.Fatalf("error code = %s, want %s (err: %v)", got, want, err)
	}
}

func ptr[T any](v T) *T { return &v }
