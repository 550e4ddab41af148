package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shelfscore/internal/controller"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/service"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	evaluationService     service.EvaluationService
	ratingService         service.RatingService
	recommendationService service.RecommendationService
	catalogService        service.CatalogService
	checkoutService       service.CheckoutService
}

func NewUserController(
	evaluationService service.EvaluationService,
	ratingService service.RatingService,
	recommendationService service.RecommendationService,
	catalogService service.CatalogService,
	checkoutService service.CheckoutService,
) *UserController {
	return &UserController{
		evaluationService:     evaluationService,
		ratingService:         ratingService,
		recommendationService: recommendationService,
		catalogService:        catalogService,
		checkoutService:       checkoutService,
	}
}

// RegisterRoutes mounts the user endpoints on group (normally /api/v1).
func (c *UserController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/evaluations", c.ListEvaluations)
	group.GET("/evaluations/:evaluation_id", c.GetEvaluation)
	group.POST("/evaluations/:evaluation_id/ratings", c.StartRating)

	group.GET("/ratings/:rating_id", c.GetRating)
	group.PUT("/ratings/:rating_id/items", c.SaveAnswers)
	group.POST("/ratings/:rating_id/submit", c.SubmitRating)
	group.GET("/ratings/:rating_id/recommendations", c.GetRecommendations)
	group.GET("/my-ratings", c.ListMyRatings)

	group.GET("/books/:book_id", c.GetBook)
	group.POST("/books/:book_id/quote", c.QuoteBook)
	group.POST("/books/:book_id/purchases", c.PlacePurchase)
	group.POST("/purchases/:reference/complete", c.CompletePurchase)
}

// ListEvaluations godoc
// @Summary (User) List evaluations open for rating
// @Tags User - Evaluations & Ratings
// @Produce json
// @Success 200 {array} dto.EvaluationSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /evaluations [get]
func (c *UserController) ListEvaluations(ctx *gin.Context) {
	evaluations, err := c.evaluationService.ListActive(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "User ListEvaluations failed")
		return
	}
	ctx.JSON(http.StatusOK, evaluations)
}

// GetEvaluation godoc
// @Summary (User) Get an evaluation with its criteria
// @Tags User - Evaluations & Ratings
// @Produce json
// @Param evaluation_id path int true "Evaluation ID"
// @Success 200 {object} dto.EvaluationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Evaluation ID format"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /evaluations/{evaluation_id} [get]
func (c *UserController) GetEvaluation(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "evaluation_id")
	if !ok {
		return
	}
	resp, err := c.evaluationService.GetEvaluation(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "User GetEvaluation failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartRating godoc
// @Summary (User) Start rating an evaluation
// @Description Opens a draft rating, or returns the user's draft if one is already open.
// @Tags User - Evaluations & Ratings
// @Accept json
// @Produce json
// @Param evaluation_id path int true "Evaluation ID"
// @Param body body dto.RatingStartDTO true "User ID (temporary, until auth)"
// @Success 200 {object} dto.RatingResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Failure 409 {object} dto.ErrorResponse "Evaluation is not active"
// @Router /evaluations/{evaluation_id}/ratings [post]
func (c *UserController) StartRating(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "evaluation_id")
	if !ok {
		return
	}
	var req dto.RatingStartDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.ratingService.StartRating(ctx.Request.Context(), req.UserID, id)
	if err != nil {
		controller.RespondError(ctx, err, "User StartRating failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetRating godoc
// @Summary (User) Get a rating
// @Tags User - Evaluations & Ratings
// @Produce json
// @Param rating_id path int true "Rating ID"
// @Param user_id query int true "User ID (temporary, until auth)"
// @Success 200 {object} dto.RatingResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Rating belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Rating not found"
// @Router /ratings/{rating_id} [get]
func (c *UserController) GetRating(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "rating_id")
	if !ok {
		return
	}
	userID, ok := controller.RequiredUserID(ctx)
	if !ok {
		return
	}
	resp, err := c.ratingService.GetRating(ctx.Request.Context(), id, userID)
	if err != nil {
		controller.RespondError(ctx, err, "User GetRating failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SaveAnswers godoc
// @Summary (User) Save answers on a draft rating
// @Description Answering a criterion again overwrites the earlier answer.
// @Tags User - Evaluations & Ratings
// @Accept json
// @Produce json
// @Param rating_id path int true "Rating ID"
// @Param body body dto.RatingItemsSaveDTO true "Answers"
// @Success 200 {object} dto.RatingResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answers"
// @Failure 403 {object} dto.ErrorResponse "Rating belongs to another user"
// @Failure 409 {object} dto.ErrorResponse "Rating already submitted"
// @Router /ratings/{rating_id}/items [put]
func (c *UserController) SaveAnswers(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "rating_id")
	if !ok {
		return
	}
	var req dto.RatingItemsSaveDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.ratingService.SaveAnswers(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "User SaveAnswers failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitRating godoc
// @Summary (User) Submit a rating for scoring
// @Tags User - Evaluations & Ratings
// @Accept json
// @Produce json
// @Param rating_id path int true "Rating ID"
// @Param body body dto.RatingSubmitDTO true "User ID (temporary, until auth)"
// @Success 200 {object} dto.RatingResponseDTO
// @Failure 409 {object} dto.ErrorResponse "Rating already submitted"
// @Failure 422 {object} dto.ErrorResponse "Required criteria unanswered; details lists their ids"
// @Router /ratings/{rating_id}/submit [post]
func (c *UserController) SubmitRating(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "rating_id")
	if !ok {
		return
	}
	var req dto.RatingSubmitDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.ratingService.SubmitRating(ctx.Request.Context(), id, req.UserID)
	if err != nil {
		controller.RespondError(ctx, err, "User SubmitRating failed")
		return
	}
	log.Info().Uint("ratingID", id).Uint("userID", req.UserID).Msg("User submitted rating")
	ctx.JSON(http.StatusOK, resp)
}

// GetRecommendations godoc
// @Summary (User) Ranked book recommendations for a submitted rating
// @Tags User - Recommendations
// @Produce json
// @Param rating_id path int true "Rating ID"
// @Param user_id query int true "User ID (temporary, until auth)"
// @Success 200 {object} dto.RecommendationsResponseDTO
// @Failure 403 {object} dto.ErrorResponse "Rating belongs to another user"
// @Failure 409 {object} dto.ErrorResponse "Rating not submitted"
// @Router /ratings/{rating_id}/recommendations [get]
func (c *UserController) GetRecommendations(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "rating_id")
	if !ok {
		return
	}
	userID, ok := controller.RequiredUserID(ctx)
	if !ok {
		return
	}
	resp, err := c.recommendationService.ForRating(ctx.Request.Context(), userID, id)
	if err != nil {
		controller.RespondError(ctx, err, "User GetRecommendations failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListMyRatings godoc
// @Summary (User) List the user's ratings
// @Tags User - Evaluations & Ratings
// @Produce json
// @Param user_id query int true "User ID (temporary, until auth)"
// @Param evaluation_id query int false "Only ratings of this evaluation"
// @Success 200 {array} dto.RatingResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Router /my-ratings [get]
func (c *UserController) ListMyRatings(ctx *gin.Context) {
	userID, ok := controller.RequiredUserID(ctx)
	if !ok {
		return
	}
	evaluationID, ok := controller.QueryUint(ctx, "evaluation_id")
	if !ok {
		return
	}
	resp, err := c.ratingService.ListUserRatings(ctx.Request.Context(), userID, evaluationID)
	if err != nil {
		controller.RespondError(ctx, err, "User ListMyRatings failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetBook godoc
// @Summary (User) Get a book
// @Tags User - Checkout
// @Produce json
// @Param book_id path int true "Book ID"
// @Success 200 {object} dto.BookResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /books/{book_id} [get]
func (c *UserController) GetBook(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "book_id")
	if !ok {
		return
	}
	resp, err := c.catalogService.GetBook(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err, "User GetBook failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// QuoteBook godoc
// @Summary (User) Price a book
// @Description Applies the book (or recommended-book) discount, then the coupon. A rejected coupon is reported, not an error.
// @Tags User - Checkout
// @Accept json
// @Produce json
// @Param book_id path int true "Book ID"
// @Param body body dto.CheckoutRequestDTO true "User ID and optional coupon code"
// @Success 200 {object} dto.QuoteResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /books/{book_id}/quote [post]
func (c *UserController) QuoteBook(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "book_id")
	if !ok {
		return
	}
	var req dto.CheckoutRequestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.checkoutService.Quote(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "User QuoteBook failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PlacePurchase godoc
// @Summary (User) Place a purchase at the quoted price
// @Tags User - Checkout
// @Accept json
// @Produce json
// @Param book_id path int true "Book ID"
// @Param body body dto.CheckoutRequestDTO true "User ID and optional coupon code"
// @Success 201 {object} dto.PurchaseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Book not found"
// @Router /books/{book_id}/purchases [post]
func (c *UserController) PlacePurchase(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "book_id")
	if !ok {
		return
	}
	var req dto.CheckoutRequestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.checkoutService.PlacePurchase(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "User PlacePurchase failed")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CompletePurchase godoc
// @Summary (User) Complete payment of a purchase
// @Description Marks the purchase paid and redeems its coupon once. Repeating the call returns the paid purchase.
// @Tags User - Checkout
// @Produce json
// @Param reference path string true "Purchase reference"
// @Success 200 {object} dto.PurchaseResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Purchase not found"
// @Failure 409 {object} dto.ErrorResponse "Coupon no longer valid; purchase stays pending"
// @Router /purchases/{reference}/complete [post]
func (c *UserController) CompletePurchase(ctx *gin.Context) {
	resp, err := c.checkoutService.CompletePurchase(ctx.Request.Context(), ctx.Param("reference"))
	if err != nil {
		controller.RespondError(ctx, err, "User CompletePurchase failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
