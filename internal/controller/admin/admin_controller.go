package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shelfscore/internal/controller"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/lshigami/Shelfscore/internal/model"
	"github.com/lshigami/Shelfscore/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminController struct {
	evaluationService service.EvaluationService
	catalogService    service.CatalogService
	couponService     service.CouponService
	settingService    service.SettingService
}

func NewAdminController(
	evaluationService service.EvaluationService,
	catalogService service.CatalogService,
	couponService service.CouponService,
	settingService service.SettingService,
) *AdminController {
	return &AdminController{
		evaluationService: evaluationService,
		catalogService:    catalogService,
		couponService:     couponService,
		settingService:    settingService,
	}
}

// RegisterRoutes mounts the admin endpoints on group (normally /api/v1/admin).
func (c *AdminController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/evaluations", c.CreateEvaluation)
	group.PATCH("/evaluations/:evaluation_id/status", c.UpdateEvaluationStatus)
	group.POST("/categories", c.CreateCategory)
	group.POST("/books", c.CreateBook)
	group.POST("/coupons", c.CreateCoupon)
	group.GET("/coupons/:code", c.GetCoupon)
	group.GET("/settings", c.GetSettings)
	group.PUT("/settings/:key", c.UpdateSetting)
}

// CreateEvaluation godoc
// @Summary (Admin) Create an evaluation
// @Description Admin authors an evaluation with all its criteria. Every criterion lists five answer percentages summing to 100 and question percentages must sum to 100.
// @Tags Admin - Evaluations
// @Accept json
// @Produce json
// @Param evaluation body dto.EvaluationCreateDTO true "Evaluation with criteria"
// @Success 201 {object} dto.EvaluationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Title already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/evaluations [post]
func (c *AdminController) CreateEvaluation(ctx *gin.Context) {
	var req dto.EvaluationCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.evaluationService.CreateEvaluation(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Admin CreateEvaluation failed")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateEvaluationStatus godoc
// @Summary (Admin) Change an evaluation's status
// @Tags Admin - Evaluations
// @Accept json
// @Produce json
// @Param evaluation_id path int true "Evaluation ID"
// @Param status body dto.EvaluationStatusUpdateDTO true "New status"
// @Success 200 {object} dto.EvaluationResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Evaluation not found"
// @Router /admin/evaluations/{evaluation_id}/status [patch]
func (c *AdminController) UpdateEvaluationStatus(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "evaluation_id")
	if !ok {
		return
	}
	var req dto.EvaluationStatusUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.evaluationService.UpdateStatus(ctx.Request.Context(), id, model.EvaluationStatus(req.Status))
	if err != nil {
		controller.RespondError(ctx, err, "Admin UpdateEvaluationStatus failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateCategory godoc
// @Summary (Admin) Create a book category
// @Description A category may be linked to one evaluation; books in it are matched against that evaluation.
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param category body dto.CategoryCreateDTO true "Category"
// @Success 201 {object} dto.CategoryResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Linked evaluation not found"
// @Failure 409 {object} dto.ErrorResponse "Name already used"
// @Router /admin/categories [post]
func (c *AdminController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateCategory(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Admin CreateCategory failed")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateBook godoc
// @Summary (Admin) Create a book
// @Tags Admin - Catalog
// @Accept json
// @Produce json
// @Param book body dto.BookCreateDTO true "Book with category ids"
// @Success 201 {object} dto.BookResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data or unknown categories"
// @Router /admin/books [post]
func (c *AdminController) CreateBook(ctx *gin.Context) {
	var req dto.BookCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.catalogService.CreateBook(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Admin CreateBook failed")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateCoupon godoc
// @Summary (Admin) Create a coupon
// @Tags Admin - Coupons
// @Accept json
// @Produce json
// @Param coupon body dto.CouponCreateDTO true "Coupon"
// @Success 201 {object} dto.CouponResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 409 {object} dto.ErrorResponse "Code already used"
// @Router /admin/coupons [post]
func (c *AdminController) CreateCoupon(ctx *gin.Context) {
	var req dto.CouponCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.couponService.CreateCoupon(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err, "Admin CreateCoupon failed")
		return
	}
	log.Info().Str("code", resp.Code).Msg("Admin created coupon")
	ctx.JSON(http.StatusCreated, resp)
}

// GetCoupon godoc
// @Summary (Admin) Get a coupon by code
// @Tags Admin - Coupons
// @Produce json
// @Param code path string true "Coupon code"
// @Success 200 {object} dto.CouponResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Coupon not found"
// @Router /admin/coupons/{code} [get]
func (c *AdminController) GetCoupon(ctx *gin.Context) {
	resp, err := c.couponService.GetCoupon(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, err, "Admin GetCoupon failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSettings godoc
// @Summary (Admin) Show global settings
// @Description Returns the stored rows and the snapshot the pipeline currently uses.
// @Tags Admin - Settings
// @Produce json
// @Success 200 {object} dto.SettingsResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/settings [get]
func (c *AdminController) GetSettings(ctx *gin.Context) {
	resp, err := c.settingService.List(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err, "Admin GetSettings failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateSetting godoc
// @Summary (Admin) Update a global setting
// @Description Known keys are recommendation_threshold and recommended_book_discount. Values are percentages; an empty value clears the setting.
// @Tags Admin - Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param value body dto.SettingUpdateDTO true "New value"
// @Success 200 {object} dto.SettingResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Value is not a percentage"
// @Failure 404 {object} dto.ErrorResponse "Unknown key"
// @Router /admin/settings/{key} [put]
func (c *AdminController) UpdateSetting(ctx *gin.Context) {
	var req dto.SettingUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	resp, err := c.settingService.Update(ctx.Request.Context(), ctx.Param("key"), req.Value)
	if err != nil {
		controller.RespondError(ctx, err, "Admin UpdateSetting failed")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
