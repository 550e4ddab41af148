// Package controller holds the request helpers shared by the admin and user
// controllers.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Shelfscore/internal/apperr"
	"github.com/lshigami/Shelfscore/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status its apperr code maps to. Unknown
// errors are logged and reported as 500 without leaking internals.
func RespondError(ctx *gin.Context, err error, action string) {
	status := apperr.HTTPStatus(err)
	if e, ok := apperr.As(err); ok {
		log.Warn().Err(err).Str("code", string(e.Code)).Str("path", ctx.FullPath()).Msg(action)
		ctx.JSON(status, dto.ErrorResponse{Error: e.Error(), Code: string(e.Code), Details: e.Details})
		return
	}
	log.Error().Err(err).Str("path", ctx.FullPath()).Msg(action)
	ctx.JSON(status, dto.ErrorResponse{Error: "internal server error", Code: string(apperr.CodeInternal)})
}

// BindJSON binds the request body into req and answers 400 on failure.
func BindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Code: string(apperr.CodeInvalid), Details: []string{err.Error()}})
		return false
	}
	return true
}

// UintParam parses a numeric path parameter and answers 400 when it is not one.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format", Code: string(apperr.CodeInvalid)})
		return 0, false
	}
	return uint(val), true
}

// QueryUint parses an optional numeric query parameter. A missing parameter
// yields nil.
func QueryUint(ctx *gin.Context, name string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format in query", Code: string(apperr.CodeInvalid)})
		return nil, false
	}
	id := uint(val)
	return &id, true
}

// RequiredUserID reads the user_id query parameter, which every user scoped
// read must carry.
func RequiredUserID(ctx *gin.Context) (uint, bool) {
	userID, ok := QueryUint(ctx, "user_id")
	if !ok {
		return 0, false
	}
	if userID == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id query parameter is required", Code: string(apperr.CodeInvalid)})
		return 0, false
	}
	return *userID, true
}
