package http_common

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	usecase_room "github.com/Jaymin100/BooHoo/internal/usecase/room"
	usecase_vote "github.com/Jaymin100/BooHoo/internal/usecase/vote"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"error" example:"Room not found"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func OK() SuccessResponse {
	return SuccessResponse{Success: true}
}

const (
	MsgRoomNotFound   = "Room not found"
	MsgInvalidRequest = "invalid request format"
	MsgEmptyName      = "player_name must not be empty"
	MsgRateLimited    = "Too many requests, please try again later"
	MsgUnavailable    = "unavailable"
	MsgInternal       = "internal error"
)

func BadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// Fail writes the response for a use case error and logs it.
func Fail(ctx *gin.Context, logger *slog.Logger, msg string, err error) {
	status, body := resolve(err)

	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()))
	} else {
		logger.Debug(msg, slog.String("error", err.Error()), slog.Int("status", status))
	}

	var rlErr *usecase_room.RateLimitError
	if errors.As(err, &rlErr) {
		ctx.Header("Retry-After", strconv.Itoa(retryAfterSeconds(rlErr)))
	}

	ctx.AbortWithStatusJSON(status, body)
}

func resolve(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, usecase_room.ErrResourceNotFound):
		return http.StatusNotFound, ErrorResponse{Message: MsgRoomNotFound}
	case errors.Is(err, usecase_room.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Message: MsgEmptyName}
	case errors.Is(err, usecase_room.ErrRateLimited):
		return http.StatusTooManyRequests, ErrorResponse{Message: MsgRateLimited}
	case errors.Is(err, usecase_vote.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{Message: MsgUnavailable}
	}
	return http.StatusInternalServerError, ErrorResponse{Message: MsgInternal}
}

// Whole seconds, rounded up, never below one.
func retryAfterSeconds(err *usecase_room.RateLimitError) int {
	secs := int(math.Ceil(err.RetryAfter.Seconds()))
	return max(secs, 1)
}
