package http_voting

import (
	"log/slog"
	"net/http"

	http_common "github.com/Jaymin100/BooHoo/internal/delivery/http/common"
	"github.com/Jaymin100/BooHoo/internal/model"
	usecase_vote "github.com/Jaymin100/BooHoo/internal/usecase/vote"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	usecase *usecase_vote.Usecase
	logger  *slog.Logger
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_vote.Usecase, opts ...Option) *Controller {
	c := &Controller{
		usecase: usecase,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/costumes/:code", c.costumes)
	router.POST("/submit_votes", c.vote)
	router.GET("/leaderboard/:code", c.leaderboard)
	router.GET("/results/:code", c.history)
}

type CostumesResponseDTO struct {
	Costumes []model.CostumeView `json:"costumes"`
}

// Costumes lists the room's costumes
// @Summary List costumes
// @Description Costumes in join order with current vote totals. player_name is null if the owner is gone.
// @Tags Voting
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} CostumesResponseDTO "Costumes"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /costumes/{code} [get]
func (c *Controller) costumes(ctx *gin.Context) {
	costumes, err := c.usecase.Costumes(ctx, ctx.Param("code"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to list costumes", err)
		return
	}

	ctx.JSON(http.StatusOK, CostumesResponseDTO{Costumes: costumes})
}

type VoteRequestDTO struct {
	RoomCode string         `json:"room_code" binding:"required" example:"123456"`
	PlayerID string         `json:"player_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Votes    map[string]int `json:"votes"`
}

type VoteResponseDTO struct {
	Success     bool `json:"success" example:"true"`
	AllFinished bool `json:"all_finished" example:"false"`
}

// Vote submits a player's ballot
// @Summary Submit votes
// @Description Adds each value to the matching costume's total and marks the player as done.
// @Description Unknown costume IDs are ignored. When every player is done the room finishes.
// @Tags Voting
// @Accept json
// @Produce json
// @Param request body VoteRequestDTO true "Ballot"
// @Success 200 {object} VoteResponseDTO "Votes accepted"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /submit_votes [post]
func (c *Controller) vote(ctx *gin.Context) {
	var req VoteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, http_common.MsgInvalidRequest)
		return
	}

	outcome, err := c.usecase.Vote(ctx, req.RoomCode, req.PlayerID, req.Votes)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to submit votes", err)
		return
	}

	ctx.JSON(http.StatusOK, VoteResponseDTO{
		Success:     true,
		AllFinished: outcome.AllFinished,
	})
}

type LeaderboardResponseDTO struct {
	Leaderboard []model.LeaderboardRow `json:"leaderboard"`
}

// Leaderboard ranks costumes by votes
// @Summary Leaderboard
// @Description Highest total first; ties keep join order
// @Tags Voting
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} LeaderboardResponseDTO "Leaderboard"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /leaderboard/{code} [get]
func (c *Controller) leaderboard(ctx *gin.Context) {
	rows, err := c.usecase.Leaderboard(ctx, ctx.Param("code"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get leaderboard", err)
		return
	}

	ctx.JSON(http.StatusOK, LeaderboardResponseDTO{Leaderboard: rows})
}

type HistoryResponseDTO struct {
	Results []model.ArchivedResult `json:"results"`
}

// History returns archived results
// @Summary Archived results
// @Description Final standings of finished games played under the code, latest first
// @Tags Voting
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} HistoryResponseDTO "Archived results"
// @Failure 404 {object} http_common.ErrorResponse "Nothing archived for the code"
// @Failure 503 {object} http_common.ErrorResponse "Archive not configured"
// @Router /results/{code} [get]
func (c *Controller) history(ctx *gin.Context) {
	results, err := c.usecase.History(ctx, ctx.Param("code"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get results", err)
		return
	}

	ctx.JSON(http.StatusOK, HistoryResponseDTO{Results: results})
}
