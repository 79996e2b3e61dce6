package http_room

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	http_common "github.com/Jaymin100/BooHoo/internal/delivery/http/common"
	"github.com/Jaymin100/BooHoo/internal/model"
	usecase_room "github.com/Jaymin100/BooHoo/internal/usecase/room"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 320
	minQRSize     = 128
	maxQRSize     = 1024
)

type Controller struct {
	usecase   *usecase_room.Usecase
	logger    *slog.Logger
	publicURL string
}

type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithPublicURL sets the frontend base that room QR codes point at.
func WithPublicURL(publicURL string) Option {
	return func(c *Controller) {
		c.publicURL = publicURL
	}
}

func New(usecase *usecase_room.Usecase, opts ...Option) *Controller {
	c := &Controller{
		usecase:   usecase,
		logger:    slog.Default(),
		publicURL: "http://localhost:3000",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/create_room", c.book)
	router.POST("/join", c.join)
	router.POST("/verify", c.verify)
	router.POST("/verifiy", c.verify) // path used by released frontends
	router.POST("/start_game/:code", c.start)
	router.DELETE("/delete_room/:code", c.free)

	rooms := router.Group("/room/:code")
	{
		rooms.GET("", c.summary)
		rooms.GET("/qr", c.qr)
	}
}

type BookResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	RoomCode string `json:"room_code" example:"123456"`
}

// Book creates a new room
// @Summary Create room
// @Description Creates an empty room in the waiting state. Limited per client address.
// @Tags Rooms
// @Produce json
// @Success 200 {object} BookResponseDTO "Room created"
// @Failure 429 {object} http_common.ErrorResponse "Too many rooms created from this address"
// @Header 429 {integer} Retry-After "Seconds until a new room may be created"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /create_room [post]
func (c *Controller) book(ctx *gin.Context) {
	code, err := c.usecase.Book(ctx, ctx.ClientIP())
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to book room", err)
		return
	}

	ctx.JSON(http.StatusOK, BookResponseDTO{
		Success:  true,
		RoomCode: code,
	})
}

type JoinRequestDTO struct {
	RoomCode   string `json:"room_code" binding:"required" example:"123456"`
	PlayerName string `json:"player_name" example:"Alice"`
	ImageData  string `json:"image_data" example:"data:image/png;base64,iVBORw0KGgo="`
}

type JoinResponseDTO struct {
	Success  bool   `json:"success" example:"true"`
	PlayerID string `json:"player_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IsHost   bool   `json:"is_host" example:"true"`
}

// Join adds a player to a room
// @Summary Join room
// @Description Adds a player and their costume. The first player to join becomes host.
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body JoinRequestDTO true "Player data"
// @Success 200 {object} JoinResponseDTO "Player joined"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request or empty name"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /join [post]
func (c *Controller) join(ctx *gin.Context) {
	var req JoinRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, http_common.MsgInvalidRequest)
		return
	}

	res, err := c.usecase.Join(ctx, req.RoomCode, req.PlayerName, req.ImageData)
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to join room", err)
		return
	}

	ctx.JSON(http.StatusOK, JoinResponseDTO{
		Success:  true,
		PlayerID: res.PlayerID,
		IsHost:   res.IsHost,
	})
}

// Summary returns room state
// @Summary Room summary
// @Description Returns status, host and players in join order
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} model.RoomSummary "Room summary"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /room/{code} [get]
func (c *Controller) summary(ctx *gin.Context) {
	summary, err := c.usecase.Summary(ctx, ctx.Param("code"))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to get room", err)
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

type VerifyRequestDTO struct {
	RoomCode string `json:"room_code" binding:"required" example:"123456"`
}

// Verify checks that a room exists
// @Summary Verify room code
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body VerifyRequestDTO true "Room code"
// @Success 200 {object} http_common.SuccessResponse "Room exists"
// @Failure 400 {object} http_common.ErrorResponse "Malformed request"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /verify [post]
func (c *Controller) verify(ctx *gin.Context) {
	var req VerifyRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.BadRequest(ctx, http_common.MsgInvalidRequest)
		return
	}

	if err := c.usecase.Verify(ctx, req.RoomCode); err != nil {
		http_common.Fail(ctx, c.logger, "failed to verify room", err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.OK())
}

// Start moves the room to playing
// @Summary Start game
// @Description Moves a waiting room to playing. Has no effect on a room that already started.
// @Tags Game Flow
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} http_common.SuccessResponse "Game started"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /start_game/{code} [post]
func (c *Controller) start(ctx *gin.Context) {
	if err := c.usecase.Start(ctx, ctx.Param("code")); err != nil {
		http_common.Fail(ctx, c.logger, "failed to start game", err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.OK())
}

// Free deletes the room
// @Summary Delete room
// @Tags Rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} http_common.SuccessResponse "Room deleted"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Router /delete_room/{code} [delete]
func (c *Controller) free(ctx *gin.Context) {
	if err := c.usecase.Free(ctx, ctx.Param("code")); err != nil {
		http_common.Fail(ctx, c.logger, "failed to free room", err)
		return
	}

	ctx.JSON(http.StatusOK, http_common.OK())
}

// QR renders the room's join link
// @Summary Room QR code
// @Description PNG QR code of the frontend join link for the room
// @Tags Rooms
// @Produce png
// @Param code path string true "Room code"
// @Param size query int false "Image side in pixels (128..1024)" default(320)
// @Success 200 {file} binary "QR code"
// @Failure 404 {object} http_common.ErrorResponse "Room not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal server error"
// @Router /room/{code}/qr [get]
func (c *Controller) qr(ctx *gin.Context) {
	code := ctx.Param("code")
	if err := c.usecase.Verify(ctx, code); err != nil {
		http_common.Fail(ctx, c.logger, "failed to render qr", err)
		return
	}

	png, err := qrcode.Encode(c.JoinURL(code), qrcode.Medium, qrSize(ctx.Query("size")))
	if err != nil {
		http_common.Fail(ctx, c.logger, "failed to render qr", err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

func (c *Controller) JoinURL(code model.RoomCode) string {
	return c.publicURL + "/join-room?code=" + url.QueryEscape(code)
}

func qrSize(raw string) int {
	size, err := strconv.Atoi(raw)
	if err != nil {
		return defaultQRSize
	}
	return min(max(size, minQRSize), maxQRSize)
}
