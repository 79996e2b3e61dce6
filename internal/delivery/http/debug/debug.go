package http_debug

import (
	"net/http"

	usecase_room "github.com/Jaymin100/BooHoo/internal/usecase/room"
	"github.com/gin-gonic/gin"
)

// Controller exposes every live room, votes included. Only mount it in
// development.
type Controller struct {
	usecase *usecase_room.Usecase
}

func New(usecase *usecase_room.Usecase) *Controller {
	return &Controller{usecase: usecase}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/debug/rooms", c.rooms)
}

// Rooms dumps all rooms
// @Summary Dump rooms
// @Description Full state of every live room keyed by code
// @Tags Debug
// @Produce json
// @Success 200 {object} map[string]model.RoomSnapshot "Rooms"
// @Router /debug/rooms [get]
func (c *Controller) rooms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.usecase.Snapshots(ctx))
}
