package api

import (
	"net/http"

	reqdto "party-rental/internal/handler/dto/request"
	resdto "party-rental/internal/handler/dto/response"
	"party-rental/internal/handler/httperr"
	"party-rental/internal/handler/middleware"
	"party-rental/internal/usecase/commands"
	"party-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BlackoutHandler struct {
	cmds commands.BlackoutCommands
	q    queries.BlackoutQueries
}

func NewBlackoutHandler(cmds commands.BlackoutCommands, q queries.BlackoutQueries) *BlackoutHandler {
	return &BlackoutHandler{cmds: cmds, q: q}
}

// @Summary List blackout periods
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/blackouts [get]
func (h *BlackoutHandler) List(c *gin.Context) {
	var q reqdto.ListBlackoutsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), q.From, q.To)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutViews(views))
}

// @Summary Create blackout period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlackoutRequest true "Blackout period"
// @Success 201 {object} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/blackouts [post]
func (h *BlackoutHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	var req reqdto.BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, actorID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlackoutView(view))
}

// @Summary Update blackout period
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Param request body reqdto.BlackoutRequest true "Blackout period"
// @Success 200 {object} resdto.BlackoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/blackouts/{id} [put]
func (h *BlackoutHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.BlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBlackoutView(view))
}

// @Summary Delete blackout period
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Blackout ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/blackouts/{id} [delete]
func (h *BlackoutHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
