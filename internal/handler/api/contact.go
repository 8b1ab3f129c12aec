package api

import (
	"net/http"

	reqdto "party-rental/internal/handler/dto/request"
	resdto "party-rental/internal/handler/dto/response"
	"party-rental/internal/handler/httperr"
	"party-rental/internal/usecase/commands"
	"party-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
	q    queries.ContactQueries
}

func NewContactHandler(cmds commands.ContactCommands, q queries.ContactQueries) *ContactHandler {
	return &ContactHandler{cmds: cmds, q: q}
}

// @Summary Submit contact form
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateContactRequest true "Contact form"
// @Success 201 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /contacts [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Submit(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromContactView(view))
}

// @Summary List contact inquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "new, read or archived"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ContactListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	var q reqdto.ListContactsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), queries.ContactListInput{
		Status: q.Status,
		After:  q.Cursor,
		Limit:  q.Limit,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContactPage(page))
}

// @Summary Change inquiry status
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} resdto.ContactResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/contacts/{id}/status [patch]
func (h *ContactHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromContactView(view))
}
