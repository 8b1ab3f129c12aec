package api

import (
	"net/http"

	reqdto "party-rental/internal/handler/dto/request"
	resdto "party-rental/internal/handler/dto/response"
	"party-rental/internal/handler/httperr"
	"party-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog         queries.CatalogQueries
	availability    queries.AvailabilityQueries
	recommendations queries.RecommendationQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries, availability queries.AvailabilityQueries, recommendations queries.RecommendationQueries) *CatalogHandler {
	return &CatalogHandler{
		catalog:         catalog,
		availability:    availability,
		recommendations: recommendations,
	}
}

// @Summary Get catalog
// @Description Machine packages, mixers and extras with current prices
// @Tags catalog
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Failure 500 {object} httperr.Response
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	view, err := h.catalog.GetCatalog(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCatalogView(view))
}

// @Summary Price quote
// @Description Price a machine and mixer selection with fees and tax
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.PriceResponse
// @Failure 400 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	price, err := h.catalog.Quote(c.Request.Context(), queries.QuoteInput{
		MachineType: req.MachineType,
		Mixers:      req.Mixers,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceView(*price))
}

// @Summary Check availability
// @Description Check whether a machine is free on a date
// @Tags catalog
// @Produce json
// @Param machineType query string true "single, double or triple"
// @Param capacity query int true "15, 30 or 45"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability [get]
func (h *CatalogHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.availability.Check(c.Request.Context(), q.MachineType, q.Capacity, q.Date)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Recommend a machine
// @Description Suggest a machine size for a guest count and event date
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.RecommendationRequest true "Recommendation request"
// @Success 200 {object} resdto.RecommendationResponse "null when guestCount is not positive"
// @Failure 400 {object} httperr.Response
// @Router /recommendations [post]
func (h *CatalogHandler) Recommend(c *gin.Context) {
	var req reqdto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.recommendations.Recommend(req.GuestCount, req.RentalDate)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecommendationView(view))
}
