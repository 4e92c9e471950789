package api

import (
	"net/http"

	reqdto "aparthotel-booking/internal/handler/dto/request"
	resdto "aparthotel-booking/internal/handler/dto/response"
	"aparthotel-booking/internal/handler/httperr"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApartmentHandler struct {
	units        queries.UnitQueries
	availability queries.AvailabilityQueries
}

func NewApartmentHandler(units queries.UnitQueries, availability queries.AvailabilityQueries) *ApartmentHandler {
	return &ApartmentHandler{units: units, availability: availability}
}

// @Summary List apartments
// @Tags apartments
// @Produce json
// @Success 200 {array} resdto.ApartmentResponse
// @Router /apartments [get]
func (h *ApartmentHandler) List(c *gin.Context) {
	views, err := h.units.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromUnitViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get apartment
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} resdto.ApartmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /apartments/{id} [get]
func (h *ApartmentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.units.Get(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromUnitView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Check availability
// @Description Public. Degraded is true when bookings could not be consulted; available is then false.
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Param checkIn query string true "RFC3339 or YYYY-MM-DD"
// @Param checkOut query string true "RFC3339 or YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /apartments/{id}/availability [get]
func (h *ApartmentHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}
	checkIn, checkOut, err := query.Range()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, err.Error())
		return
	}

	view, err := h.availability.Check(c.Request.Context(), id, checkIn, checkOut)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
