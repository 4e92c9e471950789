package api

import (
	"net/http"

	reqdto "aparthotel-booking/internal/handler/dto/request"
	resdto "aparthotel-booking/internal/handler/dto/response"
	"aparthotel-booking/internal/handler/httperr"
	"aparthotel-booking/internal/handler/middleware"
	"aparthotel-booking/internal/usecase/commands"
	"aparthotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewBookingHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Books an apartment for the authenticated caller. Starts as pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, msgUnauthorized, nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	booking, err := resdto.FromReservationView(result.Reservation)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		ID:           booking.ID,
		Booking:      booking,
		Notification: resdto.FromNotificationReport(result.Notification),
	})
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings/mine [get]
func (h *BookingHandler) Mine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, msgUnauthorized, nil)
		return
	}

	views, err := h.q.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeList(c, views)
}

// @Summary List bookings
// @Description Operator listing, newest first. Every matching row is returned.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Param unitId query string false "Apartment ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindingError(c, err)
		return
	}

	views, err := h.q.List(c.Request.Context(), query.ToFilter())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.writeList(c, views)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update booking status
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, msgUnauthorized, nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	actor := commands.Actor{UserID: userID, Role: role}
	if err := h.cmds.SetStatus(c.Request.Context(), id, req.Status, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) writeList(c *gin.Context, views []*queries.ReservationView) {
	res, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
