package api

import (
	"net/http"

	"aparthotel-booking/internal/domain/reservation"
	reqdto "aparthotel-booking/internal/handler/dto/request"
	"aparthotel-booking/internal/handler/httperr"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/commands"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest     = "Invalid request"
	msgValidationFailed   = "Validation failed"
	msgNotAvailable       = "Apartment is not available for the selected dates"
	msgInvalidTransition  = "Invalid status transition"
	msgForbidden          = "Insufficient permissions"
	msgApartmentNotFound  = "Apartment not found"
	msgBookingNotFound    = "Booking not found"
	msgServiceUnavailable = "Service temporarily unavailable"
	msgInternal           = "Internal server error"
	msgUnauthorized       = "Unauthorized"
)

var errMissingIdentity = errs.New("authenticated identity missing from context")

// abortWithUsecaseError maps usecase errors onto the booking surface's status codes.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, shared.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgValidationFailed, validationDetail(err))
	case errs.Is(err, commands.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, msgNotAvailable, nil)
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, msgInvalidTransition, nil)
	case errs.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, msgForbidden, nil)
	case errs.IsAny(err, commands.ErrUnitNotFound, queries.ErrUnitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgApartmentNotFound, nil)
	case errs.IsAny(err, commands.ErrReservationNotFound, queries.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, msgBookingNotFound, nil)
	case errs.Is(err, shared.ErrStorageUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msgServiceUnavailable, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
	}
}

func abortWithBindingError(c *gin.Context, err error) {
	var detail any
	if fields := reqdto.FieldErrors(err); len(fields) > 0 {
		detail = fields
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, detail)
}

func validationDetail(err error) any {
	var fe *reservation.FieldError
	if errs.As(err, &fe) {
		return httperr.FieldDetail{Field: fe.Field, Reason: fe.Err.Error()}
	}
	return nil
}
