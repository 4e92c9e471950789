package shared

import "aparthotel-booking/internal/pkg/errs"

// Cross-cutting usecase failures. Commands and queries mark lower-level errors
// with these so the handler layer can classify them without knowing the cause.
var (
	ErrValidation         = errs.New("validation failed")
	ErrStorageUnavailable = errs.New("storage unavailable")
)
