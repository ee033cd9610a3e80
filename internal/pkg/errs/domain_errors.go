package errs

// Sentinels shared across the command and query layers. Both sides alias
// these so errors.Is matches regardless of which layer produced the error,
// and the handlers can map them to HTTP statuses in one place.
var (
	// Hotel errors
	ErrHotelNotFound = New("hotel not found")

	// Booking errors
	ErrBookingNotFound = New("booking not found")
	ErrBookingAccess   = New("booking access denied")

	// Review errors
	ErrReviewNotFound = New("review not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
