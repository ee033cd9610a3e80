package commands

import (
	"context"
	"encoding/json"

	dombooking "hotelhub/internal/domain/booking"
	"hotelhub/internal/infra"
	"hotelhub/internal/pkg/clock"
	"hotelhub/internal/pkg/errs"
	"hotelhub/internal/usecase/queries"
	"hotelhub/internal/usecase/shared"

	"github.com/google/uuid"
)

// Aliased to the shared sentinels so errors.Is matches across layers.
var (
	ErrHotelNotFound           = errs.ErrHotelNotFound
	ErrDomainValidation        = errs.ErrDomainValidation
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type CreateBookingRequest struct {
	HotelID         uuid.UUID
	CheckIn         string
	CheckOut        string
	Rooms           int
	Guests          int
	SpecialRequests string
}

type CreateBookingResult struct {
	Booking *queries.BookingView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

// CreateBooking validates the stay, freezes the hotel attributes onto the
// record, and persists the booking together with its confirmation
// notification job in one transaction.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, userID uuid.UUID) (*CreateBookingResult, error) {
	stay, err := uc.parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	hotelSnap, err := uc.uow.CommandReads().HotelByID(ctx, req.HotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := dombooking.NewBooking(dombooking.CreateParams{
		UserID: userID,
		Hotel: dombooking.HotelSnapshot{
			ID:          hotelSnap.ID,
			Name:        hotelSnap.Name,
			Location:    hotelSnap.Location,
			ImageURL:    hotelSnap.ImageURL,
			NightlyRate: hotelSnap.NightlyRate,
		},
		Stay:            stay,
		Rooms:           req.Rooms,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       uc.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return uc.createConfirmationJob(ctx, tx, id)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the persisted view, not the in-memory entity
	view, err := uc.bookingQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view}, nil
}

func (uc *bookingUseCaseImpl) parseStay(checkInText, checkOutText string) (dombooking.StayRange, error) {
	checkIn, err := dombooking.ParseDate(checkInText)
	if err != nil {
		return dombooking.StayRange{}, errs.Mark(err, ErrDomainValidation)
	}
	checkOut, err := dombooking.ParseDate(checkOutText)
	if err != nil {
		return dombooking.StayRange{}, errs.Mark(err, ErrDomainValidation)
	}
	stay, err := dombooking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return dombooking.StayRange{}, errs.Mark(err, ErrDomainValidation)
	}
	return stay, nil
}

func (uc *bookingUseCaseImpl) createConfirmationJob(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       "booking_confirmed",
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "booking_confirmed", payload, uc.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
