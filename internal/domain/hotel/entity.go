package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyHotelName   = errors.New("hotel name cannot be empty")
	ErrHotelNameTooLong = errors.New("hotel name is too long (max 255 characters)")
	ErrNegativeRate     = errors.New("nightly rate cannot be negative")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
)

const MaxHotelNameLength = 255

// Hotel is a catalog entry. Rating here is the static seed value shown until
// guests have posted reviews; the live average lives in the rating stats.
type Hotel struct {
	id          uuid.UUID
	name        string
	location    string
	description string
	imageURL    string
	nightlyRate float64
	rating      float64
	amenities   []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(id uuid.UUID, name, location, description, imageURL string, nightlyRate, rating float64, amenities []string) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyHotelName
	}
	if len(name) > MaxHotelNameLength {
		return nil, ErrHotelNameTooLong
	}
	if nightlyRate < 0 {
		return nil, ErrNegativeRate
	}
	if rating < 0 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Hotel{
		id:          id,
		name:        name,
		location:    strings.TrimSpace(location),
		description: description,
		imageURL:    imageURL,
		nightlyRate: nightlyRate,
		rating:      rating,
		amenities:   amenities,
	}, nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) Location() string     { return h.location }
func (h *Hotel) Description() string  { return h.description }
func (h *Hotel) ImageURL() string     { return h.imageURL }
func (h *Hotel) NightlyRate() float64 { return h.nightlyRate }
func (h *Hotel) Rating() float64      { return h.rating }
func (h *Hotel) Amenities() []string  { return h.amenities }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }
