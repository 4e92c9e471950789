package unit

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyUnitName      = errors.New("apartment name cannot be empty")
	ErrUnitNameTooLong    = errors.New("apartment name is too long (max 255 characters)")
	ErrInvalidMaxGuests   = errors.New("max guests must be at least 1")
	ErrNegativeRoomCount  = errors.New("room counts cannot be negative")
	ErrNegativeNightPrice = errors.New("price per night cannot be negative")
)

const (
	MaxUnitNameLength = 255
)

// Unit is a bookable apartment. The reservation core only reads it.
type Unit struct {
	id            uuid.UUID
	name          string
	maxGuests     int
	bedrooms      int
	bathrooms     int
	pricePerNight int64
	isAvailable   bool
}

func NewUnit(id uuid.UUID, name string, maxGuests, bedrooms, bathrooms int, pricePerNight int64, isAvailable bool) (*Unit, error) {
	if err := validateUnitName(name); err != nil {
		return nil, err
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}
	if bedrooms < 0 || bathrooms < 0 {
		return nil, ErrNegativeRoomCount
	}
	if pricePerNight < 0 {
		return nil, ErrNegativeNightPrice
	}

	return &Unit{
		id:            id,
		name:          strings.TrimSpace(name),
		maxGuests:     maxGuests,
		bedrooms:      bedrooms,
		bathrooms:     bathrooms,
		pricePerNight: pricePerNight,
		isAvailable:   isAvailable,
	}, nil
}

func (u *Unit) Sleeps(guests int) bool {
	return guests >= 1 && guests <= u.maxGuests
}

func validateUnitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUnitName
	}
	if utf8.RuneCountInString(name) > MaxUnitNameLength {
		return ErrUnitNameTooLong
	}
	return nil
}

func (u *Unit) ID() uuid.UUID        { return u.id }
func (u *Unit) Name() string         { return u.name }
func (u *Unit) MaxGuests() int       { return u.maxGuests }
func (u *Unit) Bedrooms() int        { return u.bedrooms }
func (u *Unit) Bathrooms() int       { return u.bathrooms }
func (u *Unit) PricePerNight() int64 { return u.pricePerNight }
func (u *Unit) IsAvailable() bool    { return u.isAvailable }
