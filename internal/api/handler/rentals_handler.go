package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

type createRentalRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	PropertyType  string   `json:"property_type" validate:"required,oneof=Apartment House Room Commercial Other"`
	Street        string   `json:"street" validate:"required"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state" validate:"required"`
	Zip           string   `json:"zip"`
	Bedrooms      int      `json:"bedrooms" validate:"min=0"`
	Bathrooms     int      `json:"bathrooms" validate:"min=0"`
	Area          float64  `json:"area" validate:"omitempty,gt=0"`
	Rent          float64  `json:"rent" validate:"required,gt=0"`
	Currency      string   `json:"currency"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	ContactPerson string   `json:"contact_person" validate:"required"`
	ContactEmail  string   `json:"contact_email" validate:"required,email"`
	ContactPhone  string   `json:"contact_phone"`
	// Available defaults to true: new properties are listed immediately.
	Available *bool `json:"available"`
}

type updateRentalRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	PropertyType  *string   `json:"property_type" validate:"omitempty,oneof=Apartment House Room Commercial Other"`
	Street        *string   `json:"street"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Zip           *string   `json:"zip"`
	Bedrooms      *int      `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms     *int      `json:"bathrooms" validate:"omitempty,min=0"`
	Area          *float64  `json:"area" validate:"omitempty,gt=0"`
	Rent          *float64  `json:"rent" validate:"omitempty,gt=0"`
	Currency      *string   `json:"currency"`
	Amenities     *[]string `json:"amenities"`
	Images        *[]string `json:"images"`
	ContactPerson *string   `json:"contact_person"`
	ContactEmail  *string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone  *string   `json:"contact_phone"`
	Available     *bool     `json:"available"`
}

// NewRentalsHandler wires the rental binders into the shared listing handler.
func NewRentalsHandler(svc ports.ListingService[*domain.Rental], log zerolog.Logger) *ListingHandler[*domain.Rental] {
	return NewListingHandler(svc, "rentals", "rental", bindCreateRental, bindUpdateRental, log)
}

func bindCreateRental(c echo.Context, actor *domain.User) (*domain.Rental, error) {
	var req createRentalRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	return &domain.Rental{
		Title:         req.Title,
		Description:   req.Description,
		PropertyType:  req.PropertyType,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		Rent:          req.Rent,
		Currency:      currency,
		Amenities:     req.Amenities,
		Images:        req.Images,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Available:     available,
		OwnerID:       actor.ID,
	}, nil
}

func bindUpdateRental(c echo.Context) (func(*domain.Rental), error) {
	var req updateRentalRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return func(r *domain.Rental) {
		if req.Title != nil {
			r.Title = *req.Title
		}
		if req.Description != nil {
			r.Description = *req.Description
		}
		if req.PropertyType != nil {
			r.PropertyType = *req.PropertyType
		}
		if req.Street != nil {
			r.Street = *req.Street
		}
		if req.City != nil {
			r.City = *req.City
		}
		if req.State != nil {
			r.State = *req.State
		}
		if req.Zip != nil {
			r.Zip = *req.Zip
		}
		if req.Bedrooms != nil {
			r.Bedrooms = *req.Bedrooms
		}
		if req.Bathrooms != nil {
			r.Bathrooms = *req.Bathrooms
		}
		if req.Area != nil {
			r.Area = *req.Area
		}
		if req.Rent != nil {
			r.Rent = *req.Rent
		}
		if req.Currency != nil {
			r.Currency = *req.Currency
		}
		if req.Amenities != nil {
			r.Amenities = *req.Amenities
		}
		if req.Images != nil {
			r.Images = *req.Images
		}
		if req.ContactPerson != nil {
			r.ContactPerson = *req.ContactPerson
		}
		if req.ContactEmail != nil {
			r.ContactEmail = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			r.ContactPhone = *req.ContactPhone
		}
		if req.Available != nil {
			r.Available = *req.Available
		}
	}, nil
}
