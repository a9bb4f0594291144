package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

type createMarketplaceRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required,oneof=Traditional Modern Food Clothing Electronics Other"`
	// Condition defaults to "Good" when omitted.
	Condition string   `json:"condition" validate:"omitempty,oneof=New 'Like New' Good Fair Poor"`
	Location  string   `json:"location" validate:"required"`
	Images    []string `json:"images"`
	// Available defaults to true: fresh listings are on the market immediately.
	Available *bool `json:"available"`
}

type updateMarketplaceRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price" validate:"omitempty,gt=0"`
	Category    *string   `json:"category" validate:"omitempty,oneof=Traditional Modern Food Clothing Electronics Other"`
	Condition   *string   `json:"condition" validate:"omitempty,oneof=New 'Like New' Good Fair Poor"`
	Location    *string   `json:"location"`
	Images      *[]string `json:"images"`
	Available   *bool     `json:"available"`
}

// NewMarketplaceHandler wires the marketplace binders into the shared listing handler.
func NewMarketplaceHandler(svc ports.ListingService[*domain.MarketplaceItem], log zerolog.Logger) *ListingHandler[*domain.MarketplaceItem] {
	return NewListingHandler(svc, "marketplace", "item", bindCreateMarketplace, bindUpdateMarketplace, log)
}

func bindCreateMarketplace(c echo.Context, actor *domain.User) (*domain.MarketplaceItem, error) {
	var req createMarketplaceRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	condition := req.Condition
	if condition == "" {
		condition = "Good"
	}

	return &domain.MarketplaceItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   condition,
		Location:    req.Location,
		Images:      req.Images,
		Available:   available,
		OwnerID:     actor.ID,
	}, nil
}

func bindUpdateMarketplace(c echo.Context) (func(*domain.MarketplaceItem), error) {
	var req updateMarketplaceRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return func(m *domain.MarketplaceItem) {
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Price != nil {
			m.Price = *req.Price
		}
		if req.Category != nil {
			m.Category = *req.Category
		}
		if req.Condition != nil {
			m.Condition = *req.Condition
		}
		if req.Location != nil {
			m.Location = *req.Location
		}
		if req.Images != nil {
			m.Images = *req.Images
		}
		if req.Available != nil {
			m.Available = *req.Available
		}
	}, nil
}
