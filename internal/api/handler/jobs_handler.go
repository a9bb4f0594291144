package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

type createJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Company      string   `json:"company" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=Full-time Part-time Contract Freelance Internship Remote"`
	Category     string   `json:"category" validate:"required,oneof=IT Education Healthcare Finance Hospitality Retail Other"`
	SalaryMin    float64  `json:"salary_min" validate:"omitempty,gt=0"`
	SalaryMax    float64  `json:"salary_max" validate:"omitempty,gt=0"`
	Currency     string   `json:"currency"`
	Requirements []string `json:"requirements"`
	ContactEmail string   `json:"contact_email" validate:"required,email"`
	ContactPhone string   `json:"contact_phone"`
	// Active defaults to true: postings go live on creation.
	Active *bool `json:"active"`
}

type updateJobRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Company      *string   `json:"company"`
	Location     *string   `json:"location"`
	Type         *string   `json:"type" validate:"omitempty,oneof=Full-time Part-time Contract Freelance Internship Remote"`
	Category     *string   `json:"category" validate:"omitempty,oneof=IT Education Healthcare Finance Hospitality Retail Other"`
	SalaryMin    *float64  `json:"salary_min" validate:"omitempty,gt=0"`
	SalaryMax    *float64  `json:"salary_max" validate:"omitempty,gt=0"`
	Currency     *string   `json:"currency"`
	Requirements *[]string `json:"requirements"`
	ContactEmail *string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string   `json:"contact_phone"`
	Active       *bool     `json:"active"`
}

// NewJobsHandler wires the job binders into the shared listing handler.
func NewJobsHandler(svc ports.ListingService[*domain.Job], log zerolog.Logger) *ListingHandler[*domain.Job] {
	return NewListingHandler(svc, "jobs", "job", bindCreateJob, bindUpdateJob, log)
}

func bindCreateJob(c echo.Context, actor *domain.User) (*domain.Job, error) {
	var req createJobRequest
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
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return &domain.Job{
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Category:     req.Category,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Currency:     currency,
		Requirements: req.Requirements,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Active:       active,
		OwnerID:      actor.ID,
	}, nil
}

func bindUpdateJob(c echo.Context) (func(*domain.Job), error) {
	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return func(j *domain.Job) {
		if req.Title != nil {
			j.Title = *req.Title
		}
		if req.Description != nil {
			j.Description = *req.Description
		}
		if req.Company != nil {
			j.Company = *req.Company
		}
		if req.Location != nil {
			j.Location = *req.Location
		}
		if req.Type != nil {
			j.Type = *req.Type
		}
		if req.Category != nil {
			j.Category = *req.Category
		}
		if req.SalaryMin != nil {
			j.SalaryMin = *req.SalaryMin
		}
		if req.SalaryMax != nil {
			j.SalaryMax = *req.SalaryMax
		}
		if req.Currency != nil {
			j.Currency = *req.Currency
		}
		if req.Requirements != nil {
			j.Requirements = *req.Requirements
		}
		if req.ContactEmail != nil {
			j.ContactEmail = *req.ContactEmail
		}
		if req.ContactPhone != nil {
			j.ContactPhone = *req.ContactPhone
		}
		if req.Active != nil {
			j.Active = *req.Active
		}
	}, nil
}
