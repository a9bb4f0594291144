package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/ports"
)

type createNewsRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required,oneof=Politics Culture Technology Business Sports Other"`
	Author   string   `json:"author"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	// Published defaults to false: new articles need an explicit publish.
	Published *bool `json:"published"`
}

type updateNewsRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Category  *string   `json:"category" validate:"omitempty,oneof=Politics Culture Technology Business Sports Other"`
	Author    *string   `json:"author"`
	Image     *string   `json:"image"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

// NewNewsHandler wires the news binders into the shared listing handler.
func NewNewsHandler(svc ports.ListingService[*domain.News], log zerolog.Logger) *ListingHandler[*domain.News] {
	return NewListingHandler(svc, "news", "article", bindCreateNews, bindUpdateNews, log)
}

func bindCreateNews(c echo.Context, actor *domain.User) (*domain.News, error) {
	var req createNewsRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	author := req.Author
	if author == "" {
		author = actor.Name
	}
	published := false
	if req.Published != nil {
		published = *req.Published
	}

	return &domain.News{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Author:    author,
		Image:     req.Image,
		Tags:      req.Tags,
		Published: published,
		OwnerID:   actor.ID,
	}, nil
}

func bindUpdateNews(c echo.Context) (func(*domain.News), error) {
	var req updateNewsRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return func(n *domain.News) {
		if req.Title != nil {
			n.Title = *req.Title
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		if req.Category != nil {
			n.Category = *req.Category
		}
		if req.Author != nil {
			n.Author = *req.Author
		}
		if req.Image != nil {
			n.Image = *req.Image
		}
		if req.Tags != nil {
			n.Tags = *req.Tags
		}
		if req.Published != nil {
			n.Published = *req.Published
		}
	}, nil
}
