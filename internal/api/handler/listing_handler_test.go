package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neplink/classifieds-api/internal/core/domain"
	"github.com/neplink/classifieds-api/internal/core/service"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/memory"
)

func newsFixture() (*ListingHandler[*domain.News], *memory.ListingRepository[*domain.News]) {
	repo := memory.NewListingRepository[*domain.News]()
	svc := service.NewListingService[*domain.News](repo, "news", zerolog.Nop())
	return NewNewsHandler(svc, zerolog.Nop()), repo
}

func listingContext(t *testing.T, method, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user", user)
	}
	return c, rec
}

func TestListingHandler_Create(t *testing.T) {
	h, _ := newsFixture()
	owner := &domain.User{ID: 1, Name: "Alice", Role: domain.RoleOwner}

	c, rec := listingContext(t, http.MethodPost,
		`{"title":"Hello","content":"World","category":"Technology"}`, owner)

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var created domain.News
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.OwnerID != 1 {
		t.Fatalf("expected owner id 1, got %d", created.OwnerID)
	}
	if created.Author != "Alice" {
		t.Fatalf("expected author to default to actor name, got %q", created.Author)
	}
	if created.Published {
		t.Fatalf("new articles must default to unpublished")
	}
}

func TestListingHandler_Create_BadCategory(t *testing.T) {
	h, _ := newsFixture()
	owner := &domain.User{ID: 1, Role: domain.RoleOwner}

	c, _ := listingContext(t, http.MethodPost,
		`{"title":"Hello","content":"World","category":"Gossip"}`, owner)

	err := h.Create(c)
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListingHandler_Get_HiddenRecord(t *testing.T) {
	h, repo := newsFixture()
	owner := &domain.User{ID: 1, Role: domain.RoleOwner}

	c, _ := listingContext(t, http.MethodPost,
		`{"title":"Draft","content":"...","category":"Other"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	// Anonymous read of the unpublished article: 404.
	c, _ = listingContext(t, http.MethodGet, "", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for hidden record, got %v", err)
	}

	// Admin read succeeds.
	admin := &domain.User{ID: 2, Role: domain.RoleAdmin}
	c, rec := listingContext(t, http.MethodGet, "", admin)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Get(c); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if n, _ := repo.Count(c.Request().Context()); n != 1 {
		t.Fatalf("expected 1 stored article, got %d", n)
	}
}

func TestListingHandler_Get_NonNumericID(t *testing.T) {
	h, _ := newsFixture()

	c, _ := listingContext(t, http.MethodGet, "", nil)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %v", err)
	}
}

func TestListingHandler_Update_NonOwner(t *testing.T) {
	h, _ := newsFixture()
	owner := &domain.User{ID: 1, Role: domain.RoleOwner}

	c, _ := listingContext(t, http.MethodPost,
		`{"title":"Mine","content":"...","category":"Other","published":true}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	stranger := &domain.User{ID: 2, Role: domain.RoleOwner}
	c, _ = listingContext(t, http.MethodPut, `{"title":"Stolen"}`, stranger)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Update(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-owner update, got %v", err)
	}
}

func TestListingHandler_Update_PartialMerge(t *testing.T) {
	h, _ := newsFixture()
	owner := &domain.User{ID: 1, Role: domain.RoleOwner}

	c, _ := listingContext(t, http.MethodPost,
		`{"title":"Original","content":"Body","category":"Other","published":true}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	c, rec := listingContext(t, http.MethodPut, `{"title":"Renamed"}`, owner)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	var updated domain.News
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Content != "Body" {
		t.Fatalf("untouched field was overwritten: %+v", updated)
	}
}

func TestListingHandler_Delete(t *testing.T) {
	h, repo := newsFixture()
	owner := &domain.User{ID: 1, Role: domain.RoleOwner}

	c, _ := listingContext(t, http.MethodPost,
		`{"title":"Gone soon","content":"...","category":"Other"}`, owner)
	if err := h.Create(c); err != nil {
		t.Fatalf("seed create: %v", err)
	}

	c, rec := listingContext(t, http.MethodDelete, "", owner)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "article removed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if n, _ := repo.Count(c.Request().Context()); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}
