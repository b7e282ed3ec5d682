package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cleanmatch/marketplace-api/internal/api/middleware"
	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

type stubOfferService struct {
	createFn         func(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error)
	listForCleanerFn func(ctx context.Context, cleanerID string) ([]*domain.Offer, error)
	listByCustomerFn func(ctx context.Context, customerID string) ([]*domain.Offer, error)
}

func (s *stubOfferService) Create(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error) {
	return s.createFn(ctx, customerID, input)
}

func (s *stubOfferService) ListForCleaner(ctx context.Context, cleanerID string) ([]*domain.Offer, error) {
	return s.listForCleanerFn(ctx, cleanerID)
}

func (s *stubOfferService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Offer, error) {
	return s.listByCustomerFn(ctx, customerID)
}

func TestOfferHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	stub := &stubOfferService{
		createFn: func(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error) {
			if customerID != "customer-1" {
				t.Fatalf("customer id must come from identity, got %q", customerID)
			}
			if input.CleanerID != "cleaner-1" || input.Price != 750 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Offer{
				ID:         "offer-1",
				CustomerID: customerID,
				CleanerID:  input.CleanerID,
				Price:      input.Price,
				Note:       input.Note,
				CreatedAt:  now,
			}, nil
		},
	}
	handler := NewOfferHandler(stub)

	body := strings.NewReader(`{"cleanerId":"cleaner-1","price":750,"note":"deep clean"}`)
	req := httptest.NewRequest(http.MethodPost, "/offers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, domain.Identity{UserID: "customer-1", Role: domain.RoleCustomer})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "offer-1" || resp["customerId"] != "customer-1" || resp["cleanerId"] != "cleaner-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["price"] != float64(750) {
		t.Fatalf("expected price 750, got %v", resp["price"])
	}
}

func TestOfferHandler_Create_Validation(t *testing.T) {
	cases := map[string]string{
		"missing cleaner": `{"price":750}`,
		"zero price":      `{"cleanerId":"cleaner-1","price":0}`,
		"negative price":  `{"cleanerId":"cleaner-1","price":-5}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubOfferService{
				createFn: func(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			}
			handler := NewOfferHandler(stub)

			req := httptest.NewRequest(http.MethodPost, "/offers", strings.NewReader(payload))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			middleware.SetIdentity(c, domain.Identity{UserID: "customer-1", Role: domain.RoleCustomer})

			_ = handler.Create(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestOfferHandler_Create_NoIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewOfferHandler(&stubOfferService{})

	body := strings.NewReader(`{"cleanerId":"cleaner-1","price":750}`)
	req := httptest.NewRequest(http.MethodPost, "/offers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestOfferHandler_Create_TargetNotCleaner(t *testing.T) {
	e := newTestEcho()
	stub := &stubOfferService{
		createFn: func(ctx context.Context, customerID string, input ports.CreateOfferInput) (*domain.Offer, error) {
			return nil, domain.ErrNotCleaner
		},
	}
	handler := NewOfferHandler(stub)

	body := strings.NewReader(`{"cleanerId":"customer-2","price":750}`)
	req := httptest.NewRequest(http.MethodPost, "/offers", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, domain.Identity{UserID: "customer-1", Role: domain.RoleCustomer})

	// The central error handler maps this to 400; here the handler just
	// propagates the domain error.
	if err := handler.Create(c); !errors.Is(err, domain.ErrNotCleaner) {
		t.Fatalf("expected ErrNotCleaner, got %v", err)
	}
}

func TestOfferHandler_ListForCleaner(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	stub := &stubOfferService{
		listForCleanerFn: func(ctx context.Context, cleanerID string) ([]*domain.Offer, error) {
			if cleanerID != "cleaner-1" {
				t.Fatalf("unexpected cleaner id %q", cleanerID)
			}
			return []*domain.Offer{
				{ID: "offer-2", CustomerID: "customer-2", CleanerID: cleanerID, Price: 900, CreatedAt: now},
				{ID: "offer-1", CustomerID: "customer-1", CleanerID: cleanerID, Price: 500, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	handler := NewOfferHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("cleanerId")
	c.SetParamValues("cleaner-1")

	if err := handler.ListForCleaner(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "offer-2" || resp[1]["id"] != "offer-1" {
		t.Fatalf("unexpected order: %+v", resp)
	}
}

func TestOfferHandler_ListByCustomer_Empty(t *testing.T) {
	e := newTestEcho()
	stub := &stubOfferService{
		listByCustomerFn: func(ctx context.Context, customerID string) ([]*domain.Offer, error) {
			return nil, nil
		},
	}
	handler := NewOfferHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("customerId")
	c.SetParamValues("customer-1")

	if err := handler.ListByCustomer(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// An empty list serializes as [], never null.
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}
