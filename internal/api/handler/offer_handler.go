package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cleanmatch/marketplace-api/internal/core/domain"
	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

type OfferHandler struct {
	offerService ports.OfferService
}

func NewOfferHandler(offerService ports.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

type createOfferRequest struct {
	CleanerID string `json:"cleanerId" validate:"required"`
	Price     int    `json:"price"     validate:"required,gt=0"`
	Note      string `json:"note"`
}

type offerResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	CleanerID  string    `json:"cleanerId"`
	Price      int       `json:"price"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toOfferResponse(o *domain.Offer) offerResponse {
	return offerResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CleanerID:  o.CleanerID,
		Price:      o.Price,
		Note:       o.Note,
		CreatedAt:  o.CreatedAt.UTC(),
	}
}

func toOfferListResponse(offers []*domain.Offer) []offerResponse {
	out := make([]offerResponse, len(offers))
	for i, o := range offers {
		out[i] = toOfferResponse(o)
	}
	return out
}

// Create persists an offer from the authenticated customer to a cleaner.
//
// @Summary      Create an offer
// @Tags         offers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOfferRequest  true  "Offer details"
// @Success      200   {object}  offerResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /offers [post]
func (h *OfferHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOfferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	offer, err := h.offerService.Create(c.Request().Context(), identity.UserID, ports.CreateOfferInput{
		CleanerID: req.CleanerID,
		Price:     req.Price,
		Note:      req.Note,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOfferResponse(offer))
}

// ListForCleaner returns offers received by a cleaner, newest first.
//
// @Summary      List offers received by a cleaner
// @Tags         offers
// @Produce      json
// @Param        cleanerId  path      string  true  "Cleaner id"
// @Success      200        {array}   offerResponse
// @Router       /offers/for-cleaner/{cleanerId} [get]
func (h *OfferHandler) ListForCleaner(c echo.Context) error {
	offers, err := h.offerService.ListForCleaner(c.Request().Context(), c.Param("cleanerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferListResponse(offers))
}

// ListByCustomer returns offers sent by a customer, newest first.
//
// @Summary      List offers sent by a customer
// @Tags         offers
// @Produce      json
// @Param        customerId  path      string  true  "Customer id"
// @Success      200         {array}   offerResponse
// @Router       /offers/by-customer/{customerId} [get]
func (h *OfferHandler) ListByCustomer(c echo.Context) error {
	offers, err := h.offerService.ListByCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOfferListResponse(offers))
}
