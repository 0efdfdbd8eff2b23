package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/offerdesk/offerdesk/internal/engine"
	"github.com/offerdesk/offerdesk/internal/reports"
	"github.com/offerdesk/offerdesk/internal/store"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// OffersHandler handles offer submission, queries, and admin decisions.
type OffersHandler struct {
	engine  *engine.Engine
	store   store.Store
	reports *reports.Service
}

// NewOffersHandler creates a new OffersHandler.
func NewOffersHandler(eng *engine.Engine, s store.Store, r *reports.Service) *OffersHandler {
	return &OffersHandler{engine: eng, store: s, reports: r}
}

// --- Request/response types ---

// submitOfferRequest is the body for POST /api/v1/offers. Field names follow
// the public API contract.
type submitOfferRequest struct {
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BuyerType    string  `json:"buyerType"`
	PropertyID   string  `json:"propertyId"`
	OfferedPrice float64 `json:"offeredPrice"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
}

func (r *submitOfferRequest) missingFields() []string {
	var missing []string
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if r.Phone == "" {
		missing = append(missing, "phone")
	}
	if r.PropertyID == "" {
		missing = append(missing, "propertyId")
	}
	if r.OfferedPrice == 0 {
		missing = append(missing, "offeredPrice")
	}
	if r.FirstName == "" {
		missing = append(missing, "firstName")
	}
	if r.LastName == "" {
		missing = append(missing, "lastName")
	}
	return missing
}

// transitionRequest is the body for PUT /api/v1/offers/:id.
type transitionRequest struct {
	OfferStatus  string   `json:"offerStatus"`
	CounterPrice *float64 `json:"counterPrice"`
	UpdatedBy    string   `json:"updatedBy"`
}

// --- Handlers ---

// Submit handles POST /api/v1/offers.
//
// @Summary Submit an offer
// @Description Records a buyer's offer on a property. Resubmissions at a higher price raise the existing offer; equal or lower resubmissions fail with the existing offer attached.
// @Tags offers
// @Accept json
// @Produce json
// @Param offer body submitOfferRequest true "Offer submission"
// @Success 200 {object} map[string]any "raised offer"
// @Success 201 {object} map[string]any "new offer"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers [post]
func (h *OffersHandler) Submit(c echo.Context) error {
	var req submitOfferRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if missing := req.missingFields(); len(missing) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "missing required fields",
			"missing": missing,
		})
	}

	offer, created, err := h.engine.SubmitOffer(c.Request().Context(), engine.SubmitOfferInput{
		PropertyID:   req.PropertyID,
		OfferedPrice: req.OfferedPrice,
		Email:        req.Email,
		Phone:        req.Phone,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BuyerType:    domain.BuyerType(req.BuyerType),
		Source:       "Property Offer",
	})
	if err != nil {
		var stale *engine.StaleOfferError
		var invalid *engine.ValidationError

		switch {
		case errors.As(err, &stale):
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":          stale.Error(),
				"existing_offer": stale.Existing,
			})
		case errors.As(err, &invalid):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": invalid.Error(),
			})
		case errors.Is(err, engine.ErrPropertyNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "property not found",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "submitting offer: " + err.Error(),
			})
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return c.JSON(status, map[string]any{
		"offer":   offer,
		"message": submissionMessage(offer.Status, created),
	})
}

// submissionMessage describes the outcome of a submission for the caller.
func submissionMessage(status domain.OfferStatus, created bool) string {
	verb := "raised"
	if created {
		verb = "submitted"
	}

	switch status {
	case domain.OfferAccepted:
		return fmt.Sprintf("offer %s and accepted at or above asking price", verb)
	case domain.OfferRejected:
		return fmt.Sprintf("offer %s but rejected: below the minimum price", verb)
	default:
		return fmt.Sprintf("offer %s and pending review", verb)
	}
}

// ByProperty handles GET /api/v1/offers/property/:propertyId.
//
// @Summary List offers on a property
// @Description Returns all offers on a property, newest first.
// @Tags offers
// @Produce json
// @Param propertyId path string true "Property ID"
// @Success 200 {object} map[string]any
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers/property/{propertyId} [get]
func (h *OffersHandler) ByProperty(c echo.Context) error {
	propertyID := c.Param("propertyId")

	offers, err := h.store.ListOffersByProperty(c.Request().Context(), propertyID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	if offers == nil {
		offers = []domain.Offer{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"property_id":  propertyID,
		"total_offers": len(offers),
		"offers":       offers,
	})
}

// ByBuyer handles GET /api/v1/offers/buyer.
//
// @Summary List a buyer's offers
// @Description Returns all offers by the buyer identified by buyerId, email, or phone.
// @Tags offers
// @Produce json
// @Param buyerId query string false "Buyer UUID"
// @Param email query string false "Buyer email"
// @Param phone query string false "Buyer phone"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/offers/buyer [get]
func (h *OffersHandler) ByBuyer(c echo.Context) error {
	ctx := c.Request().Context()

	buyerID := c.QueryParam("buyerId")
	email := c.QueryParam("email")
	phone := c.QueryParam("phone")

	if buyerID == "" && email == "" && phone == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "buyerId, email, or phone is required",
		})
	}

	var (
		buyer *domain.Buyer
		err   error
	)
	if buyerID != "" {
		buyer, err = h.store.GetBuyer(ctx, buyerID)
	} else {
		buyer, err = h.store.GetBuyerByEmailOrPhone(ctx, email, phone)
	}
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "buyer not found",
		})
	}

	offers, err := h.store.ListOffersByBuyer(ctx, buyer.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	if offers == nil {
		offers = []domain.Offer{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"buyer_id":     buyer.ID,
		"total_offers": len(offers),
		"offers":       offers,
	})
}

// List handles GET /api/v1/offers/all.
//
// @Summary List offers with filters
// @Description Returns a filtered, paginated page of offers across all properties.
// @Tags offers
// @Produce json
// @Param status query string false "Offer status or ALL" Enums(PENDING, ACCEPTED, REJECTED, COUNTERED, EXPIRED, ALL)
// @Param propertyId query string false "Filter by property"
// @Param startDate query string false "Earliest offer date (YYYY-MM-DD)"
// @Param endDate query string false "Latest offer date, inclusive (YYYY-MM-DD)"
// @Param search query string false "Buyer name, email, or phone substring"
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers/all [get]
func (h *OffersHandler) List(c echo.Context) error {
	q, err := parseOfferQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	offers, total, err := h.store.ListOffers(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	if offers == nil {
		offers = []domain.Offer{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"offers":     offers,
		"pagination": domain.NewPagination(total, q.Page, q.Limit),
	})
}

// Transition handles PUT /api/v1/offers/:id.
//
// @Summary Apply an admin decision to an offer
// @Description Sets the offer's status. COUNTERED requires a positive counterPrice.
// @Tags offers
// @Accept json
// @Produce json
// @Param id path string true "Offer UUID"
// @Param decision body transitionRequest true "New status"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers/{id} [put]
func (h *OffersHandler) Transition(c echo.Context) error {
	id := c.Param("id")

	var req transitionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.OfferStatus == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "offerStatus is required",
		})
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = "admin"
	}

	offer, err := h.engine.TransitionOffer(
		c.Request().Context(),
		id,
		domain.OfferStatus(req.OfferStatus),
		req.CounterPrice,
		updatedBy,
	)
	if err != nil {
		var invalid *engine.ValidationError

		switch {
		case errors.As(err, &invalid):
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": invalid.Error(),
			})
		case errors.Is(err, engine.ErrOfferNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "offer not found",
			})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "updating offer: " + err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"offer":         offer,
		"counter_price": offer.CounterPrice,
	})
}

// Stats handles GET /api/v1/offers/stats.
//
// @Summary Offer statistics
// @Description Returns totals by status, a 30-day trend, and the most active properties.
// @Tags offers
// @Produce json
// @Success 200 {object} domain.OfferStats
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers/stats [get]
func (h *OffersHandler) Stats(c echo.Context) error {
	stats, err := h.reports.OfferStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "building offer stats: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, stats)
}

// parseOfferQuery builds a store.OfferQuery from list query parameters.
func parseOfferQuery(c echo.Context) (*store.OfferQuery, error) {
	q := &store.OfferQuery{
		Page:   1,
		Limit:  defaultPageSize,
		Search: c.QueryParam("search"),
	}

	if s := c.QueryParam("status"); s != "" && s != "ALL" {
		status := domain.OfferStatus(s)
		if !domain.ValidOfferStatus(status) {
			return nil, fmt.Errorf("unknown status %q", s)
		}
		q.Status = &status
	}

	if p := c.QueryParam("propertyId"); p != "" {
		q.PropertyID = &p
	}

	if v := c.QueryParam("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q", v)
		}
		q.StartDate = &t
	}

	if v := c.QueryParam("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q", v)
		}
		q.EndDate = &t
	}

	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return nil, fmt.Errorf("invalid page %q", v)
		}
		q.Page = page
	}

	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid limit %q", v)
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
		q.Limit = limit
	}

	return q, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 timestamps.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
