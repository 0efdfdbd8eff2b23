package handlers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/offerdesk/offerdesk/internal/metrics"
	"github.com/offerdesk/offerdesk/internal/store"
	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// BuyerHandler handles buyer directory operations.
type BuyerHandler struct {
	store store.Store
}

// NewBuyerHandler creates a new BuyerHandler.
func NewBuyerHandler(s store.Store) *BuyerHandler {
	return &BuyerHandler{store: s}
}

// Create handles POST /api/v1/buyers.
//
// @Summary Create a buyer
// @Description Creates a buyer. Duplicate email or phone returns 409 with the existing record.
// @Tags buyers
// @Accept json
// @Produce json
// @Param buyer body domain.Buyer true "Buyer to create"
// @Success 201 {object} domain.Buyer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} map[string]any "existing buyer attached"
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers [post]
func (h *BuyerHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var b domain.Buyer
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if err := validateBuyer(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	existing, err := h.store.GetBuyerByEmailOrPhone(ctx, b.Email, b.Phone)
	switch {
	case err == nil:
		return c.JSON(http.StatusConflict, map[string]any{
			"error":          "a buyer with this email or phone already exists",
			"existing_buyer": existing,
		})
	case !errors.Is(err, pgx.ErrNoRows):
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "looking up buyer: " + err.Error(),
		})
	}

	if err := h.store.CreateBuyer(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating buyer: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, b)
}

// List handles GET /api/v1/buyers.
//
// @Summary List buyers
// @Description Returns a paginated page of buyers.
// @Tags buyers
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers [get]
func (h *BuyerHandler) List(c echo.Context) error {
	page, limit, err := parsePageParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	buyers, total, err := h.store.ListBuyers(c.Request().Context(), page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing buyers: " + err.Error(),
		})
	}

	if buyers == nil {
		buyers = []domain.Buyer{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"buyers":     buyers,
		"pagination": domain.NewPagination(total, page, limit),
	})
}

// Get handles GET /api/v1/buyers/:id.
//
// @Summary Get a buyer by ID
// @Description Returns a buyer with their offers.
// @Tags buyers
// @Produce json
// @Param id path string true "Buyer UUID"
// @Success 200 {object} domain.Buyer
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/buyers/{id} [get]
func (h *BuyerHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	b, err := h.store.GetBuyer(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "buyer not found",
		})
	}

	offers, err := h.store.ListOffersByBuyer(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing buyer offers: " + err.Error(),
		})
	}
	b.Offers = offers

	return c.JSON(http.StatusOK, b)
}

// Update handles PUT /api/v1/buyers/:id.
//
// @Summary Update a buyer
// @Description Updates a buyer. Email and phone must stay unique.
// @Tags buyers
// @Accept json
// @Produce json
// @Param id path string true "Buyer UUID"
// @Param buyer body domain.Buyer true "Updated buyer"
// @Success 200 {object} domain.Buyer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} map[string]any
// @Router /api/v1/buyers/{id} [put]
func (h *BuyerHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	var b domain.Buyer
	if err := c.Bind(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}
	b.ID = id

	if err := validateBuyer(&b); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	other, err := h.store.GetBuyerByEmailOrPhone(ctx, b.Email, b.Phone)
	if err == nil && other.ID != id {
		return c.JSON(http.StatusConflict, map[string]any{
			"error":          "email or phone belongs to another buyer",
			"existing_buyer": other,
		})
	}

	if err := h.store.UpdateBuyer(ctx, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "buyer not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating buyer: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, b)
}

// Delete handles DELETE /api/v1/buyers/:id.
//
// @Summary Delete a buyer
// @Description Deletes a buyer and cascades to their offers.
// @Tags buyers
// @Param id path string true "Buyer UUID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers/{id} [delete]
func (h *BuyerHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.store.DeleteBuyer(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "buyer not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting buyer: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

// ByArea handles GET /api/v1/buyers/area/:areaId.
//
// @Summary List buyers interested in an area
// @Description Returns buyers whose preferred areas include the given area.
// @Tags buyers
// @Produce json
// @Param areaId path string true "Area identifier"
// @Success 200 {object} map[string]any
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers/area/{areaId} [get]
func (h *BuyerHandler) ByArea(c echo.Context) error {
	areaID := c.Param("areaId")

	buyers, err := h.store.ListBuyersByArea(c.Request().Context(), areaID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing buyers: " + err.Error(),
		})
	}

	if buyers == nil {
		buyers = []domain.Buyer{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"area_id": areaID,
		"buyers":  buyers,
	})
}

// Lookup handles GET /api/v1/buyers/lookup.
//
// @Summary Look up a buyer by external ID
// @Description Returns the buyer carrying the given external identifier.
// @Tags buyers
// @Produce json
// @Param external_id query string true "External identifier"
// @Success 200 {object} domain.Buyer
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/buyers/lookup [get]
func (h *BuyerHandler) Lookup(c echo.Context) error {
	externalID := c.QueryParam("external_id")
	if externalID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "external_id is required",
		})
	}

	b, err := h.store.GetBuyerByExternalID(c.Request().Context(), externalID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "buyer not found",
		})
	}

	return c.JSON(http.StatusOK, b)
}

// vipBuyerRequest is the body for POST /api/v1/buyers/vip.
type vipBuyerRequest struct {
	ExternalID     string   `json:"external_id"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	PreferredAreas []string `json:"preferred_areas"`
}

// VIP handles POST /api/v1/buyers/vip. An unknown buyer is created with the
// VIP source; a known one is promoted in place.
//
// @Summary Create or promote a VIP buyer
// @Description Creates the buyer with the VIP source, or stamps an existing buyer with the external ID and preferred areas.
// @Tags buyers
// @Accept json
// @Produce json
// @Param buyer body vipBuyerRequest true "VIP buyer"
// @Success 200 {object} domain.Buyer "promoted"
// @Success 201 {object} domain.Buyer "created"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers/vip [post]
func (h *BuyerHandler) VIP(c echo.Context) error {
	ctx := c.Request().Context()

	var req vipBuyerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.ExternalID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "external_id is required",
		})
	}
	if req.Email == "" && req.Phone == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "email or phone is required",
		})
	}

	existing, err := h.store.GetBuyerByExternalID(ctx, req.ExternalID)
	if err != nil && errors.Is(err, pgx.ErrNoRows) {
		existing, err = h.store.GetBuyerByEmailOrPhone(ctx, req.Email, req.Phone)
	}

	switch {
	case err == nil:
		existing.ExternalID = req.ExternalID
		existing.PreferredAreas = req.PreferredAreas
		existing.Source = domain.SourceVIP
		if err := h.store.UpdateBuyer(ctx, existing); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "promoting buyer: " + err.Error(),
			})
		}
		return c.JSON(http.StatusOK, existing)

	case errors.Is(err, pgx.ErrNoRows):
		b := &domain.Buyer{
			Email:          req.Email,
			Phone:          req.Phone,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			BuyerType:      domain.BuyerInvestor,
			PreferredAreas: req.PreferredAreas,
			Source:         domain.SourceVIP,
			ExternalID:     req.ExternalID,
		}
		if err := h.store.CreateBuyer(ctx, b); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "creating buyer: " + err.Error(),
			})
		}
		return c.JSON(http.StatusCreated, b)

	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "looking up buyer: " + err.Error(),
		})
	}
}

// bulkEmailRequest is the body for POST /api/v1/buyers/email.
type bulkEmailRequest struct {
	Subject             string   `json:"subject"`
	Body                string   `json:"body"`
	BuyerIDs            []string `json:"buyer_ids"`
	IncludeUnsubscribed bool     `json:"include_unsubscribed"`
}

// BulkEmail handles POST /api/v1/buyers/email. Placeholders in the subject
// and body ({firstName}, {lastName}, {fullName}, {email}) are substituted
// per recipient. Unsubscribed buyers are skipped unless asked for.
//
// @Summary Queue a bulk email to buyers
// @Description Renders the message per buyer and queues it for delivery.
// @Tags buyers
// @Accept json
// @Produce json
// @Param request body bulkEmailRequest true "Message and recipients"
// @Success 200 {object} map[string]any
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers/email [post]
func (h *BuyerHandler) BulkEmail(c echo.Context) error {
	var req bulkEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Subject == "" || req.Body == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "subject and body are required",
		})
	}
	if len(req.BuyerIDs) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "buyer_ids is required",
		})
	}

	buyers, err := h.store.ListBuyersByIDs(
		c.Request().Context(),
		req.BuyerIDs,
		req.IncludeUnsubscribed,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading buyers: " + err.Error(),
		})
	}

	recipients := make([]map[string]string, 0, len(buyers))
	for i := range buyers {
		b := &buyers[i]
		if b.Email == "" {
			continue
		}
		recipients = append(recipients, map[string]string{
			"email":   b.Email,
			"subject": renderPlaceholders(req.Subject, b),
			"body":    renderPlaceholders(req.Body, b),
		})
	}

	metrics.BulkEmailsQueuedTotal.Add(float64(len(recipients)))

	return c.JSON(http.StatusOK, map[string]any{
		"queued":     len(recipients),
		"recipients": recipients,
	})
}

// renderPlaceholders substitutes buyer fields into a message template.
func renderPlaceholders(template string, b *domain.Buyer) string {
	r := strings.NewReplacer(
		"{firstName}", b.FirstName,
		"{lastName}", b.LastName,
		"{fullName}", b.FullName(),
		"{email}", b.Email,
	)
	return r.Replace(template)
}

// importResult reports the outcome of a CSV import.
type importResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Errors  []string `json:"errors"`
}

// Import handles POST /api/v1/buyers/import. The uploaded CSV must carry a
// header row; rows are created or updated by email/phone identity, and row
// failures are collected rather than aborting the import.
//
// @Summary Import buyers from CSV
// @Description Creates or updates one buyer per CSV row. Row errors are collected and returned.
// @Tags buyers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} importResult
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/buyers/import [post]
func (h *BuyerHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "a CSV file upload named 'file' is required",
		})
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "opening upload: " + err.Error(),
		})
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "reading CSV header: " + err.Error(),
		})
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["email"]; !ok {
		if _, ok := cols["phone"]; !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "CSV header must include an email or phone column",
			})
		}
	}

	result := importResult{Errors: []string{}}
	for row := 2; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}

		created, err := h.importRow(ctx, cols, record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	metrics.BuyersImportedTotal.Add(float64(result.Created + result.Updated))

	return c.JSON(http.StatusOK, result)
}

// importRow creates or updates the buyer described by one CSV record.
// Returns true when a new buyer row was created.
func (h *BuyerHandler) importRow(
	ctx context.Context,
	cols map[string]int,
	record []string,
) (bool, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	email := cell("email")
	phone := cell("phone")
	if email == "" && phone == "" {
		return false, errors.New("email or phone is required")
	}
	firstName := cell("first_name")
	if firstName == "" {
		return false, errors.New("first_name is required")
	}

	b := &domain.Buyer{
		Email:      email,
		Phone:      phone,
		FirstName:  firstName,
		LastName:   cell("last_name"),
		BuyerType:  domain.BuyerType(cell("buyer_type")),
		Source:     cell("source"),
		ExternalID: cell("external_id"),
	}
	if b.BuyerType == "" {
		b.BuyerType = domain.BuyerInvestor
	}
	if areas := cell("preferred_areas"); areas != "" {
		b.PreferredAreas = strings.Split(areas, ";")
	}
	if b.Source == "" {
		b.Source = "CSV Import"
	}

	existing, err := h.store.GetBuyerByEmailOrPhone(ctx, email, phone)
	switch {
	case err == nil:
		b.ID = existing.ID
		b.Unsubscribed = existing.Unsubscribed
		return false, h.store.UpdateBuyer(ctx, b)
	case errors.Is(err, pgx.ErrNoRows):
		return true, h.store.CreateBuyer(ctx, b)
	default:
		return false, err
	}
}

// Stats handles GET /api/v1/buyers/stats.
//
// @Summary Buyer statistics
// @Description Returns buyer totals by area, type, source, and monthly growth.
// @Tags buyers
// @Produce json
// @Success 200 {object} domain.BuyerStats
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/buyers/stats [get]
func (h *BuyerHandler) Stats(c echo.Context) error {
	stats, err := h.store.GetBuyerStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "building buyer stats: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, stats)
}

// validateBuyer checks required buyer fields ahead of a write.
func validateBuyer(b *domain.Buyer) error {
	if b.FirstName == "" {
		return errors.New("first_name is required")
	}
	if b.Email == "" && b.Phone == "" {
		return errors.New("email or phone is required")
	}
	if b.BuyerType != "" &&
		b.BuyerType != domain.BuyerInvestor &&
		b.BuyerType != domain.BuyerOwnerOccupant {
		return fmt.Errorf("unknown buyer_type %q", b.BuyerType)
	}
	return nil
}

// parsePageParams reads page/limit query parameters with list defaults.
func parsePageParams(c echo.Context) (page, limit int, err error) {
	page, limit = 1, defaultPageSize

	if v := c.QueryParam("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, fmt.Errorf("invalid page %q", v)
		}
	}

	if v := c.QueryParam("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			return 0, 0, fmt.Errorf("invalid limit %q", v)
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}
	}

	return page, limit, nil
}
