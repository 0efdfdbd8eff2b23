package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	domain "github.com/offerdesk/offerdesk/pkg/types"
)

// exportHeader is the column order for offer CSV exports.
var exportHeader = []string{
	"offer_id", "property_id", "buyer_name", "buyer_email", "buyer_phone",
	"offered_price", "status", "counter_price", "timestamp",
}

// Export handles GET /api/v1/offers/export. It streams the same filtered
// offer set as the list endpoint, as CSV.
//
// @Summary Export offers as CSV
// @Description Streams offers matching the list filters as a CSV attachment.
// @Tags offers
// @Produce text/csv
// @Param status query string false "Offer status or ALL"
// @Param propertyId query string false "Filter by property"
// @Param startDate query string false "Earliest offer date (YYYY-MM-DD)"
// @Param endDate query string false "Latest offer date, inclusive (YYYY-MM-DD)"
// @Param search query string false "Buyer name, email, or phone substring"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/offers/export [get]
func (h *OffersHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	q, err := parseOfferQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	q.Page = 1
	q.Limit = maxPageSize

	// First page fetched before headers go out so query failures still
	// produce a JSON error.
	offers, total, err := h.store.ListOffers(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="offers.csv"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(exportHeader); err != nil {
		return err
	}

	written := 0
	for {
		for i := range offers {
			if err := w.Write(exportRow(&offers[i])); err != nil {
				return err
			}
		}
		written += len(offers)

		if written >= total || len(offers) < q.Limit {
			break
		}

		q.Page++
		offers, _, err = h.store.ListOffers(ctx, q)
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func exportRow(o *domain.Offer) []string {
	var name, email, phone string
	if o.Buyer != nil {
		name = o.Buyer.FirstName + " " + o.Buyer.LastName
		email = o.Buyer.Email
		phone = o.Buyer.Phone
	}

	counter := ""
	if o.CounterPrice != nil {
		counter = fmt.Sprintf("%.2f", *o.CounterPrice)
	}

	return []string{
		o.ID,
		o.PropertyID,
		name,
		email,
		phone,
		fmt.Sprintf("%.2f", o.OfferedPrice),
		string(o.Status),
		counter,
		o.Timestamp.Format(time.RFC3339),
	}
}
