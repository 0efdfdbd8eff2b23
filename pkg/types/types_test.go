package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Jane@Example.COM", "jane@example.com"},
		{"  padded@example.com ", "padded@example.com"},
		{"already@lower.io", "already@lower.io"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestValidOfferStatus(t *testing.T) {
	t.Parallel()

	for _, s := range AllOfferStatuses {
		assert.True(t, ValidOfferStatus(s), string(s))
	}
	assert.False(t, ValidOfferStatus("ACCEPTED "))
	assert.False(t, ValidOfferStatus("accepted"))
	assert.False(t, ValidOfferStatus(""))
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantPage  int
		wantLimit int
		wantPages int
	}{
		{"exact multiple", 40, 1, 20, 1, 20, 2},
		{"partial last page", 41, 1, 20, 1, 20, 3},
		{"zero total", 0, 1, 20, 1, 20, 0},
		{"defaults applied", 10, 0, 0, 1, 20, 1},
		{"custom limit", 7, 2, 3, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewPagination(tt.total, tt.page, tt.limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantPages, p.Pages)
		})
	}
}

func TestBuyerFullName(t *testing.T) {
	t.Parallel()

	b := &Buyer{FirstName: "Ada", LastName: "Marsh"}
	assert.Equal(t, "Ada Marsh", b.FullName())

	b = &Buyer{FirstName: "Ada"}
	assert.Equal(t, "Ada", b.FullName())
}
