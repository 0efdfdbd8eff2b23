package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The VIP count must match whatever source tag the VIP endpoint writes, so
// the query takes it as a parameter instead of hardcoding a literal that can
// drift from the handler's constant.
func TestVIPCountQueryIsParameterized(t *testing.T) {
	t.Parallel()

	assert.Contains(t, queryCountBuyersVIP, "source = $1")
	assert.NotContains(t, queryCountBuyersVIP, "'")
}

// Monthly growth is an all-time aggregate; a date cutoff here would silently
// truncate the report.
func TestMonthlyGrowthQueryHasNoCutoff(t *testing.T) {
	t.Parallel()

	assert.NotContains(t, queryBuyerMonthlyGrowth, "WHERE")
}
