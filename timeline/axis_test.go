package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDateAxisSortsAndDeduplicates(t *testing.T) {
	axis := BuildDateAxis([]string{"2025-12-03", "2025-11-20", "2025-11-20"})
	assert.Equal(t, []string{"2025-11-20", "2025-12-03"}, axis)
}

func TestBuildDateAxisDropsUnparseable(t *testing.T) {
	axis := BuildDateAxis([]string{"2025-12-03", "not-a-date", "2025-01-01"})
	assert.Equal(t, []string{"2025-01-01", "2025-12-03"}, axis)
}

func TestBuildDateAxisEmpty(t *testing.T) {
	assert.Empty(t, BuildDateAxis(nil))
}

func TestResolveCurrentDateBounds(t *testing.T) {
	axis := []string{"2025-11-20", "2025-12-03"}
	assert.Equal(t, "2025-11-20", ResolveCurrentDate(axis, 0))
	assert.Equal(t, "2025-12-03", ResolveCurrentDate(axis, 1))
	assert.Equal(t, "", ResolveCurrentDate(axis, 2))
	assert.Equal(t, "", ResolveCurrentDate(axis, -1))
	assert.Equal(t, "", ResolveCurrentDate(nil, 0))
}

func TestInitialIndexCampaignStart(t *testing.T) {
	axis := []string{"2025-11-20", "2025-12-01", "2025-12-03"}
	assert.Equal(t, 1, InitialIndex(axis))
}

func TestInitialIndexFallback(t *testing.T) {
	axis := []string{"2025-11-20", "2025-11-21"}
	assert.Equal(t, 0, InitialIndex(axis))
}

func TestRemapToLedgerYear(t *testing.T) {
	assert.Equal(t, "2024-11-20", RemapToLedgerYear("2025-11-20"))
	assert.Equal(t, "2024-12-01", RemapToLedgerYear("2025-12-01"))
	assert.Equal(t, "2024-11-15", RemapToLedgerYear("2024-11-15"))
	assert.Equal(t, "", RemapToLedgerYear(""))
}
