package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKeys(t *testing.T) {
	assert.Equal(t,
		"organizations/O/projects/P/plans/L/source.pdf",
		SourcePDF("O", "P", "L"))
	assert.Equal(t,
		"organizations/O/projects/P/plans/L/sheets/sheet-0/source.png",
		SheetPNG("O", "P", "L", "sheet-0"))
	assert.Equal(t,
		"organizations/O/projects/P/plans/L/sheets/sheet-3/tiles.pmtiles",
		SheetTiles("O", "P", "L", "sheet-3"))
}

func TestSheetIDRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 9, 10, 42} {
		id := SheetID(idx)
		got, err := SheetIndex(id)
		require.NoError(t, err, "sheet id %s", id)
		assert.Equal(t, idx, got)
	}
}

func TestSheetIndexRejectsMalformedIDs(t *testing.T) {
	for _, id := range []string{"", "sheet-", "sheet--1", "sheet-01", "page-0", "sheet-x", "0"} {
		_, err := SheetIndex(id)
		assert.Error(t, err, "expected error for %q", id)
	}
}

func TestParseUploadKey(t *testing.T) {
	org, proj, plan, ok := ParseUploadKey("organizations/O/projects/P/plans/L/source.pdf")
	require.True(t, ok)
	assert.Equal(t, "O", org)
	assert.Equal(t, "P", proj)
	assert.Equal(t, "L", plan)
}

func TestParseUploadKeyRejectsNonPlanKeys(t *testing.T) {
	keys := []string{
		"organizations/O/projects/P/plans/L/image.png",
		"organizations/O/projects/P/plans/L/sheets/sheet-0/source.png",
		"organizations/O/projects/P/source.pdf",
		"organizations/O/projects/P/plans/L/source.pdf/extra",
		"prefix/organizations/O/projects/P/plans/L/source.pdf",
		"",
	}
	for _, key := range keys {
		_, _, _, ok := ParseUploadKey(key)
		assert.False(t, ok, "expected no match for %q", key)
	}
}
