// Package paths defines the canonical blob-store key scheme for plans and
// sheets. Viewers depend on these paths byte-for-byte — never change the
// layout without a migration plan for existing blobs.
package paths

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SheetIDPrefix is the prefix of every sheet identifier.
const SheetIDPrefix = "sheet-"

// uploadKeyRE matches the canonical source.pdf key of a plan upload.
var uploadKeyRE = regexp.MustCompile(`^organizations/([^/]+)/projects/([^/]+)/plans/([^/]+)/source\.pdf$`)

// PlanPrefix returns the blob-store prefix shared by all objects of a plan.
func PlanPrefix(organizationID, projectID, planID string) string {
	return fmt.Sprintf("organizations/%s/projects/%s/plans/%s", organizationID, projectID, planID)
}

// SourcePDF returns the key of the uploaded plan PDF.
func SourcePDF(organizationID, projectID, planID string) string {
	return PlanPrefix(organizationID, projectID, planID) + "/source.pdf"
}

// SheetPNG returns the key of a sheet's rasterized PNG.
func SheetPNG(organizationID, projectID, planID, sheetID string) string {
	return fmt.Sprintf("%s/sheets/%s/source.png", PlanPrefix(organizationID, projectID, planID), sheetID)
}

// SheetTiles returns the key of a sheet's PMTiles archive.
func SheetTiles(organizationID, projectID, planID, sheetID string) string {
	return fmt.Sprintf("%s/sheets/%s/tiles.pmtiles", PlanPrefix(organizationID, projectID, planID), sheetID)
}

// SheetID formats a zero-based sheet index as its canonical identifier.
func SheetID(index int) string {
	return SheetIDPrefix + strconv.Itoa(index)
}

// SheetIndex parses the zero-based index out of a sheet identifier.
func SheetIndex(sheetID string) (int, error) {
	raw, ok := strings.CutPrefix(sheetID, SheetIDPrefix)
	if !ok {
		return 0, fmt.Errorf("malformed sheet id %q", sheetID)
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || (len(raw) > 1 && raw[0] == '0') {
		return 0, fmt.Errorf("malformed sheet id %q", sheetID)
	}
	return idx, nil
}

// ParseUploadKey extracts the tenancy keys from a source.pdf object key.
// Returns ok=false for any key that is not a canonical plan upload.
func ParseUploadKey(objectKey string) (organizationID, projectID, planID string, ok bool) {
	m := uploadKeyRE.FindStringSubmatch(objectKey)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
