package docx

// DOCX length units are derived from pixel measurements at a fixed reference
// resolution of 96 pixels per inch. Drawing extents use English Metric Units
// (914400 per inch); page geometry uses twips (twentieths of a point, 1440
// per inch).
const (
	referenceDPI = 96

	emusPerInch  = 914400
	twipsPerInch = 72 * 20
)

// EMU converts a pixel measurement to English Metric Units.
// The result truncates toward zero; golden output depends on this, so the
// conversion must never round to nearest.
func EMU(px float64) int64 {
	return int64(px / referenceDPI * emusPerInch)
}

// Twips converts a pixel measurement to twentieths of a point.
// Truncates toward zero, like EMU.
func Twips(px float64) int64 {
	return int64(px / referenceDPI * twipsPerInch)
}
