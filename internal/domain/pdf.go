package domain

// MetadataMissing is the sentinel returned for metadata fields absent in the
// source document.
const MetadataMissing = "N/A"

// Valid absolute page rotations.
const (
	Rotate90  = 90
	Rotate180 = 180
	Rotate270 = 270
)

// DocumentInfo contains document-level metadata read from a PDF file.
// Date strings are reported as stored in the document, not reformatted.
type DocumentInfo struct {
	PageCount    int    `json:"page_count"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Subject      string `json:"subject"`
	Creator      string `json:"creator"`
	Producer     string `json:"producer"`
	CreationDate string `json:"creation_date"`
	ModDate      string `json:"mod_date"`
	Encrypted    bool   `json:"encrypted"`
}

// WatermarkOptions describes the fixed-layout text watermark: centered per
// page, 45 degree rotation, large gray type, caller-supplied opacity.
type WatermarkOptions struct {
	Text    string  `json:"text"`
	Opacity float64 `json:"opacity"`
}

// DefaultWatermarkOpacity is used when the caller does not supply one.
const DefaultWatermarkOpacity = 0.3

// ValidRotation reports whether angle is one of the supported absolute
// rotations.
func ValidRotation(angle int) bool {
	return angle == Rotate90 || angle == Rotate180 || angle == Rotate270
}
