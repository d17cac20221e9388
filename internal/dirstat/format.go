package dirstat

import (
	"fmt"
	"strings"
)

// sizeUnits lists the units tried in order before falling back to PB.
//
//nolint:gochecknoglobals // Lookup table
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals, dividing by 1024
// until the value drops below 1024 or the units run out at PB.
func FormatSize(size float64) string {
	for _, unit := range sizeUnits {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}

		size /= 1024
	}

	return fmt.Sprintf("%.2f PB", size)
}

// Label renders a category for display.
func Label(category string) string {
	switch category {
	case CategoryHidden:
		return CategoryHidden
	case CategoryNoExtension:
		return "no_ext"
	default:
		return "." + category
	}
}

// FormatBreakdown renders the categories as "<label>:<count>" pairs,
// most frequent first. An empty breakdown renders as an empty string.
func FormatBreakdown(b Breakdown) string {
	parts := make([]string, 0, b.Len())

	for _, category := range b.ByCount() {
		stat, _ := b.Get(category)
		parts = append(parts, fmt.Sprintf("%s:%d", Label(category), stat.Count))
	}

	return strings.Join(parts, ", ")
}
