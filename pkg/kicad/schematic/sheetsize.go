package schematic

// Standard sheet sizes tried smallest-first. Widths and heights are the
// usable landscape envelopes in mm.
var StandardSizes = []PaperSize{
	{Name: "A4", Width: 297, Height: 210},
	{Name: "A3", Width: 420, Height: 297},
	{Name: "A2", Width: 594, Height: 420},
}

// SelectSheetSize maps a measured bounding box to the smallest standard
// sheet it fits on. A sheet fits only when width and height are each
// independently within its envelope; the diagonal or area is never
// considered. When nothing fits the largest sheet is returned with
// IsOversized set, so callers can warn instead of failing.
func SelectSheetSize(bb BoundingBox) SheetSizeResult {
	dims := Dimensions{Width: bb.Width(), Height: bb.Height()}

	for _, size := range StandardSizes {
		if dims.Width <= size.Width && dims.Height <= size.Height {
			return SheetSizeResult{
				Size:        size.Name,
				Recommended: size,
				BoundingBox: dims,
			}
		}
	}

	largest := StandardSizes[len(StandardSizes)-1]
	return SheetSizeResult{
		Size:        largest.Name,
		Recommended: largest,
		IsOversized: true,
		BoundingBox: dims,
	}
}
