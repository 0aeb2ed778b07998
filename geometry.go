package motion

// ComputeOffset returns a page's horizontal displacement from the container
// center in pixels: the page's resting slot relative to the current page,
// shifted by the live drag translation. Linear in both dragOffset and the
// index distance.
func ComputeOffset(pageIndex, currentPage int, containerWidth, dragOffset float64) float64 {
	return float64(pageIndex-currentPage)*containerWidth + dragOffset
}

// NormalizedOffset converts a pixel offset to page widths: 0 means centered,
// ±1 fully off-screen adjacent. A degenerate container (width <= 0)
// normalizes to 0 so the frame is skipped instead of divided by zero.
func NormalizedOffset(offset, containerWidth float64) float64 {
	if containerWidth <= 0 {
		return 0
	}
	return offset / containerWidth
}
