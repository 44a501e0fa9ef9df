package tui

// Center returns a centered region of given size within outer, clipped to outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// SplitH splits region into side-by-side columns by ratios
// Ratios are normalized to their sum; columns always cover the full width
func SplitH(r Region, ratios ...float64) []Region {
	spans := splitSpans(r.W, ratios)
	if spans == nil {
		return nil
	}
	regions := make([]Region, len(spans))
	for i, s := range spans {
		regions[i] = r.Sub(s[0], 0, s[1], r.H)
	}
	return regions
}

// SplitV splits region into stacked rows by ratios
func SplitV(r Region, ratios ...float64) []Region {
	spans := splitSpans(r.H, ratios)
	if spans == nil {
		return nil
	}
	regions := make([]Region, len(spans))
	for i, s := range spans {
		regions[i] = r.Sub(0, s[0], r.W, s[1])
	}
	return regions
}

// splitSpans returns {offset, size} per ratio
// Boundaries come from the cumulative ratio so rounding never accumulates into gaps
func splitSpans(total int, ratios []float64) [][2]int {
	if len(ratios) == 0 {
		return nil
	}

	var sum float64
	for _, ratio := range ratios {
		sum += max(ratio, 0)
	}
	if sum <= 0 {
		sum = 1
	}

	spans := make([][2]int, len(ratios))
	var cum float64
	prev := 0
	for i, ratio := range ratios {
		cum += max(ratio, 0)
		end := total
		if i < len(ratios)-1 {
			end = min(int(float64(total)*cum/sum), total)
		}
		spans[i] = [2]int{prev, end - prev}
		prev = end
	}
	return spans
}
