package celestial

// circulationBands holds the latitude boundaries of each cell pattern, keyed
// by cell count. Fast rotators break into irregular bands.
var circulationBands = map[int][]Range{
	1: {{0, 90}},
	3: {{0, 30}, {30, 60}, {60, 90}},
	5: {{0, 23}, {23, 30}, {30, 47}, {47, 56}, {56, 90}},
	7: {{0, 24}, {24, 27}, {27, 31}, {31, 41}, {41, 58}, {58, 71}, {71, 90}},
}

func circulationCellCount(rotationHours float64) int {
	switch {
	case rotationHours >= 48:
		return 1
	case rotationHours >= 6:
		return 3
	case rotationHours >= 3:
		return 7
	case rotationHours > 0:
		return 5
	default:
		return 0
	}
}

func circulationCellBands(cells int) []Range {
	bands := circulationBands[cells]
	out := make([]Range, len(bands))
	copy(out, bands)
	return out
}
