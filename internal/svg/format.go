package svg

import (
	"strconv"
	"strings"

	"geosvg/internal/geom"
)

// formatNumber renders the shortest decimal that parses back to v, with no
// exponent and no trailing zeros. Negative zero renders as 0.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writeCoord(b *strings.Builder, c geom.Coord, sep byte) {
	b.WriteString(formatNumber(c.X))
	b.WriteByte(sep)
	b.WriteString(formatNumber(c.Y))
}

// writeRing writes "Mx yLx y..." with one L per point after the first.
func writeRing(b *strings.Builder, cs []geom.Coord) {
	for i, c := range cs {
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteByte('L')
		}
		writeCoord(b, c, ' ')
	}
}

// writePoints writes "x,y x,y" for a points attribute.
func writePoints(b *strings.Builder, cs []geom.Coord) {
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeCoord(b, c, ',')
	}
}
