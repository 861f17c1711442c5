package recorder

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"NeonBoard/internal/state"
)

const expressionHeader = "// Paste this expression in After Effects Mask Path property\n" +
	"// This expression recreates the drawing path in real-time\n\n"

const expressionBody = "// Build cumulative path up to current time\n" +
	"var currentTime = time;\n" +
	"var vertices = [];\n" +
	"var inTangents = [];\n" +
	"var outTangents = [];\n\n" +
	"for (var i = 0; i < points.length; i++) {\n" +
	"  if (points[i][0] <= currentTime) {\n" +
	"    vertices.push(points[i][1]);\n" +
	"    inTangents.push([0, 0]);\n" +
	"    outTangents.push([0, 0]);\n" +
	"  }\n" +
	"}\n\n" +
	"// Return the shape path\n" +
	"createPath(vertices, inTangents, outTangents, false);\n"

// Expression renders points, already in time order, as a mask path
// expression that reveals each vertex once the composition time reaches it.
func Expression(points []state.TimedPoint) string {
	var b strings.Builder
	b.WriteString(expressionHeader)
	b.WriteString("var points = [\n")
	for i, p := range points {
		b.WriteString("  [")
		b.WriteString(FormatFixed(p.T, 3))
		b.WriteString(", [")
		b.WriteString(FormatFixed(p.X, 2))
		b.WriteString(", ")
		b.WriteString(FormatFixed(p.Y, 2))
		b.WriteString("]]")
		if i < len(points)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("];\n\n")
	b.WriteString(expressionBody)
	return b.String()
}

// FormatFixed formats v with exactly digits decimals. Values exactly halfway
// between two representable results round away from zero; everything else
// rounds to the nearest.
func FormatFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		v = 0 // drop the sign of -0
	}

	// FormatFloat already rounds the exact binary value correctly; only
	// exact ties, which it sends to even, need fixing.
	scaled := new(big.Rat).SetFloat64(math.Abs(v))
	scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)))
	if scaled.Denom().Cmp(big.NewInt(2)) != 0 {
		return strconv.FormatFloat(v, 'f', digits, 64)
	}

	// scaled is n + 1/2, so the numerator is 2n+1 and away from zero is n+1.
	n := new(big.Int).Add(scaled.Num(), big.NewInt(1))
	n.Rsh(n, 1)
	s := n.String()
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	if digits > 0 {
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}
