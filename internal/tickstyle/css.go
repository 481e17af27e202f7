package tickstyle

import (
	"fmt"
	"strconv"
	"strings"
)

// CSS renders r as CSS declarations, one per line.
func (r RenderSpec) CSS() string {
	if !r.Hatched() {
		return fmt.Sprintf("background: %s;", r.Fill)
	}

	var b strings.Builder
	if r.Border != nil {
		fmt.Fprintf(&b, "border: %dpx %s %s;\n", r.Border.Width, r.Border.Style, r.Border.Color)
	}
	fmt.Fprintf(&b, "background-size: %dpx %dpx;\n", r.TileSize.Width, r.TileSize.Height)
	fmt.Fprintf(&b, "opacity: %s;\n", strconv.FormatFloat(r.Opacity, 'f', -1, 64))

	layers := make([]string, 0, len(r.Background))
	for _, g := range r.Background {
		layers = append(layers, g.css())
	}
	fmt.Fprintf(&b, "background-image: %s;", strings.Join(layers, ", "))
	return b.String()
}

func (g Gradient) css() string {
	parts := make([]string, 0, len(g.Stops)+1)
	parts = append(parts, strconv.Itoa(g.Angle)+"deg")
	for _, stop := range g.Stops {
		parts = append(parts, fmt.Sprintf("%s %s%%", stop.Color, strconv.FormatFloat(stop.Offset, 'f', -1, 64)))
	}
	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}
