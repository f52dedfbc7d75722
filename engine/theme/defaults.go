package theme

import "github.com/npillmayer/ctext/core/font"

// Default returns a new instance of the default theme. Its tokens follow
// the conventions of common mobile design systems. The default theme has
// neither font aliases nor registered font faces.
func Default() *Theme {
	th := &Theme{
		FontSizes: map[string]float64{
			"2xs": 10, "xs": 12, "sm": 14, "md": 16, "lg": 18, "xl": 20,
			"2xl": 24, "3xl": 30, "4xl": 36, "5xl": 48, "6xl": 60,
			"7xl": 72, "8xl": 96, "9xl": 128,
		},
		LineHeights: map[string]string{
			"2xs": "1em", "xs": "1.125em", "sm": "1.25em", "md": "1.375em",
			"lg": "1.5em", "xl": "1.75em", "2xl": "2em", "3xl": "2.5em",
			"4xl": "3em", "5xl": "4em",
		},
		LetterSpacings: map[string]string{
			"xs": "-0.05em", "sm": "-0.025em", "md": "0", "lg": "0.025em",
			"xl": "0.05em", "2xl": "0.1em",
		},
		FontWeights: map[string]int{
			"hairline":   100,
			"thin":       200,
			"light":      300,
			"normal":     int(font.WeightNormal),
			"medium":     500,
			"semibold":   600,
			"bold":       int(font.WeightBold),
			"extrabold":  800,
			"black":      900,
			"extraBlack": 950,
		},
		Fonts:      map[string]any{},
		FontConfig: font.Table{},
		Colors: map[string]string{
			"white":       "#FFFFFF",
			"black":       "#000000",
			"transparent": "transparent",
		},
		BaseStyle: BaseStyle{
			FontWeight: "normal",
			FontStyle:  string(font.StyleNormal),
			FontSize:   "md",
			Color:      "gray.900",
		},
	}
	addSwatch(th.Colors, "blue", "#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa",
		"#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a")
	addSwatch(th.Colors, "red", "#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171",
		"#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d")
	addSwatch(th.Colors, "green", "#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80",
		"#22c55e", "#16a34a", "#15803d", "#166534", "#14532d")
	addSwatch(th.Colors, "gray", "#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af",
		"#6b7280", "#4b5563", "#374151", "#1f2937", "#111827")
	return th
}

var swatchShades = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

func addSwatch(colors map[string]string, name string, shades ...string) {
	for i, c := range shades {
		colors[name+"."+swatchShades[i]] = c
	}
}
