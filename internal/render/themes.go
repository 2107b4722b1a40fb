package render

// Theme holds the visual styling applied to generated chart options
type Theme struct {
	Name            string
	ColorBackground string
	ColorText       string
	ColorBorder     string
	Palette         []string
}

// Themes is the fixed set of selectable themes
var Themes = map[string]Theme{
	"Default": {
		Name:            "Default",
		ColorBackground: "#ffffff",
		ColorText:       "#1f2329",
		ColorBorder:     "#d0d4da",
		Palette:         []string{"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de", "#3ba272", "#fc8452", "#9a60b4"},
	},
	"Dark": {
		Name:            "Dark",
		ColorBackground: "#14161a",
		ColorText:       "#e8eaed",
		ColorBorder:     "#3a3f47",
		Palette:         []string{"#4992ff", "#7cffb2", "#fddd60", "#ff6e76", "#58d9f9", "#05c091", "#ff8a45", "#8d48e3"},
	},
	"Brand Blue": {
		Name:            "Brand Blue",
		ColorBackground: "#f4f8fc",
		ColorText:       "#10243e",
		ColorBorder:     "#b9cbde",
		Palette:         []string{"#0b5394", "#3d85c6", "#6fa8dc", "#9fc5e8", "#cfe2f3", "#073763"},
	},
}

// ThemeNames returns the selectable theme names in stable order
func ThemeNames() []string {
	return []string{"Default", "Dark", "Brand Blue"}
}

// ThemeOrDefault resolves a theme name, falling back to Default
func ThemeOrDefault(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["Default"]
}
