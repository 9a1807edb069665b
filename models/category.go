package models

// Category is the coarse weather classification reported by the API
// (weather[0].main), plus the NotFound entry used when the city is unknown
type Category string

const (
	Clear    Category = "Clear"
	Rain     Category = "Rain"
	Snow     Category = "Snow"
	Clouds   Category = "Clouds"
	Haze     Category = "Haze"
	Smoke    Category = "Smoke"
	Mist     Category = "Mist"
	Drizzle  Category = "Drizzle"
	NotFound Category = "Not Found"
)

// Icon is the display asset for a category
type Icon struct {
	Asset string `json:"asset"` // image file name under the assets directory
	Glyph string `json:"glyph"` // terminal rendering
}

// registry keeps the lookup order: the first matching entry wins
var registry = []struct {
	category Category
	icon     Icon
}{
	{Clear, Icon{Asset: "Clear.svg", Glyph: "☀"}},
	{Rain, Icon{Asset: "Rain.svg", Glyph: "☂"}},
	{Snow, Icon{Asset: "Snow.svg", Glyph: "❄"}},
	{Clouds, Icon{Asset: "Clouds.svg", Glyph: "☁"}},
	{Haze, Icon{Asset: "Haze.svg", Glyph: "≈"}},
	{Smoke, Icon{Asset: "Smoke.svg", Glyph: "♨"}},
	{Mist, Icon{Asset: "Mist.svg", Glyph: "░"}},
	{Drizzle, Icon{Asset: "Drizzle.svg", Glyph: "⛆"}},
	{NotFound, Icon{Asset: "NotFound.svg", Glyph: "?"}},
}

// Shared assets that are not tied to a category
var (
	SearchIcon      = Icon{Asset: "Search.svg", Glyph: "⌕"}
	LoadingIcon     = Icon{Asset: "Loading.svg", Glyph: "…"}
	TemperatureIcon = Icon{Asset: "Temperature.svg", Glyph: "🌡"}
)

// Categories returns every registered category in lookup order
func Categories() []Category {
	out := make([]Category, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.category)
	}
	return out
}

// IconFor returns the icon registered for c. Unknown categories get the
// zero Icon, which renders as nothing
func IconFor(c Category) Icon {
	for _, e := range registry {
		if e.category == c {
			return e.icon
		}
	}
	return Icon{}
}

// MatchCategory finds the category whose name equals s exactly. The NotFound
// entry is reserved for the API's not-found status and never matches
func MatchCategory(s string) (Category, bool) {
	for _, e := range registry {
		if e.category == NotFound {
			continue
		}
		if string(e.category) == s {
			return e.category, true
		}
	}
	return "", false
}
