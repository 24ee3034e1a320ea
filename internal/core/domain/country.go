package domain

import "strings"

// Country is a single record from the country listing.
// Records are read-only once decoded and carry no identity; duplicates
// returned upstream are kept as they are.
type Country struct {
	// Name is the common (short) name, e.g. "Germany".
	Name string

	// OfficialName is the full official name, e.g. "Federal Republic of Germany".
	OfficialName string

	// Capitals lists the capital cities. Most countries have one.
	Capitals []string

	// Population is the head count. Zero when the source omits it.
	Population int64

	// Area is the land area in square kilometres. Zero when the source omits it.
	Area float64

	// Continents lists the continents the country belongs to.
	// Nil when the source omits it.
	Continents []string

	// Region is the broad UN region, e.g. "Europe".
	Region string

	// Subregion is the UN subregion, e.g. "Western Europe". Optional.
	Subregion string

	// FlagEmoji is the unicode flag, e.g. "🇩🇪". Optional.
	FlagEmoji string

	// Flag holds the flag image references.
	Flag FlagImage
}

// FlagImage holds references to the rendered flag of a country.
type FlagImage struct {
	SVG string
	PNG string
	Alt string
}

// URI returns the preferred flag image reference, SVG first.
func (f FlagImage) URI() string {
	if f.SVG != "" {
		return f.SVG
	}
	return f.PNG
}

// Capital returns the capitals joined for display.
func (c Country) Capital() string {
	return strings.Join(c.Capitals, ", ")
}

// InContinent reports whether continent is one of the country's continents.
// The match is exact and case-sensitive.
func (c Country) InContinent(continent string) bool {
	for _, name := range c.Continents {
		if name == continent {
			return true
		}
	}
	return false
}

// Metric returns the numeric value a ranking mode orders by.
// RankingNone and unknown modes yield 0.
func (c Country) Metric(mode RankingMode) float64 {
	switch mode {
	case RankingPopulation:
		return float64(c.Population)
	case RankingArea:
		return c.Area
	default:
		return 0
	}
}
