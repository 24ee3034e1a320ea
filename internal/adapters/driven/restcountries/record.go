package restcountries

import "github.com/custodia-labs/countries-cli/internal/core/domain"

// countryRecord is the v3.1 wire format. Only the fields the
// application reads are declared; everything else is ignored.
type countryRecord struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Area       float64  `json:"area"`
	Continents []string `json:"continents"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Flag       string   `json:"flag"`
	Flags      struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
		Alt string `json:"alt"`
	} `json:"flags"`
}

func (r *countryRecord) toDomain() domain.Country {
	return domain.Country{
		Name:         r.Name.Common,
		OfficialName: r.Name.Official,
		Capitals:     r.Capital,
		Population:   r.Population,
		Area:         r.Area,
		Continents:   r.Continents,
		Region:       r.Region,
		Subregion:    r.Subregion,
		FlagEmoji:    r.Flag,
		Flag: domain.FlagImage{
			SVG: r.Flags.SVG,
			PNG: r.Flags.PNG,
			Alt: r.Flags.Alt,
		},
	}
}
