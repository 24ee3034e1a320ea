package domain

const unknownDescription = "Unknown"

// Option is a labelled choice for a filter control.
// An empty Value means "no filter".
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContinentOptions returns the fixed continent choices offered to users.
func ContinentOptions() []Option {
	return []Option{
		{Label: "All", Value: ""},
		{Label: "Asia", Value: "Asia"},
		{Label: "Africa", Value: "Africa"},
		{Label: "Europe", Value: "Europe"},
		{Label: "North America", Value: "North America"},
		{Label: "South America", Value: "South America"},
		{Label: "Antarctica", Value: "Antarctica"},
		{Label: "Australia", Value: "Australia"},
	}
}

// SubregionOptions returns the fixed subregion choices offered to users.
// The list is not derived from the dataset.
func SubregionOptions() []Option {
	return []Option{
		{Label: "All", Value: ""},
		{Label: "Southern Asia", Value: "Southern Asia"},
		{Label: "Eastern Africa", Value: "Eastern Africa"},
	}
}
