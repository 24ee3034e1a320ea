package domain

import (
	"fmt"
	"strings"
)

// TopN is the number of records kept by a ranking.
const TopN = 10

// RankingMode selects a top-N ranking of the working set.
type RankingMode string

// Available ranking modes.
const (
	// RankingNone leaves the working set unranked.
	RankingNone RankingMode = ""

	// RankingPopulation keeps the TopN most populous countries.
	RankingPopulation RankingMode = "population"

	// RankingArea keeps the TopN largest countries by area.
	RankingArea RankingMode = "area"
)

// IsValid returns true if the ranking mode is recognised.
func (m RankingMode) IsValid() bool {
	switch m {
	case RankingNone, RankingPopulation, RankingArea:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m RankingMode) String() string {
	if m == RankingNone {
		return "none"
	}
	return string(m)
}

// Description returns the label used on the ranking buttons.
func (m RankingMode) Description() string {
	switch m {
	case RankingNone:
		return "No ranking"
	case RankingPopulation:
		return "Top 10 by Population"
	case RankingArea:
		return "Top 10 by Area"
	default:
		return unknownDescription
	}
}

// ParseRankingMode converts user input into a RankingMode.
// Empty input and "none" both map to RankingNone.
func ParseRankingMode(s string) (RankingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return RankingNone, nil
	case string(RankingPopulation):
		return RankingPopulation, nil
	case string(RankingArea):
		return RankingArea, nil
	default:
		return RankingNone, fmt.Errorf("%w: unknown ranking mode %q", ErrInvalidInput, s)
	}
}

// Selection holds the user-controlled filter parameters.
//
// Continent and Subregion are mutually exclusive: the transition methods
// clear one whenever the other is set to a non-empty value. Selection is a
// value type; every transition returns a new Selection.
type Selection struct {
	// Continent restricts results to one continent. Empty means no filter.
	Continent string

	// Subregion restricts results to one subregion. Empty means no filter.
	Subregion string

	// Ranking truncates the working set to its TopN by a metric.
	Ranking RankingMode

	// Alphabetical sorts the final working set by common name.
	Alphabetical bool
}

// WithContinent returns a copy with the continent filter set.
// A non-empty continent clears the subregion filter.
func (s Selection) WithContinent(continent string) Selection {
	s.Continent = continent
	if continent != "" {
		s.Subregion = ""
	}
	return s
}

// WithSubregion returns a copy with the subregion filter set.
// A non-empty subregion clears the continent filter.
func (s Selection) WithSubregion(subregion string) Selection {
	s.Subregion = subregion
	if subregion != "" {
		s.Continent = ""
	}
	return s
}

// WithRanking returns a copy with the ranking mode set.
func (s Selection) WithRanking(mode RankingMode) Selection {
	s.Ranking = mode
	return s
}

// ToggleAlphabetical returns a copy with the alphabetical flag flipped.
func (s Selection) ToggleAlphabetical() Selection {
	s.Alphabetical = !s.Alphabetical
	return s
}

// Validate checks a selection built outside the transition methods,
// such as one assembled from command-line flags.
func (s Selection) Validate() error {
	if s.Continent != "" && s.Subregion != "" {
		return ErrMutuallyExclusive
	}
	if !s.Ranking.IsValid() {
		return fmt.Errorf("%w: unknown ranking mode %q", ErrInvalidInput, string(s.Ranking))
	}
	return nil
}

// IsZero returns true when no filter, ranking or sort is active.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

// String summarises the active selection, e.g. "continent=Africa, top 10 by population".
func (s Selection) String() string {
	var parts []string
	if s.Continent != "" {
		parts = append(parts, "continent="+s.Continent)
	}
	if s.Subregion != "" {
		parts = append(parts, "subregion="+s.Subregion)
	}
	if s.Ranking != RankingNone {
		parts = append(parts, strings.ToLower(s.Ranking.Description()))
	}
	if s.Alphabetical {
		parts = append(parts, "alphabetical")
	}
	if len(parts) == 0 {
		return "all countries"
	}
	return strings.Join(parts, ", ")
}
