package impl

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// ambiguousCities are US city names shared by several states.
var ambiguousCities = []string{
	"kansas city", "springfield", "franklin", "georgetown", "madison",
	"washington", "arlington", "richmond", "chester", "clinton",
	"marion", "salem", "lexington", "auburn", "cambridge", "newport",
	"portland", "jackson", "nashville", "charlotte", "rochester",
	"columbia", "manchester", "birmingham", "savannah", "tallahassee",
}

var usStates = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota", "mississippi",
	"missouri", "montana", "nebraska", "nevada", "new hampshire", "new jersey",
	"new mexico", "new york", "north carolina", "north dakota", "ohio", "oklahoma",
	"oregon", "pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

var stateAbbreviations = []string{
	"al", "ak", "az", "ar", "ca", "co", "ct", "de", "fl", "ga", "hi", "id", "il",
	"in", "ia", "ks", "ky", "la", "me", "md", "ma", "mi", "mn", "ms", "mo", "mt",
	"ne", "nv", "nh", "nj", "nm", "ny", "nc", "nd", "oh", "ok", "or", "pa", "ri",
	"sc", "sd", "tn", "tx", "ut", "vt", "va", "wa", "wv", "wi", "wy",
}

var (
	zipCodePattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	stateNamePattern = regexp.MustCompile(`(?i)\b(` + strings.Join(append(slices.Clone(stateAbbreviations), usStates...), "|") + `)\b`)
)

// locationHints suggests how to rephrase location text that could not be resolved.
func locationHints(text string) []string {
	display := strings.Join(strings.Fields(text), " ")
	lower := strings.ToLower(display)
	if lower == "" {
		return nil
	}

	if isBareState(lower) {
		return []string{
			fmt.Sprintf(`"%s" is a state - try a specific city like "Kansas City, %s" or "Wichita, %s"`, display, display, display),
			fmt.Sprintf(`Or search for a major city within %s (e.g., "Topeka, %s" or "Overland Park, %s")`, display, display, display),
		}
	}

	var hints []string

	// The state is looked for after the city name only, so "Kansas City" alone still asks for one.
	if city, ok := ambiguousCity(lower); ok && !stateNamePattern.MatchString(lower[len(city):]) {
		hints = append(hints, fmt.Sprintf(`Try adding a state: "%s, [state]" (e.g., "%s Kansas" or "%s Missouri")`, display, display, display))
	}

	if !strings.Contains(display, " ") && !strings.Contains(display, ",") && !strings.ContainsFunc(display, unicode.IsDigit) {
		hints = append(hints, `Try being more specific - add a state or neighborhood (e.g., "City, State" or "Street Address, City")`)
	}

	if zipCodePattern.MatchString(display) {
		hints = append(hints, "Try adding a city name along with the zip code for better results")
	}

	return hints
}

func isBareState(lower string) bool {
	return slices.ContainsFunc(usStates, func(state string) bool {
		return lower == state || lower == state+" state"
	})
}

func ambiguousCity(lower string) (string, bool) {
	for _, city := range ambiguousCities {
		if lower == city || strings.HasPrefix(lower, city+" ") || strings.HasPrefix(lower, city+",") {
			return city, true
		}
	}

	return "", false
}
