package catalog

import "time"

// courseDefaults declares in one place the value every optional course field
// receives when its source file omits it.
var courseDefaults = struct {
	ViewType string
	Audio    string
	Rank     Rank
	Duration string
	Level    string
	Language string
	Rating   Rating
}{
	ViewType: "both",
	Audio:    "english",
	Rank:     RankMid,
	Duration: "N/A",
	Level:    "Beginner",
	Language: "English",
	Rating:   Rating{Average: 4.5},
}

// defaultLastUpdated fills a missing lastUpdated date with the current day.
func defaultLastUpdated(now time.Time) string {
	return now.UTC().Format("2006-01-02")
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
