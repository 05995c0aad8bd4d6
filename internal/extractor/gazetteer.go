package extractor

import (
	"regexp"

	"github.com/odor-source-service/internal/domain"
)

// cities - встроенный газетир известных городов. Порядок списка -
// порядок разрешения неоднозначностей.
var cities = []string{
	// Gujarat
	"Ahmedabad", "Gandhinagar", "Surat", "Vadodara", "Rajkot", "Bhavnagar",
	"Jamnagar", "Junagadh", "Anand", "Nadiad", "Mehsana", "Morbi",
	// Major Indian cities
	"Mumbai", "New Delhi", "Delhi", "Bengaluru", "Bangalore", "Hyderabad",
	"Chennai", "Kolkata", "Pune", "Jaipur", "Lucknow", "Kanpur", "Nagpur",
	"Indore", "Bhopal", "Patna", "Kochi", "Coimbatore", "Chandigarh",
	// A handful of world capitals the tagger tends to miss
	"London", "Paris", "Berlin", "Tokyo", "Singapore", "Dubai", "New York",
}

type gazetteerStrategy struct {
	patterns []*regexp.Regexp
}

// NewGazetteerStrategy - детектор городов по встроенному списку.
// Совпадение - целое слово без учёта регистра; возвращается каноническое
// написание из списка.
func NewGazetteerStrategy() Strategy {
	patterns := make([]*regexp.Regexp, len(cities))
	for i, city := range cities {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(city) + `\b`)
	}
	return &gazetteerStrategy{patterns: patterns}
}

func (s *gazetteerStrategy) Name() string {
	return domain.StageGazetteer
}

func (s *gazetteerStrategy) Extract(query string) (string, bool) {
	for i, p := range s.patterns {
		if p.MatchString(query) {
			return cities[i], true
		}
	}
	return "", false
}
