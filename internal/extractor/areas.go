package extractor

import (
	"regexp"
	"strings"

	"github.com/odor-source-service/internal/domain"
)

// ahmedabadAreas - известные районы Ахмадабада. Порядок списка служит
// разрешением неоднозначностей: возвращается первый совпавший элемент.
var ahmedabadAreas = []string{
	"Navrangpura", "Vastrapur", "Satellite", "Bopal", "Maninagar",
	"Chandkheda", "Thaltej", "Bodakdev", "Ghatlodia", "Isanpur",
	"Vejalpur", "Gota", "Naranpura", "Sabarmati", "Ranip",
	"Ellis Bridge", "Paldi", "Shahibaug", "Memnagar", "Jodhpur",
	"Ambawadi", "Kalupur", "Naroda", "Odhav", "Vatva", "Nikol",
	"Gheekanta", "Jamalpur", "Sola", "Sarkhej", "Hansol", "Asarwa",
	"Dariapur", "Gomtipur", "Behrampura", "Raipur", "Vastral",
	"Amraiwadi", "New Ranip", "Lambha", "Rakhial", "Kubernagar",
	"Chandlodia", "SindhuBhavan",
}

type areaListStrategy struct {
	patterns []*regexp.Regexp
}

// NewAreaListStrategy - сопоставление с локальным списком районов.
// Название района совпадает, если оно встречается как целый ведущий
// токен, за которым могут идти дополнительные буквенно-цифровые символы
// ("Navrangpura Road" и "Navrangpurax" совпадают с "Navrangpura").
func NewAreaListStrategy() Strategy {
	patterns := make([]*regexp.Regexp, len(ahmedabadAreas))
	for i, area := range ahmedabadAreas {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(area)) + `\w*\b`)
	}
	return &areaListStrategy{patterns: patterns}
}

func (s *areaListStrategy) Name() string {
	return domain.StageAreaList
}

func (s *areaListStrategy) Extract(query string) (string, bool) {
	lower := strings.ToLower(query)
	for i, p := range s.patterns {
		if p.MatchString(lower) {
			// The canonical list entry is returned, not the matched text.
			return ahmedabadAreas[i], true
		}
	}
	return "", false
}
