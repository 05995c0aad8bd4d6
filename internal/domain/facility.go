package domain

import "encoding/json"

// Geometry categories kept during ingestion. Features of any other
// geometry kind are dropped and never reach the record store.
const (
	CategoryPoint   = "Point"
	CategoryPolygon = "Polygon"
)

// TagKeys - the fixed whitelist of OSM attribute keys carried on a record.
var TagKeys = []string{
	"amenity", "man_made", "landuse", "industrial",
	"power", "plant:source", "plant:output:electricity", "operator",
}

// FacilityRecord - одна физическая структура (точка или полигон) из набора данных
type FacilityRecord struct {
	Name      string            `json:"name"`
	Category  string            `json:"type"`
	Tags      map[string]string `json:"tags"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	AreaM2    float64           `json:"area_m2"`

	// TagsValid is false when the stored tags column could not be parsed
	// as a JSON object. Such records stay in the store for spatial search
	// but are excluded from keyword gating and relevance scoring.
	TagsValid bool `json:"-"`
}

// ParseTags strictly decodes a stored tags column value. The column holds
// a JSON-encoded object; anything else is malformed data, not an error
// that should abort processing.
func ParseTags(raw string) (map[string]string, bool) {
	if raw == "" {
		return map[string]string{}, true
	}
	var tags map[string]string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, false
	}
	return tags, true
}

// Document returns the combined descriptive text used to index the record:
// name, category label and tag values joined by whitespace. A missing name
// or tag set contributes an empty string, never a null token.
func (r FacilityRecord) Document() string {
	doc := r.Name + " " + r.Category
	for _, k := range TagKeys {
		if v, ok := r.Tags[k]; ok {
			doc += " " + v
		}
	}
	return doc
}
