package domain

// Extraction cascade stages, in evaluation order.
const (
	StageGazetteer = "gazetteer"
	StageNER       = "ner"
	StageAreaList  = "area_list"
)

// ExtractedLocation - название места, извлечённое из текста запроса
type ExtractedLocation struct {
	Name  string `json:"name"`
	Stage string `json:"stage"`
}

// GeocodedPoint - координаты WGS-84. Отсутствие результата моделируется
// nil-указателем, а не нулевыми координатами.
type GeocodedPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Candidate - запись с расстоянием до точки запроса в метрах
type Candidate struct {
	Record    FacilityRecord
	DistanceM float64
}

// SearchResult - один элемент финальной выдачи
type SearchResult struct {
	Name       string            `json:"name"`
	Category   string            `json:"type"`
	Tags       map[string]string `json:"tags"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	DistanceM  float64           `json:"distance_m"`
	Similarity float64           `json:"similarity"`
}
