package dto

// QueryRequest - запрос на поиск источников запаха по тексту
type QueryRequest struct {
	Query string `json:"query" validate:"required,min=2,max=500"`
}
