package errors

import "net/http"

var (
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid query text",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid search radius value",
		http.StatusBadRequest,
	)

	ErrArtifactError = New(
		"ARTIFACT_ERROR",
		"Knowledge base artifact is missing or corrupt",
		http.StatusInternalServerError,
	)

	ErrGeocoderError = New(
		"GEOCODER_ERROR",
		"Geocoding service call failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
