package apperr

import "net/http"

// HTTPStatus maps an error code to the status the API layer should return.
// Unknown or uncoded errors map to 500.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeState:
		return http.StatusConflict
	case CodeConnection:
		return http.StatusBadGateway
	case CodeIO:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
