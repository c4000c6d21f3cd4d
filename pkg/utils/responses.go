package utils

import (
	"net/http"

	"github.com/goccy/go-json"
)

// Envelope holds the resource-specific keys of a response body.
type Envelope map[string]any

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ResponseJSON writes body as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// ResponseSuccess adds success and status_code to data and writes it.
func ResponseSuccess(w http.ResponseWriter, code int, data Envelope) {
	body := Envelope{
		"success":     true,
		"status_code": code,
	}
	for k, v := range data {
		body[k] = v
	}
	ResponseJSON(w, code, body)
}

// returns 200 OK
func ResponseOK(w http.ResponseWriter, data Envelope) {
	ResponseSuccess(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data Envelope) {
	ResponseSuccess(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// ResponseError writes the failure envelope with the default message for code.
func ResponseError(w http.ResponseWriter, code int) {
	ResponseJSON(w, code, ErrorResponse{
		Success: false,
		Error:   code,
		Message: messageFor(code),
	})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter) {
	ResponseError(w, http.StatusBadRequest)
}

// returns 401 Unauthorized with a machine readable code
func ResponseUnauthorized(w http.ResponseWriter, code, message string) {
	ResponseJSON(w, http.StatusUnauthorized, ErrorResponse{
		Success: false,
		Error:   http.StatusUnauthorized,
		Message: message,
		Code:    code,
	})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter) {
	ResponseError(w, http.StatusNotFound)
}

// returns 422 Unprocessable Entity
func ResponseUnprocessable(w http.ResponseWriter) {
	ResponseError(w, http.StatusUnprocessableEntity)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError)
}

func messageFor(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusTooManyRequests:
		return "too many requests"
	case http.StatusInternalServerError:
		return "internal server error"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return http.StatusText(code)
	}
}
