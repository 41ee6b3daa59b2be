package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the JSON envelope around every API reply.
type Response struct {
	Status int `json:"Status"`
	Body   any `json:"Body,omitempty"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	ErrorDescription string `json:"ErrorDescription"`
}

const internalErrorJSON = `{"Status": 500, "Body": {"ErrorDescription": "internal server error"}}`

// WriteResponseWithStatus writes body inside a Response envelope.
func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(Response{Status: status, Body: body})
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, status int, err error) {
	WriteResponseWithStatus(w, status, ErrorResponse{ErrorDescription: err.Error()})
}

// WriteInternalErrorResponse works like http.Error but with a JSON content type.
func WriteInternalErrorResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, internalErrorJSON)
}
