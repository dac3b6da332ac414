package resp

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSONResponse пишет статус и тело в JSON
func WriteJSONResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError пишет ошибку в виде {"error": "..."}
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSONResponse(w, status, map[string]string{"error": msg})
}
