package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// JSON writes any body with the given status.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// OK writes a 200 envelope with ok:true merged over the given payload.
func OK(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Fail writes an {ok:false, error} envelope.
func Fail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"ok": false, "error": msg})
}

// Error maps a service error onto the response taxonomy: missing
// configuration → 500 naming the key, validation → 400 naming the field,
// upstream failure → the upstream status plus its body, anything else →
// generic 500 with the fallback message and no internal detail leaked.
func Error(w http.ResponseWriter, err error, fallback string) {
	var cfgErr *ConfigError
	var valErr *ValidationError
	var upErr *UpstreamError
	switch {
	case errors.As(err, &cfgErr):
		Fail(w, http.StatusInternalServerError, cfgErr.Error())
	case errors.As(err, &valErr):
		Fail(w, http.StatusBadRequest, valErr.Error())
	case errors.As(err, &upErr):
		status := upErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		JSON(w, status, map[string]any{"ok": false, "error": fallback, "details": upErr.Body})
	default:
		log.Printf("erro interno: %v", err)
		Fail(w, http.StatusInternalServerError, fallback)
	}
}
