// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// maxErrorLength caps how much of an error message reaches the client.
const maxErrorLength = 120

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent; log only.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// SafeError sanitizes and truncates error messages before returning them to
// clients. Validation-style errors pass through; anything smelling of
// internals is masked, logged, and replaced with a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := Sanitize(err)

	// エラーメッセージをユーザーに返して良いか判定
	safeMarkers := []string{
		"required",
		"invalid",
		"not found",
		"nothing to update",
		"must be",
		"must not",
		"must use",
		"must have",
		"cannot be",
		"cannot point",
		"validation",
		"unauthorized",
		"unavailable",
		"failed to parse",
	}

	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, marker := range safeMarkers {
		if strings.Contains(lowerMsg, marker) {
			isSafe = true
			break
		}
	}
	if code >= 500 {
		isSafe = false
	}

	if !isSafe && code == http.StatusBadRequest {
		// Downstream store/parse failures surface as 400 with their message,
		// truncated and credential-masked.
		isSafe = true
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": Truncate(msg)})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", msg))
	JSON(w, code, map[string]string{"error": "internal server error"})
}

// Truncate bounds a message to maxErrorLength runes.
func Truncate(msg string) string {
	runes := []rune(msg)
	if len(runes) <= maxErrorLength {
		return msg
	}
	return string(runes[:maxErrorLength])
}
