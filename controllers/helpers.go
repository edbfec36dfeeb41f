package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"shopstack-backend/media"
)

// parseDecimal reads an optional decimal form field; empty means zero.
func parseDecimal(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// uploadStatus picks the status code for a failed attachment save.
func uploadStatus(err error) int {
	if errors.Is(err, media.ErrUnsupportedFormat) || errors.Is(err, media.ErrTooLarge) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
