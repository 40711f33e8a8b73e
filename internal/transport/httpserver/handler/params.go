package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const dateLayout = "2006-01-02"

func parseIDParam(r *http.Request, name string) (uint, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(parsed), nil
}

func parseIntParam(value string, fallback int) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("invalid int")
	}
	return parsed, nil
}

// parsePagination reads skip/limit query parameters with the defaults the
// original API used.
func parsePagination(r *http.Request) (offset, limit int, err error) {
	query := r.URL.Query()
	offset, err = parseIntParam(query.Get("skip"), 0)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid skip")
	}
	limit, err = parseIntParam(query.Get("limit"), 100)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid limit")
	}
	return offset, limit, nil
}

func parseDateField(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

// parseTimeField accepts HH:MM or HH:MM:SS and normalizes to HH:MM:SS.
func parseTimeField(value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil, nil
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			normalized := parsed.Format("15:04:05")
			return &normalized, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", trimmed)
}
