package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSlotTaken signals that a confirmed booking already occupies the
	// requested slot. Callers should refresh their slot list.
	ErrSlotTaken = errors.New("this time slot was just booked, please select another time")

	// ErrSettingsUnavailable signals that the settings singleton could not be
	// loaded; the submission cannot proceed.
	ErrSettingsUnavailable = errors.New("booking settings could not be loaded")

	// ErrSessionNotFound signals a missing or expired wizard session.
	ErrSessionNotFound = errors.New("booking session not found or expired")
)

// ValidationErrors maps field names to human-readable messages so the UI can
// surface them inline per field.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
