package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"plantcare/internal/repository"
	"plantcare/internal/schedule"
	"plantcare/internal/service"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("plant 7: %w", gorm.ErrRecordNotFound), http.StatusNotFound},
		{"duplicate task", repository.ErrDuplicateTask, http.StatusConflict},
		{"invalid schedule", &schedule.InvalidScheduleError{PlantID: 3, FrequencyDays: 0}, http.StatusBadRequest},
		{"validation", service.Invalid("name is required"), http.StatusBadRequest},
		{"unknown", fmt.Errorf("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)
			if rec.Code != tt.want {
				t.Errorf("writeError(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}
		})
	}
}

func TestRequestUserID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   uint
	}{
		{"default", "", "", 1},
		{"from header", "42", "", 42},
		{"from query", "", "7", 7},
		{"header wins", "42", "7", 42},
		{"garbage falls back", "abc", "", 1},
		{"zero falls back", "0", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/api/plants"
			if tt.query != "" {
				url += "?userId=" + tt.query
			}
			r := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				r.Header.Set("X-User-ID", tt.header)
			}
			if got := requestUserID(r); got != tt.want {
				t.Errorf("requestUserID() = %d, want %d", got, tt.want)
			}
		})
	}
}
