package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expected    *Duration
		expectedErr bool
	}{
		{name: "number", body: `{"duration":45}`, expected: durationOf("45")},
		{name: "numeric string", body: `{"duration":"45"}`, expected: durationOf("45")},
		{name: "free text", body: `{"duration":"45 minutes"}`, expected: durationOf("45 minutes")},
		{name: "null", body: `{"duration":null}`, expected: nil},
		{name: "absent", body: `{}`, expected: nil},
		{name: "boolean", body: `{"duration":true}`, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateLessonRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, req.Duration)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		duration *Duration
		expected string
	}{
		{name: "whole number", duration: durationOf("45"), expected: `{"duration":45}`},
		{name: "text", duration: durationOf("1 hour"), expected: `{"duration":"1 hour"}`},
		{name: "null", duration: nil, expected: `{"duration":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(struct {
				Duration *Duration `json:"duration"`
			}{tt.duration})

			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))
		})
	}
}

func durationOf(s string) *Duration {
	d := Duration(s)
	return &d
}
