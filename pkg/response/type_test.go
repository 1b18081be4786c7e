package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"task-management/pkg/response"
)

func TestDateTimeInHealthPayload(t *testing.T) {
	at := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(map[string]any{
		"status":    "healthy",
		"timestamp": response.DateTime(at),
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got, err := time.ParseInLocation(response.DateTimeFormat, out["timestamp"], time.Local)
	if err != nil {
		t.Fatalf("timestamp %q does not match %q: %v", out["timestamp"], response.DateTimeFormat, err)
	}
	if !got.Equal(at) {
		t.Errorf("expected %v, got %v", at, got)
	}
}
