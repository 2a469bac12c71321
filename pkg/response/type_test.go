package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"task-tracker/pkg/response"
)

func TestDateJSON(t *testing.T) {
	d := response.Date(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error marshaling Date: %v", err)
	}
	if string(b) != `"2024-01-03"` {
		t.Errorf("expected \"2024-01-03\", got %s", b)
	}

	var back response.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error unmarshaling Date: %v", err)
	}
	if !time.Time(back).Equal(time.Time(d)) {
		t.Errorf("expected %v, got %v", time.Time(d), time.Time(back))
	}

	if err := json.Unmarshal([]byte(`"03.01.2024"`), &back); err == nil {
		t.Errorf("expected error for non-ISO date")
	}
}

func TestDateTimeMarshalJSON(t *testing.T) {
	dt := response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC))

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) < 15 {
		t.Errorf("marshaled string too short: %s", str)
	}
}
