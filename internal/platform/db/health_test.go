package db

import (
	"encoding/json"
	"testing"
)

func TestHealthReport_JSONShape(t *testing.T) {
	report := &HealthReport{
		Status: "healthy",
		PingMS: 3,
		Pool: &PoolStats{
			TotalConns:      10,
			IdleConns:       5,
			AcquiredConns:   5,
			MaxConns:        20,
			AcquireCount:    100,
			AcquireDuration: "1.5s",
		},
	}

	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if string(decoded["status"]) != `"healthy"` {
		t.Errorf("expected status healthy, got %s", decoded["status"])
	}
	if string(decoded["ping_ms"]) != "3" {
		t.Errorf("expected ping_ms 3, got %s", decoded["ping_ms"])
	}
	if _, ok := decoded["error"]; ok {
		t.Error("expected error to be omitted from a healthy report")
	}

	var pool map[string]json.RawMessage
	if err := json.Unmarshal(decoded["pool"], &pool); err != nil {
		t.Fatalf("unmarshal pool failed: %v", err)
	}
	for _, key := range []string{
		"total_conns", "idle_conns", "acquired_conns", "max_conns",
		"acquire_count", "acquire_duration",
	} {
		if _, ok := pool[key]; !ok {
			t.Errorf("expected key %q in pool payload", key)
		}
	}
	if string(pool["acquire_duration"]) != `"1.5s"` {
		t.Errorf("expected acquire_duration \"1.5s\", got %s", pool["acquire_duration"])
	}
}

func TestHealthReport_UnreachableStore(t *testing.T) {
	report := &HealthReport{
		Status: "unhealthy",
		PingMS: 5000,
		Error:  "dial tcp: connection refused",
		Pool:   &PoolStats{MaxConns: 20},
	}

	raw, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(decoded["status"]) != `"unhealthy"` {
		t.Errorf("expected status unhealthy, got %s", decoded["status"])
	}
	if string(decoded["error"]) != `"dial tcp: connection refused"` {
		t.Errorf("expected failure detail in report, got %s", decoded["error"])
	}
}
