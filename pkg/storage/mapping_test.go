package storage

import (
	"testing"
	"time"
)

func TestObjectName(t *testing.T) {
	cases := map[string]string{
		"":            "auth_user.json",
		"shop":        "shop/auth_user.json",
		"/shop/data/": "shop/data/auth_user.json",
	}
	for prefix, want := range cases {
		if got := objectName(prefix, "auth_user"); got != want {
			t.Fatalf("objectName(%q) = %q, want %q", prefix, got, want)
		}
	}
}

func TestNewKVEntryRejectsNonJSON(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entry, err := newKVEntry("ecommerce_nextUserId", "4", now)
	if err != nil {
		t.Fatalf("counter value should be valid JSON: %v", err)
	}
	if string(entry.Value) != "4" || !entry.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, err := newKVEntry("k", "{broken", now); err == nil {
		t.Fatalf("expected error for invalid JSON")
	}
}
