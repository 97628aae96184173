package store

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestDemoDigest(t *testing.T) {
	digest, err := demoDigest()
	if err != nil {
		t.Fatalf("demo digest: %v", err)
	}
	if cost, err := bcrypt.Cost(digest); err != nil || cost != bcrypt.MinCost {
		t.Fatalf("digest cost = %d (%v), want %d", cost, err, bcrypt.MinCost)
	}
	if !checkDemoPassword(DemoPassword) {
		t.Fatalf("demo secret rejected")
	}
	for _, candidate := range []string{"", "password12", "password1234", strings.Repeat("x", 100)} {
		if checkDemoPassword(candidate) {
			t.Fatalf("checkDemoPassword(%q) accepted", candidate)
		}
	}
}
