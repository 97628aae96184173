package domain

import "testing"

func TestOrderTotalRoundsToCents(t *testing.T) {
	items := []OrderItem{
		{ProductID: "2", ProductName: "Smart Watch", Quantity: 1, Price: 299.99},
		{ProductID: "3", ProductName: "Coffee Maker", Quantity: 1, Price: 89.99},
	}
	if got := OrderTotal(items); got != 389.98 {
		t.Fatalf("total = %v, want 389.98", got)
	}
	if got := OrderTotal([]OrderItem{{Quantity: 3, Price: 0.1}}); got != 0.3 {
		t.Fatalf("total = %v, want 0.3", got)
	}
	if got := OrderTotal(nil); got != 0 {
		t.Fatalf("empty total = %v, want 0", got)
	}
}
