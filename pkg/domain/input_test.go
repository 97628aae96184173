package domain

import "testing"

func TestOrderPatchCopiesItems(t *testing.T) {
	items := []OrderItem{{ProductID: "1", Quantity: 1, Price: 5}}
	o := OrderPatch{Products: &items}.Apply(Order{ID: "1"})
	items[0].Quantity = 9
	if o.Products[0].Quantity != 1 {
		t.Fatalf("patched order shares item storage with caller")
	}
}

func TestPatchesLeaveUnsetFields(t *testing.T) {
	u := User{ID: "2", Name: "John Doe", Email: "john@example.com", Role: RoleCustomer}
	got := UserPatch{Role: Ptr(RoleEmployee)}.Apply(u)
	if got.Name != u.Name || got.Email != u.Email || got.Role != RoleEmployee {
		t.Fatalf("user patch = %+v", got)
	}
	p := Product{ID: "1", Name: "Mug", Price: 9.99, Stock: 100}
	gotP := ProductPatch{Stock: Ptr(95)}.Apply(p)
	if gotP.Name != "Mug" || gotP.Price != 9.99 || gotP.Stock != 95 {
		t.Fatalf("product patch = %+v", gotP)
	}
}
