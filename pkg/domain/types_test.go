package domain

import "testing"

func TestOrderCloneIsIndependent(t *testing.T) {
	o := Order{ID: "1", Products: []OrderItem{{ProductID: "1", Quantity: 2}}}
	c := o.Clone()
	c.Products[0].Quantity = 7
	if o.Products[0].Quantity != 2 {
		t.Fatalf("clone shares item storage with original")
	}
}

func TestAuthUserFrom(t *testing.T) {
	u := User{ID: "1", Name: "Admin User", Email: "admin@shop.com", Role: RoleAdmin}
	want := AuthUser{ID: "1", Name: "Admin User", Email: "admin@shop.com", Role: RoleAdmin}
	if got := AuthUserFrom(u); got != want {
		t.Fatalf("AuthUserFrom = %+v, want %+v", got, want)
	}
}
