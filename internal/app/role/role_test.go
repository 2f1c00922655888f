package role

import "testing"

func TestFromIsAdmin(t *testing.T) {
	if FromIsAdmin(true) != Admin {
		t.Fatal("expected Admin")
	}
	if FromIsAdmin(false) != Customer {
		t.Fatal("expected Customer")
	}
}

func TestIsAdmin(t *testing.T) {
	if !Admin.IsAdmin() {
		t.Fatal("Admin must be admin")
	}
	if Customer.IsAdmin() {
		t.Fatal("Customer must not be admin")
	}
}

func TestString(t *testing.T) {
	if Admin.String() != "admin" || Customer.String() != "customer" {
		t.Fatalf("unexpected names: %s, %s", Admin, Customer)
	}
}
