package model

import "testing"

func TestCategoryByPath(t *testing.T) {
	cat, ok := CategoryByPath("tools-equipment")
	if !ok || cat.Name != "Tools & Equipment" {
		t.Fatalf("got %v ok=%v", cat, ok)
	}
	if _, ok := CategoryByPath("boats"); ok {
		t.Fatal("unknown path must not resolve")
	}
}

func TestCategoryPath(t *testing.T) {
	if p := CategoryPath("Electronics"); p != "electronics" {
		t.Fatalf("path = %q", p)
	}
	// free-text categories outside the fixed set have no path
	if p := CategoryPath("electronics"); p != "" {
		t.Fatalf("case-sensitive match violated, path = %q", p)
	}
}
