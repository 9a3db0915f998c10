package strings

import (
	"testing"

	"workdays/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	// non-empty slice should be returned as-is
	in := []int{1, 2, 3}
	def := []int{9}
	got := IfEmpty(in, def)
	if len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	// empty slice should fall back to default
	var empty []string
	def2 := []string{"x"}
	got2 := IfEmpty(empty, def2)
	if len(got2) != 1 || got2[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got2)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("workdate", "name"); got != "workdate" {
		t.Fatalf("MustString altered value: %q", got)
	}
	testkit.MustPanic(t, func() { MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"workdate", "/workdate"},
		{"/workdate", "/workdate"},
		{" /workdate/ ", "/workdate"},
		{"//holidays//", "/holidays"},
	}
	for _, c := range cases {
		if got := MustPrefix(c.in); got != c.want {
			t.Errorf("MustPrefix(%q)=%q want %q", c.in, got, c.want)
		}
	}
	testkit.MustPanic(t, func() { MustPrefix("  ") })
	testkit.MustPanic(t, func() { MustPrefix("/") })
}

func TestEmptyToNil(t *testing.T) {
	t.Parallel()

	if EmptyToNil("  ") != "" {
		t.Fatal("whitespace should collapse to empty")
	}
	if EmptyToNil("x") != "x" {
		t.Fatal("content should pass through")
	}
}

func TestDeref(t *testing.T) {
	t.Parallel()

	if Deref(nil) != "" {
		t.Fatal("nil pointer should deref to empty")
	}
	s := "v"
	if Deref(&s) != "v" {
		t.Fatal("pointer should deref to value")
	}
}
