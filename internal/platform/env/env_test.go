package env

import "testing"

func TestString(t *testing.T) {
	t.Setenv("STEPKIT_TEST_STRING", "value")
	if got := String("STEPKIT_TEST_STRING", "def"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
	if got := String("STEPKIT_TEST_STRING_MISSING", "def"); got != "def" {
		t.Fatalf("expected default, got %q", got)
	}
}

func TestRequire(t *testing.T) {
	t.Setenv("STEPKIT_TEST_REQUIRE", "value")
	got, err := Require("STEPKIT_TEST_REQUIRE")
	if err != nil || got != "value" {
		t.Fatalf("expected value, got %q (%v)", got, err)
	}
	if _, err := Require("STEPKIT_TEST_REQUIRE_MISSING"); err == nil {
		t.Fatalf("expected missing variable to fail")
	}
	t.Setenv("STEPKIT_TEST_REQUIRE", "")
	if _, err := Require("STEPKIT_TEST_REQUIRE"); err == nil {
		t.Fatalf("expected empty variable to fail")
	}
}

func TestBool(t *testing.T) {
	t.Setenv("STEPKIT_TEST_BOOL", "true")
	got, err := Bool("STEPKIT_TEST_BOOL", false)
	if err != nil || !got {
		t.Fatalf("expected true, got %v (%v)", got, err)
	}
	t.Setenv("STEPKIT_TEST_BOOL", "maybe")
	if _, err := Bool("STEPKIT_TEST_BOOL", false); err == nil {
		t.Fatalf("expected parse error")
	}
}
