package opencc

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestZhoCheck(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	cases := []struct {
		input string
		want  Script
	}{
		{"漢字測試", ScriptTraditional},
		{"汉字测试", ScriptSimplified},
		{"hello world", ScriptNeutral},
		{"", ScriptNeutral},
		{"12345 !?", ScriptNeutral},
		// mixed noise around a clear signal
		{"abc 漢字 123", ScriptTraditional},
	}
	for _, c := range cases {
		if got := cc.ZhoCheck(c.input); got != c.want {
			t.Errorf("ZhoCheck(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestZhoCheckBoundsLongInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	// signal only far beyond the sampled prefix must not be seen
	input := strings.Repeat("中", 400) + "漢"
	if got := cc.ZhoCheck(input); got != ScriptNeutral {
		t.Errorf("expected neutral for out-of-sample signal, got %v", got)
	}
}

func TestScriptTag(t *testing.T) {
	if got := ScriptTraditional.Tag().String(); got != "Hant" {
		t.Errorf("got %q", got)
	}
	if got := ScriptSimplified.Tag().String(); got != "Hans" {
		t.Errorf("got %q", got)
	}
	if got := ScriptNeutral.Tag().String(); got != "Zyyy" {
		t.Errorf("got %q", got)
	}
}

func TestScriptString(t *testing.T) {
	if ScriptTraditional.String() != "Traditional" ||
		ScriptSimplified.String() != "Simplified" ||
		ScriptNeutral.String() != "Neutral" {
		t.Error("unexpected Script stringer output")
	}
}

func TestFindMaxUTF8Len(t *testing.T) {
	s := "汉字转换测试" // three bytes per character
	if got := findMaxUTF8Len(s, 7); got != 6 {
		t.Errorf("expected boundary at 6, got %d", got)
	}
	if got := findMaxUTF8Len(s, 100); got != len(s) {
		t.Errorf("expected full length, got %d", got)
	}
	if got := findMaxUTF8Len("abc", 2); got != 2 {
		t.Errorf("ascii boundary, got %d", got)
	}
}
