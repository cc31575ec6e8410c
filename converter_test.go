package opencc

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/laisuk/opencc-fmmseg-sub000/dicts"
)

// testStore builds a miniature dictionary set that exercises every
// round combination used by the profile methods.
func testStore() *dicts.Store {
	s := dicts.NewStore()
	s.STCharacters = dicts.FromPairs([]dicts.Pair{
		{Key: "汉", Value: "漢"},
		{Key: "测", Value: "測"},
		{Key: "试", Value: "試"},
	})
	s.STPhrases = dicts.FromPairs([]dicts.Pair{
		{Key: "转换", Value: "轉換"},
	})
	s.TSCharacters = dicts.FromPairs([]dicts.Pair{
		{Key: "漢", Value: "汉"},
		{Key: "測", Value: "测"},
		{Key: "試", Value: "试"},
	})
	s.TSPhrases = dicts.FromPairs([]dicts.Pair{
		{Key: "轉換", Value: "转换"},
	})
	s.TWVariants = dicts.FromPairs([]dicts.Pair{
		{Key: "裏", Value: "裡"},
	})
	s.TWVariantsRev = dicts.FromPairs([]dicts.Pair{
		{Key: "裡", Value: "裏"},
	})
	s.TWPhrases = dicts.FromPairs([]dicts.Pair{
		{Key: "軟件", Value: "軟體"},
	})
	s.TWPhrasesRev = dicts.FromPairs([]dicts.Pair{
		{Key: "軟體", Value: "軟件"},
	})
	s.HKVariants = dicts.FromPairs([]dicts.Pair{
		{Key: "着", Value: "著"},
	})
	s.HKVariantsRev = dicts.FromPairs([]dicts.Pair{
		{Key: "著", Value: "着"},
	})
	s.JPVariants = dicts.FromPairs([]dicts.Pair{
		{Key: "國", Value: "国"},
	})
	s.JPVariantsRev = dicts.FromPairs([]dicts.Pair{
		{Key: "国", Value: "國"},
	})
	return s
}

func TestS2T(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	if got := cc.S2T("汉字转换测试", false); got != "漢字轉換測試" {
		t.Errorf("got %q", got)
	}
}

func TestT2S(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	if got := cc.T2S("漢字轉換測試", false); got != "汉字转换测试" {
		t.Errorf("got %q", got)
	}
}

func TestS2TWRoundComposition(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	s := testStore()
	// round 1 produces 漢, round 2 rewrites 裏 from round 1's output
	s.STCharacters = dicts.FromPairs([]dicts.Pair{
		{Key: "汉", Value: "漢"},
		{Key: "里", Value: "裏"},
	})
	cc := New(s)
	if got := cc.S2TW("汉里", false); got != "漢裡" {
		t.Errorf("expected both rounds to apply, got %q", got)
	}
}

func TestS2TWPThreeRounds(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	s := testStore()
	s.STPhrases = dicts.FromPairs([]dicts.Pair{
		{Key: "软件", Value: "軟件"},
	})
	cc := New(s)
	// 软件 -> 軟件 (round 1) -> 軟體 (round 2, Taiwanese idiom)
	if got := cc.S2TWP("软件", false); got != "軟體" {
		t.Errorf("got %q", got)
	}
}

func TestTW2SP(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	// 軟體 -> 軟件 (round 1 phrase reversal); round 2 leaves it alone
	if got := cc.TW2SP("軟體", false); got != "軟件" {
		t.Errorf("got %q", got)
	}
}

func TestHKRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	if got := cc.T2HK("着"); got != "著" {
		t.Errorf("T2HK got %q", got)
	}
	if got := cc.HK2T("著"); got != "着" {
		t.Errorf("HK2T got %q", got)
	}
}

func TestJPRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	if got := cc.T2JP("國"); got != "国" {
		t.Errorf("T2JP got %q", got)
	}
	if got := cc.JP2T("国"); got != "國" {
		t.Errorf("JP2T got %q", got)
	}
}

func TestPunctuationPass(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	if got := cc.S2T("“汉”", true); got != "「漢」" {
		t.Errorf("got %q", got)
	}
	if got := cc.T2S("「漢」", true); got != "“汉”" {
		t.Errorf("got %q", got)
	}
	// punct off leaves quotes alone
	if got := cc.S2T("“汉”", false); got != "“漢”" {
		t.Errorf("got %q", got)
	}
}

func TestConvertDispatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	got, err := cc.Convert("汉", "S2T", false) // case-insensitive
	if err != nil {
		t.Fatal(err)
	}
	if got != "漢" {
		t.Errorf("got %q", got)
	}
}

func TestConvertInvalidProfile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	dicts.ClearLastError()
	cc := New(testStore())
	_, err := cc.Convert("汉", "nope", false)
	var perr *InvalidProfileError
	if !errors.As(err, &perr) {
		t.Fatalf("expected InvalidProfileError, got %v", err)
	}
	if perr.Profile != "nope" {
		t.Errorf("got profile %q", perr.Profile)
	}
	if dicts.LastError() == "" {
		t.Error("expected the last-error slot to be set")
	}
}

func TestConvertAllProfilesAccepted(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cc := New(testStore())
	for _, p := range Profiles() {
		if _, err := cc.Convert("汉字", p, false); err != nil {
			t.Errorf("profile %s rejected: %v", p, err)
		}
	}
}

func TestSetParallel(t *testing.T) {
	cc := New(testStore())
	if !cc.Parallel() {
		t.Error("parallel should default to on")
	}
	cc.SetParallel(false)
	if cc.Parallel() {
		t.Error("SetParallel(false) had no effect")
	}
	if got := cc.S2T("汉字转换", false); got != "漢字轉換" {
		t.Errorf("sequential conversion wrong: %q", got)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	cc := New(testStore())
	got, err := cc.Convert("", "s2t", false)
	if err != nil || got != "" {
		t.Errorf("got %q, %v", got, err)
	}
}
