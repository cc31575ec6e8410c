package dicts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/testconfig"
)

func TestUnionCacheIdentity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	s := NewStore()
	s.STPhrases = FromPairs([]Pair{{"你好", "您好"}})
	u1 := s.Union(UnionS2T)
	u2 := s.Union(UnionS2T)
	if u1 != u2 {
		t.Error("repeated requests must return the same cached union instance")
	}
	s.ResetUnions()
	u3 := s.Union(UnionS2T)
	if u3 == u1 {
		t.Error("reset must force a fresh union build")
	}
	if mask, _ := u3.Starter('你'); mask&(1<<1) == 0 {
		t.Errorf("rebuilt union lost starter data, mask=%#x", mask)
	}
}

func TestUnionCacheConcurrentFirstUse(t *testing.T) {
	s := NewStore()
	s.TSPhrases = FromPairs([]Pair{{"漢字", "汉字"}})
	results := make(chan *StarterUnion, 8)
	for i := 0; i < 8; i++ {
		go func() { results <- s.Union(UnionT2S) }()
	}
	first := <-results
	for i := 1; i < 8; i++ {
		if u := <-results; u != first {
			t.Error("concurrent first use built more than one union")
		}
	}
}

func TestFromLexicons(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir := t.TempDir()
	writeTestLexicons(t, dir)
	content := "\ufeff# comment line\n" +
		"汉\t漢\n" +
		"onlykey\n" + // malformed: skipped, not fatal
		"\n" +
		"汉字 漢字 extra-token-ignored\n"
	if err := os.WriteFile(filepath.Join(dir, "STCharacters.txt"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := FromLexicons(dir)
	if err != nil {
		t.Fatalf("FromLexicons failed: %v", err)
	}
	if v, ok := s.STCharacters.Lookup("汉"); !ok || v != "漢" {
		t.Errorf("lookup 汉 = %q (ok=%v), want 漢", v, ok)
	}
	if v, ok := s.STCharacters.Lookup("汉字"); !ok || v != "漢字" {
		t.Errorf("lookup 汉字 = %q (ok=%v), want 漢字", v, ok)
	}
	if _, ok := s.STCharacters.Lookup("onlykey"); ok {
		t.Error("malformed line must be skipped")
	}
}

func TestFromLexiconsMissingDir(t *testing.T) {
	ClearLastError()
	_, err := FromLexicons(filepath.Join(t.TempDir(), "no-such-dir"))
	if err == nil {
		t.Fatal("expected an error for a missing lexicon directory")
	}
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Errorf("expected a *LoadError, got %T", err)
	}
	if LastError() == "" {
		t.Error("load failure should be recorded in the last-error slot")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	s := NewStore()
	s.STCharacters = FromPairs([]Pair{{"汉", "漢"}, {"测", "測"}})
	s.STPhrases = FromPairs([]Pair{{"汉字", "漢字"}})
	path := filepath.Join(t.TempDir(), "dicts.zstd")
	if err := s.SaveSnapshot(path); err != nil {
		t.Fatalf("SaveSnapshot failed: %v", err)
	}
	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	opts := cmp.Options{cmpopts.IgnoreUnexported(DictMaxLen{}), cmpopts.EquateEmpty()}
	if diff := cmp.Diff(s.STCharacters, loaded.STCharacters, opts); diff != "" {
		t.Errorf("st_characters table changed over the round trip:\n%s", diff)
	}
	if diff := cmp.Diff(s.STPhrases, loaded.STPhrases, opts); diff != "" {
		t.Errorf("st_phrases table changed over the round trip:\n%s", diff)
	}
	// Dense accelerators are not serialized; they must be rebuilt.
	if !loaded.STPhrases.populated() {
		t.Error("accelerators not rebuilt after snapshot load")
	}
	if !loaded.STPhrases.StarterAllows('汉', 2) {
		t.Error("rebuilt accelerators disagree with the table contents")
	}
}

func TestSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.zstd"))
	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a *LoadError, got %v", err)
	}
}

// writeTestLexicons creates a minimal, mostly empty lexicon directory
// so that FromLexicons finds every expected file.
func writeTestLexicons(t *testing.T, dir string) {
	t.Helper()
	s := &Store{}
	for _, tb := range s.tables() {
		if err := os.WriteFile(filepath.Join(dir, tb.file), []byte("# empty\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
