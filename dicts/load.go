package dicts

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FromLexicons loads every category dictionary from plain-text lexicon
// files in dir (see Store.tables for the expected file names).
//
// Each file holds one entry per line, key and value separated by
// whitespace. Lines starting with '#' and blank lines are ignored, a
// leading UTF-8 BOM is stripped, and any tokens after the value are
// discarded. A malformed line (fewer than two tokens) is skipped with
// a trace diagnostic and never fails the load; an unreadable file does
// fail it, with a typed LoadError.
func FromLexicons(dir string) (*Store, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, recordError(&LoadError{Op: "read", Path: dir, Err: err})
	}
	s := &Store{}
	for _, t := range s.tables() {
		path := filepath.Join(dir, t.file)
		d, err := loadLexicon(path)
		if err != nil {
			return nil, err
		}
		*t.dict = d
	}
	return s, nil
}

// loadLexicon parses one lexicon file into a built dictionary.
func loadLexicon(path string) (*DictMaxLen, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, recordError(&LoadError{Op: "read", Path: path, Err: err})
	}
	defer f.Close()

	var pairs []Pair
	skipped := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			tracer().Errorf("lexicon %s line %d: missing value, line skipped", path, lineno)
			skipped++
			continue
		}
		pairs = append(pairs, Pair{Key: fields[0], Value: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, recordError(&LoadError{Op: "read", Path: path, Err: err})
	}
	d := FromPairs(pairs)
	tracer().Infof("lexicon %s: %d entries, max_len=%d, %d lines skipped",
		filepath.Base(path), d.Len(), d.MaxLen, skipped)
	return d, nil
}

// ToLexicons writes every table back to plain-text lexicon files in
// dir, one "key<TAB>value" line per entry, keys sorted for stable
// output. The inverse of FromLexicons up to ordering and comments.
func (s *Store) ToLexicons(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return recordError(&LoadError{Op: "write", Path: dir, Err: err})
	}
	for _, t := range s.tables() {
		path := filepath.Join(dir, t.file)
		if err := writeLexicon(path, *t.dict); err != nil {
			return err
		}
	}
	return nil
}

func writeLexicon(path string, d *DictMaxLen) error {
	f, err := os.Create(path)
	if err != nil {
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	w := bufio.NewWriter(f)
	keys := make([]string, 0, d.Len())
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%s\n", k, d.Entries[k])
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	if err := f.Close(); err != nil {
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	return nil
}
