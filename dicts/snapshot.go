package dicts

import (
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// SaveSnapshot serializes the store to a zstd-compressed CBOR file.
// Only the sparse table data is written; the dense accelerators are
// rebuilt on load.
func (s *Store) SaveSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	if err := cbor.NewEncoder(enc).Encode(s); err != nil {
		enc.Close()
		f.Close()
		return recordError(&LoadError{Op: "encode", Path: path, Err: err})
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	if err := f.Close(); err != nil {
		return recordError(&LoadError{Op: "write", Path: path, Err: err})
	}
	return nil
}

// LoadSnapshot reads a store from a zstd-compressed CBOR snapshot and
// rebuilds all runtime accelerators.
func LoadSnapshot(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, recordError(&LoadError{Op: "read", Path: path, Err: err})
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, recordError(&LoadError{Op: "decode", Path: path, Err: err})
	}
	defer dec.Close()
	s := &Store{}
	if err := cbor.NewDecoder(dec).Decode(s); err != nil {
		return nil, recordError(&LoadError{Op: "decode", Path: path, Err: err})
	}
	return s.finish(), nil
}
