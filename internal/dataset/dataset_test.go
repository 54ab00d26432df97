package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	binerrors "github.com/tamirms/binsort/errors"
)

func TestGenerateOpenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.bin")

	const n = 4096
	if err := Generate(path, n, 42, DistUniform, 1<<20); err != nil {
		t.Fatal(err)
	}

	ds, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	if ds.Len() != n {
		t.Fatalf("Len() = %d, want %d", ds.Len(), n)
	}

	keys := ds.Keys()
	if len(keys) != n {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), n)
	}
	for i, k := range keys {
		if k >= 1<<20 {
			t.Fatalf("key %d at %d outside range", k, i)
		}
		if k != ds.At(i) {
			t.Fatalf("Keys()[%d] = %d, At(%d) = %d", i, k, i, ds.At(i))
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")

	for _, path := range []string{a, b} {
		if err := Generate(path, 1000, 7, DistClusters, 1<<30); err != nil {
			t.Fatal(err)
		}
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if string(da) != string(db) {
		t.Fatal("same seed must generate identical files")
	}
}

func TestGenerateConstant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.bin")
	if err := Generate(path, 100, 1, DistConstant, 1<<16); err != nil {
		t.Fatal(err)
	}

	ds, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer ds.Close()

	first := ds.At(0)
	for i := 1; i < ds.Len(); i++ {
		if ds.At(i) != first {
			t.Fatalf("constant dataset varies at %d: %d vs %d", i, ds.At(i), first)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.bin")

	if err := Generate(path, 0, 1, DistUniform, 1); !errors.Is(err, binerrors.ErrEmptyDataset) {
		t.Errorf("zero keys: got %v, want ErrEmptyDataset", err)
	}
	if err := Generate(path, 10, 1, "zipf", 1); !errors.Is(err, binerrors.ErrUnknownDist) {
		t.Errorf("unknown dist: got %v, want ErrUnknownDist", err)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(empty); !errors.Is(err, binerrors.ErrEmptyDataset) {
		t.Errorf("empty file: got %v, want ErrEmptyDataset", err)
	}

	ragged := filepath.Join(dir, "ragged.bin")
	if err := os.WriteFile(ragged, make([]byte, 13), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(ragged); !errors.Is(err, binerrors.ErrTruncatedDataset) {
		t.Errorf("ragged file: got %v, want ErrTruncatedDataset", err)
	}

	if _, err := Open(filepath.Join(dir, "missing.bin")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.bin")
	if err := Generate(path, 8, 1, DistUniform, 1<<8); err != nil {
		t.Fatal(err)
	}

	ds, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
