package testdata

import (
	"os"
	"path"
	"runtime"
	"testing"
)

// PackagePath returns directory of the calling test file.
func PackagePath(tb testing.TB) string {
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		tb.Fatal("cannot get file path")
	}

	return path.Dir(file)
}

// Fixture returns full contents of the named file stored next to this one.
func Fixture(tb testing.TB, name string) []byte {
	tb.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		tb.Fatal("cannot get file path")
	}

	buf, err := os.ReadFile(path.Join(path.Dir(file), name))
	if err != nil {
		tb.Fatalf("read fixture %s: %v", name, err)
	}

	return buf
}
