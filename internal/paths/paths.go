// Package paths resolves locations under the project's data directory.
//
// The project root is fixed when a Resolver is built and never changes
// afterwards, so every call within a process joins against the same root.
// Resolvers only compute strings; they do not check that anything exists.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirName is the directory under the project root that holds data files.
const DataDirName = "data"

// DatabaseFileName is the conversion history database inside the data directory.
const DatabaseFileName = "molkit.db"

// executable is swapped out in tests.
var executable = os.Executable

// Resolver joins paths onto a fixed project root.
type Resolver struct {
	root string
}

// New creates a Resolver anchored at root. A relative root is made absolute
// against the working directory; an empty root means the working directory.
func New(root string) (Resolver, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Resolver{}, fmt.Errorf("resolving project root %q: %w", root, err)
	}
	return Resolver{root: abs}, nil
}

// DetectRoot returns the parent of the directory holding the running binary.
// A binary installed as <root>/bin/molkit therefore resolves to <root>.
func DetectRoot() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Abs(filepath.Join(filepath.Dir(exe), ".."))
}

// Root returns the absolute project root.
func (r Resolver) Root() string {
	return r.root
}

// DataDir returns <root>/data.
func (r Resolver) DataDir() string {
	return filepath.Join(r.root, DataDirName)
}

// DataPath joins segments onto <root>/data. With no segments it returns
// DataDir. Segments are not validated.
func (r Resolver) DataPath(segments ...string) string {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, r.root, DataDirName)
	parts = append(parts, segments...)
	return filepath.Join(parts...)
}

// DatabasePath returns the conversion history database path.
func (r Resolver) DatabasePath() string {
	return r.DataPath(DatabaseFileName)
}

// EnsureDataDir creates the data directory if it does not exist.
func (r Resolver) EnsureDataDir() error {
	if err := os.MkdirAll(r.DataDir(), 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}
