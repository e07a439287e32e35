package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrOutsideRoot is returned when a name resolves to a location that is not a
// descendant of the root directory.
var ErrOutsideRoot = errors.New("path escapes root directory")

// File is an open, readable file.
type File interface {
	io.ReadCloser
	Stat() (fs.FileInfo, error)
}

// Client defines the interface for read-only access to the serving root.
// Names are slash-separated and interpreted relative to the root.
type Client interface {
	// Root returns the absolute, symlink-free root directory.
	Root() string
	// Stat describes the named file or directory.
	Stat(name string) (fs.FileInfo, error)
	// Open opens the named file for reading.
	Open(name string) (File, error)
	// ReadDir lists the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)
}

// NewClient creates a client confined to cfg.Root. The root must exist, be a
// directory and be readable.
func NewClient(cfg Config) (Client, error) {
	dir := cfg.Root
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory %q: %w", dir, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("root directory %q is not accessible: %w", abs, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("root directory %q is not accessible: %w", resolved, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", resolved)
	}

	// Readability check: listing the root must work.
	f, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("root directory %q is not readable: %w", resolved, err)
	}
	_, err = f.Readdirnames(1)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("root directory %q is not readable: %w", resolved, err)
	}

	return &localClient{root: resolved}, nil
}

type localClient struct {
	root string
}

func (c *localClient) Root() string {
	return c.root
}

func (c *localClient) Stat(name string) (fs.FileInfo, error) {
	p, err := c.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Stat(p)
}

func (c *localClient) Open(name string) (File, error) {
	p, err := c.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

func (c *localClient) ReadDir(name string) ([]fs.DirEntry, error) {
	p, err := c.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadDir(p)
}

// resolve maps name to an absolute path below the root, following symlinks.
func (c *localClient) resolve(name string) (string, error) {
	if strings.ContainsRune(name, 0) {
		return "", notExist(name)
	}

	clean := path.Clean("/" + name)
	full := filepath.Join(c.root, filepath.FromSlash(clean))

	resolved, err := filepath.EvalSymlinks(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", notExist(name)
		}
		return "", fmt.Errorf("failed to resolve %q: %w", name, err)
	}

	if !c.contains(resolved) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, name)
	}
	return resolved, nil
}

func (c *localClient) contains(p string) bool {
	rel, err := filepath.Rel(c.root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

func notExist(name string) error {
	return &fs.PathError{Op: "resolve", Path: name, Err: fs.ErrNotExist}
}
