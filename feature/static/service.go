package static

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"devserver/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Kind tells the handler how to answer a lookup.
type Kind int

const (
	// KindFile is a regular file to stream.
	KindFile Kind = iota
	// KindRedirect is a directory requested without its trailing slash.
	KindRedirect
	// KindListing is a directory without an index document.
	KindListing
)

// Entry is one line of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Asset is the result of resolving a request path.
type Asset struct {
	Kind Kind
	// Name is the cleaned, slash-separated path under the root.
	Name string

	// File fields.
	Body        io.ReadCloser
	Size        int64
	ModTime     time.Time
	ContentType string

	// Location is the redirect target for KindRedirect.
	Location string
	// Entries are the directory contents for KindListing.
	Entries []Entry
}

// Service resolves request paths against the storage root.
type Service struct {
	client storage.Client
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new static file service.
func NewService(client storage.Client, cfg Config, logger *zap.Logger) *Service {
	if cfg.Index == "" {
		cfg.Index = "index.html"
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Lookup resolves the raw request path. The caller must close Body of a
// KindFile asset. Errors wrap ErrNotFound or ErrInternal.
func (s *Service) Lookup(rawPath string) (*Asset, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return nil, fmt.Errorf("%w: undecodable path", ErrNotFound)
	}
	if decoded == "" || decoded == "/" {
		// The root always maps to /<index>.
		return s.lookupDir("/")
	}

	name := path.Clean("/" + decoded)
	info, err := s.client.Stat(name)
	if err != nil {
		return nil, s.classify(name, err)
	}

	if info.IsDir() {
		if !strings.HasSuffix(decoded, "/") {
			location := (&url.URL{Path: strings.TrimSuffix(name, "/") + "/"}).EscapedPath()
			return &Asset{Kind: KindRedirect, Name: name, Location: location}, nil
		}
		return s.lookupDir(name)
	}
	if strings.HasSuffix(decoded, "/") {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrNotFound, name)
	}
	return s.open(name)
}

func (s *Service) lookupDir(dir string) (*Asset, error) {
	index := path.Join(dir, s.cfg.Index)
	info, err := s.client.Stat(index)
	if err == nil && !info.IsDir() {
		return s.open(index)
	}
	if err != nil {
		if cerr := s.classify(index, err); !errors.Is(cerr, ErrNotFound) {
			return nil, cerr
		}
	}

	if !s.cfg.ListDirectories {
		return nil, fmt.Errorf("%w: directory without index", ErrNotFound)
	}

	entries, err := s.client.ReadDir(dir)
	if err != nil {
		return nil, s.classify(dir, err)
	}
	listing := make([]Entry, 0, len(entries))
	for _, e := range entries {
		listing = append(listing, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return &Asset{Kind: KindListing, Name: dir, Entries: listing}, nil
}

func (s *Service) open(name string) (*Asset, error) {
	f, err := s.client.Open(name)
	if err != nil {
		return nil, s.classify(name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, s.classify(name, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, name)
	}

	return &Asset{
		Kind:        KindFile,
		Name:        name,
		Body:        f,
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: contentType(name),
	}, nil
}

func (s *Service) classify(name string, err error) error {
	switch {
	case errors.Is(err, storage.ErrOutsideRoot):
		s.logger.Warn("Path traversal rejected", zap.String("path", name))
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	default:
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
}

// contentType infers the MIME type from the file extension.
func contentType(name string) string {
	if mime := utils.GetMIME(filepath.Ext(name)); mime != "" {
		return mime
	}
	return fiber.MIMEOctetStream
}
