// Package media stores uploaded product images on local disk.
package media

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/northsupermart/storefront/internal/config"
)

// ErrNoFile is returned when Save is called without a file.
var ErrNoFile = errors.New("no file uploaded")

// Store writes uploads into Dir and builds their public URL.
type Store struct {
	// Dir is the directory uploads are written to.
	Dir string
	// BaseURL is the public URL the uploads are reachable under, without
	// a trailing slash.
	BaseURL string

	now func() time.Time
}

// New returns a Store for the configured media directory.
func New(cfg *config.Config) *Store {
	return &Store{
		Dir:     cfg.Media.Dir,
		BaseURL: strings.TrimRight(cfg.Webserver.URL+"/"+strings.Trim(cfg.Media.Prefix, "/"), "/"),
		now:     time.Now,
	}
}

// Init creates the upload directory if it does not exist.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("create media dir %q: %w", s.Dir, err)
	}

	return nil
}

// FileName derives the stored name of an upload: the current unix time in
// milliseconds followed by the extension of the original name. Two uploads
// in the same millisecond with the same extension collide.
func (s *Store) FileName(original string) string {
	return strconv.FormatInt(s.now().UnixMilli(), 10) + filepath.Ext(original)
}

// Save writes fh to disk and returns the public URL of the stored file.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}

	name := s.FileName(fh.Filename)
	if err := fasthttp.SaveMultipartFile(fh, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("save upload %q: %w", fh.Filename, err)
	}

	log.Debug().Str("file", name).Int64("size", fh.Size).Msg("stored upload")

	return s.BaseURL + "/" + name, nil
}
