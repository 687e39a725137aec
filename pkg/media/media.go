package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// URLPath is where saved files are served from.
const URLPath = "/public/uploads"

const sniffLen = 3072

var ErrUnsupportedType = errors.New("unsupported file type")

var allowed = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// Store saves uploaded images on the local disk.
type Store struct {
	dir       string
	publicURL string
}

func NewStore(dir, publicURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Save sniffs the content type, rejects anything but png and jpeg,
// and returns the public URL of the stored file.
func (s *Store) Save(r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	ext, ok := allowed[mimetype.Detect(head).String()]
	if !ok {
		return "", ErrUnsupportedType
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.publicURL + URLPath + "/" + name, nil
}

// Delete removes a file previously returned by Save. Files that are already
// gone are not an error.
func (s *Store) Delete(url string) error {
	name, ok := strings.CutPrefix(url, s.publicURL+URLPath+"/")
	if !ok || name == "" || name != filepath.Base(name) {
		return fmt.Errorf("not an upload url: %q", url)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Dir is the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}
