package upload

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const defaultExt = ".jpg"

// Store persists multipart uploads under a content directory and hands
// back relative URLs for the stored files.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Save writes the uploaded file under a generated unique name, keeping
// the original extension (.jpg when the upload has none), and returns the
// relative URL the record should store.
func (s *Store) Save(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = defaultExt
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join(s.dir, name)), nil
}

// Dir returns the content directory, for static serving.
func (s *Store) Dir() string {
	return s.dir
}
