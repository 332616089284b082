package config

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Upload kinds map to subdirectories of the uploads root and to the
// multipart field names the client sends.
const (
	UploadKindUsers   = "users"
	UploadKindGallery = "gallery"
	UploadKindLogos   = "logos"
)

// FileStore keeps uploaded files on the local filesystem. Documents
// reference them by the generated filename only.
type FileStore struct {
	Root string
}

func NewFileStore() *FileStore {
	root := os.Getenv("UPLOADS_DIR")
	if root == "" {
		root = "uploads"
	}
	return &FileStore{Root: root}
}

// Save writes the uploaded file under Root/kind with a generated name,
// keeping the original extension, and returns the stored filename.
func (fs *FileStore) Save(kind string, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(fs.Root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file. A missing file is not an error; the
// document is the source of truth and stale names can occur.
func (fs *FileStore) Remove(kind, name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(fs.Root, kind, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
