package config

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("media", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["media"][0]
}

func TestFileStoreSaveAndRemove(t *testing.T) {
	fs := &FileStore{Root: t.TempDir()}

	header := uploadFileHeader(t, "photo.png", []byte("png bytes"))
	name, err := fs.Save(UploadKindGallery, header)
	require.NoError(t, err)

	// Stored under a generated name that keeps the original extension.
	assert.NotEqual(t, "photo.png", name)
	assert.Equal(t, ".png", filepath.Ext(name))

	stored, err := os.ReadFile(filepath.Join(fs.Root, UploadKindGallery, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), stored)

	require.NoError(t, fs.Remove(UploadKindGallery, name))
	_, err = os.Stat(filepath.Join(fs.Root, UploadKindGallery, name))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreRemoveMissing(t *testing.T) {
	fs := &FileStore{Root: t.TempDir()}

	assert.NoError(t, fs.Remove(UploadKindUsers, "never-stored.png"))
	assert.NoError(t, fs.Remove(UploadKindUsers, ""))
}
