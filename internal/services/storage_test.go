package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/talent-analyzer/internal/models"
)

// fileHeader builds a *multipart.FileHeader the way Fiber hands uploads to
// handlers.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	_, header, err := req.FormFile("resume")
	require.NoError(t, err)
	return header
}

func TestSaveTempAndDelete(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	content := buildPDF("Go")
	doc, err := storage.SaveTemp(fileHeader(t, "My Resume.PDF", content), "resume")
	require.NoError(t, err)

	assert.Equal(t, models.FormatPDF, doc.Format)
	assert.Equal(t, "My Resume.PDF", doc.OriginalFileName)
	assert.Equal(t, int64(len(content)), doc.Size)
	assert.True(t, strings.HasPrefix(doc.Filename, "resume_"))
	assert.True(t, strings.HasSuffix(doc.Filename, ".pdf"))
	assert.Equal(t, dir, filepath.Dir(doc.Path))

	saved, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, content, saved)

	require.NoError(t, storage.Delete(doc))
	_, err = os.Stat(doc.Path)
	assert.True(t, os.IsNotExist(err))

	// Deleting twice is not an error.
	assert.NoError(t, storage.Delete(doc))
	assert.NoError(t, storage.Delete(nil))
}

func TestSaveTempUsesUniqueNames(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	first, err := storage.SaveTemp(fileHeader(t, "cv.docx", []byte("a")), "resume")
	require.NoError(t, err)
	second, err := storage.SaveTemp(fileHeader(t, "cv.docx", []byte("b")), "resume")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, models.FormatDOCX, second.Format)
}

func TestSaveTempRejectsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	doc, err := storage.SaveTemp(fileHeader(t, "notes.txt", []byte("hello")), "resume")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Nil(t, doc)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
