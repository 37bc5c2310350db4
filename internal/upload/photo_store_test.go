package upload_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-evaltrack/internal/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="photo"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["photo"][0]
}

func TestDiskPhotoStore_Save(t *testing.T) {
	t.Run("stores an image with a generated name", func(t *testing.T) {
		dir := t.TempDir()
		store, err := upload.NewDiskPhotoStore(dir)
		require.NoError(t, err)

		name, err := store.Save(fileHeader(t, "face.png", "image/png", "png-bytes"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".png"))
		assert.NotEqual(t, "face.png", name)

		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(data))
	})

	t.Run("defaults to .jpg when the upload has no extension", func(t *testing.T) {
		store, err := upload.NewDiskPhotoStore(t.TempDir())
		require.NoError(t, err)

		name, err := store.Save(fileHeader(t, "face", "image/jpeg", "jpg-bytes"))
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(name, ".jpg"))
	})

	t.Run("rejects non-image content types", func(t *testing.T) {
		dir := t.TempDir()
		store, err := upload.NewDiskPhotoStore(dir)
		require.NoError(t, err)

		_, err = store.Save(fileHeader(t, "notes.pdf", "application/pdf", "pdf-bytes"))
		assert.ErrorIs(t, err, upload.ErrNotAnImage)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "nothing may be written for a rejected upload")
	})

	t.Run("rejects files above the size limit", func(t *testing.T) {
		store, err := upload.NewDiskPhotoStore(t.TempDir())
		require.NoError(t, err)

		header := fileHeader(t, "face.png", "image/png", "x")
		header.Size = upload.MaxPhotoSize + 1

		_, err = store.Save(header)
		assert.ErrorIs(t, err, upload.ErrFileTooLarge)
	})
}

func TestDiskPhotoStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := upload.NewDiskPhotoStore(dir)
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "face.png", "image/png", "png-bytes"))
	require.NoError(t, err)

	assert.NoError(t, store.Remove(name))
	_, statErr := os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(statErr))

	// removing again, or removing nothing, is not an error
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}
