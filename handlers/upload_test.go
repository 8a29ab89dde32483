package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type uploadPart struct {
	field, name, content string
}

// multipartRequest builds a POST /AdminUpload request carrying parts
func multipartRequest(t *testing.T, parts ...uploadPart) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, p := range parts {
		if p.name == "" {
			require.NoError(t, mw.WriteField(p.field, p.content))
			continue
		}
		fw, err := mw.CreateFormFile(p.field, p.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/AdminUpload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdminUpload(t *testing.T) {
	env := setupTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartRequest(t, uploadPart{"file", "x.jpg", "fake jpeg"}))
	require.Equal(t, 200, w.Code)

	var response UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "File uploaded successfully.", response.Message)
	assert.NotEmpty(t, response.FileID)

	// The record points at the static route
	w = get(env, "/dressTheme")
	var themes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &themes))
	require.Len(t, themes, 1)
	assert.Equal(t, response.FileID, themes[0]["_id"])
	assert.Equal(t, "x.jpg", themes[0]["imageName"])
	dressImage, _ := themes[0]["dressImage"].(string)
	assert.True(t, strings.HasSuffix(dressImage, "/images/x.jpg"), dressImage)

	// ...and the file is fetchable there
	w = get(env, strings.TrimPrefix(dressImage, testBaseURL))
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "fake jpeg", w.Body.String())
}

func TestAdminUploadWithoutFile(t *testing.T) {
	env := setupTestEnv(t)

	cases := map[string]*http.Request{
		"no body":         httptest.NewRequest(http.MethodPost, "/AdminUpload", nil),
		"wrong field":     multipartRequest(t, uploadPart{"image", "x.jpg", "data"}),
		"only text field": multipartRequest(t, uploadPart{field: "file", content: "not a file"}),
	}
	for name, req := range cases {
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		assert.Equal(t, 400, w.Code, name)
		assert.Equal(t, "No files were uploaded.", w.Body.String(), name)
	}

	assert.Equal(t, int64(0), env.countDressThemes(t))
	entries, err := os.ReadDir(env.imageDir)
	require.NoError(t, err)
	assert.Empty(t, entries) // Nothing written to disk
}

func TestAdminUploadMultipleFiles(t *testing.T) {
	env := setupTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartRequest(t,
		uploadPart{"file", "a.jpg", "a"},
		uploadPart{"file", "b.jpg", "b"},
	))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, int64(0), env.countDressThemes(t))
}

func TestAdminUploadStripsPath(t *testing.T) {
	env := setupTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartRequest(t, uploadPart{"file", "../../escape.jpg", "data"}))
	require.Equal(t, 200, w.Code)

	_, err := os.Stat(filepath.Join(env.imageDir, "escape.jpg"))
	assert.NoError(t, err) // Stored inside the image directory
}

func TestAdminUploadTooLarge(t *testing.T) {
	env := setupTestEnv(t) // 1 MiB limit

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartRequest(t, uploadPart{"file", "big.jpg", strings.Repeat("x", 2<<20)}))
	assert.Equal(t, 413, w.Code)
	assert.Equal(t, int64(0), env.countDressThemes(t))
}

func TestAdminUploadStoreFailure(t *testing.T) {
	env := setupTestEnv(t)
	env.closeStore(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, multipartRequest(t, uploadPart{"file", "x.jpg", "data"}))
	assert.Equal(t, 500, w.Code)

	var response Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Success)

	// The image stays on disk; the failed insert is not rolled back
	_, err := os.Stat(filepath.Join(env.imageDir, "x.jpg"))
	assert.NoError(t, err)
}

func TestImagesNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := get(env, "/images/missing.jpg")
	assert.Equal(t, 404, w.Code)
}
