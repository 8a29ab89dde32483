// upload.go - Admin upload of dress theme images

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadResponse is returned after a stored upload
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	FileID  string `json:"fileId"`
}

// AdminUpload - POST /AdminUpload: multipart form with exactly one file under "file".
// A request without it gets a plain-text 400 and touches neither disk nor store.
func (h *Handler) AdminUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.String(http.StatusRequestEntityTooLarge, msgFileTooLarge)
			return
		}
		c.String(http.StatusBadRequest, msgNoFiles) // Not multipart or unreadable
		return
	}

	files := form.File["file"]
	switch {
	case len(files) == 0:
		c.String(http.StatusBadRequest, msgNoFiles)
		return
	case len(files) > 1:
		c.String(http.StatusBadRequest, msgTooManyFiles)
		return
	}

	header := files[0]
	src, err := header.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer src.Close()

	theme, err := h.uploader.Save(c.Request.Context(), header.Filename, src)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{Success: true, Message: "File uploaded successfully.", FileID: theme.ID})
}
