package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"motoroutes/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/itineraries/:id/media
func ListMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "attachments": Media.List(id)})
}

// POST /api/itineraries/:id/media (multipart, field "files")
func UploadMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	if _, err := Store.Get(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid multipart form", err)
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "no files in batch", nil)
		return
	}

	files := make([]services.FileInput, 0, len(headers))
	for _, fh := range headers {
		files = append(files, fileInput(fh))
	}

	added, err := Media.AddAttachments(id, files)
	if err != nil {
		// whole batch rolled back; tell the caller which read failed
		RespondError(c, http.StatusUnprocessableEntity, "attachment batch failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "added": len(added), "attachments": Media.List(id)})
}

// DELETE /api/itineraries/:id/media/:index
func DeleteMedia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid index", err)
		return
	}
	if err := Media.Remove(id, index); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "attachments": Media.List(id)})
}

func fileInput(fh *multipart.FileHeader) services.FileInput {
	return services.FileInput{
		Name:     fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
