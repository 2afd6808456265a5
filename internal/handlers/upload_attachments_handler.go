package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shivaganesh9/DailyReflectAI/internal/models/journal"
)

// allowedUploadExtensions maps accepted file extensions to the mimetype
// recorded on the attachment.
var allowedUploadExtensions = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
}

// UploadHandler stores uploaded attachment files on local disk and returns
// their descriptors for embedding into entries.
type UploadHandler struct {
	dir      string
	maxBytes int64
	logger   *zap.SugaredLogger
}

// NewUploadHandler creates a new upload handler writing into dir.
func NewUploadHandler(dir string, maxBytes int64, logger *zap.SugaredLogger) *UploadHandler {
	return &UploadHandler{dir: dir, maxBytes: maxBytes, logger: logger}
}

// UploadAttachments accepts a multipart form with one or more "files"
// parts. Each stored file gets a uuid-based name; the original name only
// survives in the returned descriptor.
func (h *UploadHandler) UploadAttachments(c *gin.Context) {
	if _, ok := uidFromContext(c); !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		h.logError(c, err, "failed to create upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store files"})
		return
	}

	attachments := make([]journal.Attachment, 0, len(files))
	for _, file := range files {
		attachment, err := h.saveFile(c, file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		attachments = append(attachments, *attachment)
	}

	c.JSON(http.StatusCreated, gin.H{"attachments": attachments})
}

func (h *UploadHandler) saveFile(c *gin.Context, file *multipart.FileHeader) (*journal.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	mimetype, ok := allowedUploadExtensions[ext]
	if !ok {
		return nil, fmt.Errorf("file type %s is not allowed", ext)
	}
	if h.maxBytes > 0 && file.Size > h.maxBytes {
		return nil, fmt.Errorf("file %s exceeds the maximum upload size", file.Filename)
	}

	id := uuid.New().String()
	storedName := id + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, storedName)); err != nil {
		h.logError(c, err, "failed to save uploaded file", "filename", file.Filename)
		return nil, fmt.Errorf("failed to store file %s", file.Filename)
	}

	return &journal.Attachment{
		ID:           id,
		Filename:     storedName,
		OriginalName: file.Filename,
		Mimetype:     mimetype,
		Size:         file.Size,
		URL:          "/uploads/" + storedName,
	}, nil
}
