package handler

import (
	"net/http"

	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	"relay-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

const UploadAllowMethods = "POST, OPTIONS"

// jsonOverhead leaves room for the file name, type and JSON framing around the body.
const jsonOverhead = 64 << 10

type UploadHandler struct {
	service  *services.UploadService
	log      *logger.Logger
	maxBytes int64
}

func NewUploadHandler(service *services.UploadService, log *logger.Logger, maxFileBytes int64) *UploadHandler {
	var maxBody int64
	if maxFileBytes > 0 {
		maxBody = maxFileBytes/3*4 + 4 + jsonOverhead
	}
	return &UploadHandler{service: service, log: log, maxBytes: maxBody}
}

func (h *UploadHandler) Create(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}
	var req httpdto.UploadRequest
	if !bindBody(c, &req) {
		return
	}
	f, err := h.service.Upload(c.Request.Context(), services.UploadInput{
		FileData: req.FileData,
		FileName: req.FileName,
		FileType: req.FileType,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.UploadResponse{
		Success:  true,
		URL:      f.URL,
		FileName: f.FileName,
		FileType: f.ContentType,
	})
}

// MethodNotAllowed answers every verb other than POST and OPTIONS.
func (h *UploadHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httpdto.NewErrorResponse("Method not allowed", "METHOD_NOT_ALLOWED"))
}
