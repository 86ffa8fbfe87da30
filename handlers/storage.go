package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"priisme/services/storage"
	"priisme/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StorageHandler accepts catalog image uploads and forwards them to the
// storage service.
type StorageHandler struct {
	storage storage.StorageService
}

func NewStorageHandler(storageSvc storage.StorageService) *StorageHandler {
	return &StorageHandler{storage: storageSvc}
}

// UploadImage receives a multipart image and returns its delivery URL.
// The folder form field selects the target collection (products, salons).
func (h *StorageHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid upload", err.Error())
		return
	}
	folder := c.PostForm("folder")
	if folder == "" {
		folder = "catalog"
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%s%s", uuid.New().String(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to stage upload", err.Error())
		return
	}
	defer os.Remove(tmpPath)

	url, err := h.storage.UploadImage(c.Request.Context(), tmpPath, folder)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload image", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteImage removes an uploaded asset by public ID.
func (h *StorageHandler) DeleteImage(c *gin.Context) {
	publicID := c.Param("publicID")
	if err := h.storage.DeleteImage(c.Request.Context(), publicID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete image", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
