package handler

import (
	"visionland/internal/adapter/http/dto"
	"visionland/internal/core/ports"
	"visionland/pkg/apperror"
	"visionland/pkg/response"

	"github.com/gin-gonic/gin"
)

// BackupHandler handles listing snapshot endpoints.
type BackupHandler struct {
	backupSvc ports.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupSvc ports.BackupService) *BackupHandler {
	return &BackupHandler{backupSvc: backupSvc}
}

// Backup handles POST /api/v1/properties/:id/backup.
func (h *BackupHandler) Backup(c *gin.Context) {
	var req dto.BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.backupSvc.Backup(c.Request.Context(), c.Param("id"), req.Backend)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BackupResponse{
		PropertyID: result.PropertyID,
		Backend:    result.Backend,
		Cid:        result.ContentID,
	})
}

// Restore handles GET /api/v1/backups/:backend/:cid.
func (h *BackupHandler) Restore(c *gin.Context) {
	property, err := h.backupSvc.Restore(c.Request.Context(), c.Param("backend"), c.Param("cid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, property)
}
