package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type SystemHandler struct {
	systemService services.SystemService
}

func NewSystemHandler(systemService services.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// POST /api/reset_history
func (sh *SystemHandler) ResetHistory(c *gin.Context) {
	if err := sh.systemService.ResetHistory(c.Request.Context(), nil); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondSuccess(c, "Study history has been reset", nil)
}

// POST /api/full_reset
func (sh *SystemHandler) FullReset(c *gin.Context) {
	if err := sh.systemService.FullReset(c.Request.Context(), nil); err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondSuccess(c, "System has been fully reset", nil)
}
