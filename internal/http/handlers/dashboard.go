package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /api/dashboard/last_study_session
func (dh *DashboardHandler) LastStudySession(c *gin.Context) {
	session, err := dh.dashboardService.LastStudySession(c.Request.Context(), nil)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, session)
}

// GET /api/dashboard/study_progress
func (dh *DashboardHandler) StudyProgress(c *gin.Context) {
	progress, err := dh.dashboardService.StudyProgress(c.Request.Context(), nil)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, progress)
}

// GET /api/dashboard/quick-stats
func (dh *DashboardHandler) QuickStats(c *gin.Context) {
	stats, err := dh.dashboardService.QuickStats(c.Request.Context(), nil)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, stats)
}
