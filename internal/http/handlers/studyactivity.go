package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type StudyActivityHandler struct {
	activityService services.StudyActivityService
}

func NewStudyActivityHandler(activityService services.StudyActivityService) *StudyActivityHandler {
	return &StudyActivityHandler{activityService: activityService}
}

// GET /api/study_activities/:activity_id
func (ah *StudyActivityHandler) GetStudyActivity(c *gin.Context) {
	id, err := pathID(c, "activity_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	activity, err := ah.activityService.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, activity)
}

// GET /api/study_activities/:activity_id/study_sessions
func (ah *StudyActivityHandler) ListActivityStudySessions(c *gin.Context) {
	id, err := pathID(c, "activity_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := ah.activityService.ListSessions(c.Request.Context(), nil, id, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// POST /api/study_activities
// body: { "group_id": 1, "study_activity_id": 1 }
func (ah *StudyActivityHandler) LaunchStudyActivity(c *gin.Context) {
	var req struct {
		GroupID         uint `json:"group_id" binding:"required"`
		StudyActivityID uint `json:"study_activity_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}

	result, err := ah.activityService.Launch(c.Request.Context(), nil, req.GroupID, req.StudyActivityID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondSuccess(c, "Study session created successfully", gin.H{
		"id":                result.SessionID,
		"group_id":          result.GroupID,
		"study_activity_id": result.StudyActivityID,
	})
}
