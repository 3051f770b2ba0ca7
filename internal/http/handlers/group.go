package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type GroupHandler struct {
	groupService services.GroupService
}

func NewGroupHandler(groupService services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// GET /api/groups
func (gh *GroupHandler) ListGroups(c *gin.Context) {
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := gh.groupService.List(c.Request.Context(), nil, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// GET /api/groups/:group_id
func (gh *GroupHandler) GetGroup(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	group, err := gh.groupService.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, group)
}

// GET /api/groups/:group_id/words
func (gh *GroupHandler) ListGroupWords(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := gh.groupService.ListWords(c.Request.Context(), nil, id, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// GET /api/groups/:group_id/study_sessions
func (gh *GroupHandler) ListGroupStudySessions(c *gin.Context) {
	id, err := pathID(c, "group_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := gh.groupService.ListSessions(c.Request.Context(), nil, id, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}
