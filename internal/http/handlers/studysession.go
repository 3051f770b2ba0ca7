package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/http/response"
	"github.com/yungbote/kotoba-backend/internal/services"
)

type StudySessionHandler struct {
	sessionService services.StudySessionService
}

func NewStudySessionHandler(sessionService services.StudySessionService) *StudySessionHandler {
	return &StudySessionHandler{sessionService: sessionService}
}

// GET /api/study_sessions
func (sh *StudySessionHandler) ListStudySessions(c *gin.Context) {
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := sh.sessionService.List(c.Request.Context(), nil, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// GET /api/study_sessions/:session_id
func (sh *StudySessionHandler) GetStudySession(c *gin.Context) {
	id, err := pathID(c, "session_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	session, err := sh.sessionService.Get(c.Request.Context(), nil, id)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, session)
}

// GET /api/study_sessions/:session_id/words
func (sh *StudySessionHandler) ListStudySessionWords(c *gin.Context) {
	id, err := pathID(c, "session_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	p, err := bindPagination(c)
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	env, err := sh.sessionService.ListWords(c.Request.Context(), nil, id, p)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, env)
}

// POST /api/study_sessions/:session_id/words/:word_id/review
// body: { "correct": true }
func (sh *StudySessionHandler) ReviewWord(c *gin.Context) {
	sessionID, err := pathID(c, "session_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}
	wordID, err := pathID(c, "word_id")
	if err != nil {
		response.RespondInvalid(c, err)
		return
	}

	var req struct {
		Correct *bool `json:"correct" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondInvalid(c, err)
		return
	}

	result, err := sh.sessionService.ReviewWord(c.Request.Context(), nil, sessionID, wordID, *req.Correct)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondSuccess(c, "Review recorded successfully", gin.H{
		"word_id":          result.WordID,
		"study_session_id": result.StudySessionID,
		"correct":          result.Correct,
		"created_at":       result.CreatedAt,
	})
}
