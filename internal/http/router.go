package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/kotoba-backend/internal/http/handlers"
	httpMW "github.com/yungbote/kotoba-backend/internal/http/middleware"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	WordHandler          *httpH.WordHandler
	GroupHandler         *httpH.GroupHandler
	StudySessionHandler  *httpH.StudySessionHandler
	StudyActivityHandler *httpH.StudyActivityHandler
	DashboardHandler     *httpH.DashboardHandler
	SystemHandler        *httpH.SystemHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Words
		if cfg.WordHandler != nil {
			api.GET("/words", cfg.WordHandler.ListWords)
			api.GET("/words/:word_id", cfg.WordHandler.GetWord)
		}

		// Groups
		if cfg.GroupHandler != nil {
			api.GET("/groups", cfg.GroupHandler.ListGroups)
			api.GET("/groups/:group_id", cfg.GroupHandler.GetGroup)
			api.GET("/groups/:group_id/words", cfg.GroupHandler.ListGroupWords)
			api.GET("/groups/:group_id/study_sessions", cfg.GroupHandler.ListGroupStudySessions)
		}

		// Study sessions
		if cfg.StudySessionHandler != nil {
			api.GET("/study_sessions", cfg.StudySessionHandler.ListStudySessions)
			api.GET("/study_sessions/:session_id", cfg.StudySessionHandler.GetStudySession)
			api.GET("/study_sessions/:session_id/words", cfg.StudySessionHandler.ListStudySessionWords)
			api.POST("/study_sessions/:session_id/words/:word_id/review", cfg.StudySessionHandler.ReviewWord)
		}

		// Study activities
		if cfg.StudyActivityHandler != nil {
			api.POST("/study_activities", cfg.StudyActivityHandler.LaunchStudyActivity)
			api.GET("/study_activities/:activity_id", cfg.StudyActivityHandler.GetStudyActivity)
			api.GET("/study_activities/:activity_id/study_sessions", cfg.StudyActivityHandler.ListActivityStudySessions)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			api.GET("/dashboard/last_study_session", cfg.DashboardHandler.LastStudySession)
			api.GET("/dashboard/study_progress", cfg.DashboardHandler.StudyProgress)
			api.GET("/dashboard/quick-stats", cfg.DashboardHandler.QuickStats)
		}

		// System
		if cfg.SystemHandler != nil {
			api.POST("/reset_history", cfg.SystemHandler.ResetHistory)
			api.POST("/full_reset", cfg.SystemHandler.FullReset)
		}
	}

	return r
}
