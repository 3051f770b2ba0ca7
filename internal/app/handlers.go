package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/yungbote/kotoba-backend/internal/http"
	"github.com/yungbote/kotoba-backend/internal/http/handlers"
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
)

type Handlers struct {
	Word          *handlers.WordHandler
	Group         *handlers.GroupHandler
	StudySession  *handlers.StudySessionHandler
	StudyActivity *handlers.StudyActivityHandler
	Dashboard     *handlers.DashboardHandler
	System        *handlers.SystemHandler
	Health        *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Word:          handlers.NewWordHandler(s.Word),
		Group:         handlers.NewGroupHandler(s.Group),
		StudySession:  handlers.NewStudySessionHandler(s.StudySession),
		StudyActivity: handlers.NewStudyActivityHandler(s.StudyActivity),
		Dashboard:     handlers.NewDashboardHandler(s.Dashboard),
		System:        handlers.NewSystemHandler(s.System),
		Health:        handlers.NewHealthHandler(),
	}
}

func wireRouter(log *logger.Logger, h Handlers) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:                  log,
		WordHandler:          h.Word,
		GroupHandler:         h.Group,
		StudySessionHandler:  h.StudySession,
		StudyActivityHandler: h.StudyActivity,
		DashboardHandler:     h.Dashboard,
		SystemHandler:        h.System,
		HealthHandler:        h.Health,
	})
}
