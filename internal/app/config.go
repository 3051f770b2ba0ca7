package app

import (
	"github.com/yungbote/kotoba-backend/internal/pkg/logger"
	"github.com/yungbote/kotoba-backend/internal/utils"
)

type Config struct {
	Port     string
	SeedDir  string
	AutoSeed bool
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	seedDir := utils.GetEnv("SEED_DIR", "seeds", log)
	autoSeed := utils.GetEnvAsBool("AUTO_SEED", true, log)
	return Config{
		Port:     port,
		SeedDir:  seedDir,
		AutoSeed: autoSeed,
	}
}
