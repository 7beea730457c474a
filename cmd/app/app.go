package main

import (
	"os"

	"github.com/DRSN-tech/recs-backend/internal/app"
	config "github.com/DRSN-tech/recs-backend/internal/cfg"
	"github.com/DRSN-tech/recs-backend/pkg/logger"
)

//	@title						Recommendations API
//	@version					1.0
//	@description				Сервис товарных рекомендаций для витрины магазина
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
