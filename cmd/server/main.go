package main

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/client"
	"github.com/PriyeshRaj231/online-voting-system/internal/controller"
	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/face"
	"github.com/PriyeshRaj231/online-voting-system/internal/repository"
	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := dto.LoadConfig()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		// Needed so duplicate-key violations surface as
		// gorm.ErrDuplicatedKey and map onto the voting error taxonomy.
		TranslateError: true,
	})
	if err != nil {
		logrus.Panic(err)
	}

	extractor, err := face.NewExtractor(cfg.FaceExtractor, cfg.FaceModelDir)
	if err != nil {
		logrus.Panic(err)
	}
	defer extractor.Close()
	logrus.Infof("Face extractor strategy: %s", cfg.FaceExtractor)

	clients := client.NewClients(cfg)
	defer clients.Close()

	repositories := repository.NewRepositories(db)
	services := service.NewServices(repositories, cfg, clients, face.NewQualityFilter(), extractor)
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	controllers.Route(e)

	logrus.Infof("Starting server on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Panic(err)
	}
}
