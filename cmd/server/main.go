package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"greenhouse/config"
	"greenhouse/database"
	"greenhouse/pkg/actuator"
	"greenhouse/pkg/mailer"
	"greenhouse/pkg/middleware"
	"greenhouse/pkg/profile"
	"greenhouse/router"

	actuatorCtrlImp "greenhouse/pkg/actuator/controllerImp"
	actuatorRepoImp "greenhouse/pkg/actuator/repositoryImp"

	authCtrlImp "greenhouse/pkg/auth/controllerImp"
	authRepoImp "greenhouse/pkg/auth/repositoryImp"
	authSvcImp "greenhouse/pkg/auth/serviceImp"

	chatCtrlImp "greenhouse/pkg/chat/controllerImp"
	chatRepoImp "greenhouse/pkg/chat/repositoryImp"

	friendCtrlImp "greenhouse/pkg/friend/controllerImp"
	friendRepoImp "greenhouse/pkg/friend/repositoryImp"
	friendSvcImp "greenhouse/pkg/friend/serviceImp"

	healthCtrlImp "greenhouse/pkg/health/controllerImp"

	plantCtrlImp "greenhouse/pkg/plant/controllerImp"
	plantRepoImp "greenhouse/pkg/plant/repositoryImp"

	profileCtrlImp "greenhouse/pkg/profile/controllerImp"
	profileSvcImp "greenhouse/pkg/profile/serviceImp"

	sensorCtrlImp "greenhouse/pkg/sensor/controllerImp"
	sensorRepoImp "greenhouse/pkg/sensor/repositoryImp"

	settingsCtrlImp "greenhouse/pkg/settings/controllerImp"
	settingsRepoImp "greenhouse/pkg/settings/repositoryImp"

	shopCtrlImp "greenhouse/pkg/shop/controllerImp"
	shopRepoImp "greenhouse/pkg/shop/repositoryImp"

	uploadCtrlImp "greenhouse/pkg/upload/controllerImp"
)

func main() {
	cfg := config.Load()

	db := database.MustOpen(cfg.DBPath)

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	authRepo := authRepoImp.New(db)
	authSvc := authSvcImp.New(authRepo, mail, cfg.JWTSecret)

	settingsRepo := settingsRepoImp.New(db)
	profileSvc := profileSvcImp.New(settingsRepo, profile.LoadDefaults(cfg.ProfilesPath))

	actuatorRepo := actuatorRepoImp.New(db)
	var actuatorCtrls []*actuatorCtrlImp.ActuatorCtrl
	for _, dev := range actuator.Devices {
		actuatorCtrls = append(actuatorCtrls, actuatorCtrlImp.New(dev, actuatorRepo))
	}

	friendSvc := friendSvcImp.New(friendRepoImp.New(db))

	ctrl := router.Controllers{
		Auth:      authCtrlImp.New(authSvc),
		Sensor:    sensorCtrlImp.New(sensorRepoImp.New(db)),
		Actuators: actuatorCtrls,
		Config:    settingsCtrlImp.New(settingsRepo),
		Profile:   profileCtrlImp.New(profileSvc),
		Shop:      shopCtrlImp.New(shopRepoImp.New(db)),
		Plant:     plantCtrlImp.New(plantRepoImp.New(db)),
		Chat:      chatCtrlImp.New(chatRepoImp.New(db)),
		Friend:    friendCtrlImp.New(friendSvc),
		Upload:    uploadCtrlImp.New(cfg.UploadDir, cfg.MaxUploadBytes),
		Health:    healthCtrlImp.New(db),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(middleware.CORS())

	e.Static("/uploads", cfg.UploadDir)

	r := router.New(e, ctrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
