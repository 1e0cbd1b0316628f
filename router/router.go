package router

import (
	"github.com/labstack/echo/v4"

	actuatorCtrl "greenhouse/pkg/actuator/controllerImp"
	authCtrl "greenhouse/pkg/auth/controllerImp"
	chatCtrl "greenhouse/pkg/chat/controllerImp"
	friendCtrl "greenhouse/pkg/friend/controllerImp"
	healthCtrl "greenhouse/pkg/health/controllerImp"
	plantCtrl "greenhouse/pkg/plant/controllerImp"
	profileCtrl "greenhouse/pkg/profile/controllerImp"
	sensorCtrl "greenhouse/pkg/sensor/controllerImp"
	settingsCtrl "greenhouse/pkg/settings/controllerImp"
	shopCtrl "greenhouse/pkg/shop/controllerImp"
	uploadCtrl "greenhouse/pkg/upload/controllerImp"
)

type Controllers struct {
	Auth      *authCtrl.AuthCtrl
	Sensor    *sensorCtrl.SensorCtrl
	Actuators []*actuatorCtrl.ActuatorCtrl
	Config    *settingsCtrl.ConfigCtrl
	Profile   *profileCtrl.ProfileCtrl
	Shop      *shopCtrl.ShopCtrl
	Plant     *plantCtrl.PlantCtrl
	Chat      *chatCtrl.ChatCtrl
	Friend    *friendCtrl.FriendCtrl
	Upload    *uploadCtrl.UploadCtrl
	Health    *healthCtrl.HealthCtrl
}

func New(e *echo.Echo, ctrl Controllers) *echo.Echo {
	e.GET("/health", ctrl.Health.Health)

	v1 := e.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", ctrl.Auth.Register)
	auth.POST("/verify", ctrl.Auth.Verify)
	auth.POST("/login", ctrl.Auth.Login)
	auth.POST("/resend-code", ctrl.Auth.ResendCode)
	auth.POST("/change-password", ctrl.Auth.ChangePassword)
	auth.POST("/change-username", ctrl.Auth.ChangeUsername)
	auth.GET("/check-username", ctrl.Auth.CheckUsername)

	v1.POST("/sensors", ctrl.Sensor.Submit)
	v1.GET("/latest", ctrl.Sensor.LatestAll)
	v1.GET("/latest/:value_key", ctrl.Sensor.LatestByKey)
	v1.GET("/history/:value_key", ctrl.Sensor.History)

	for _, a := range ctrl.Actuators {
		a.Register(v1)
	}

	v1.GET("/config/soil", ctrl.Config.GetSoil)
	v1.POST("/config/soil", ctrl.Config.SetSoil)

	v1.GET("/profiles", ctrl.Profile.GetAll)
	v1.POST("/profiles", ctrl.Profile.Save)
	v1.GET("/profiles/active", ctrl.Profile.GetActive)
	v1.POST("/profiles/activate/:profile_name", ctrl.Profile.Activate)

	v1.GET("/products", ctrl.Shop.ListProducts)
	v1.POST("/products", ctrl.Shop.CreateProduct)
	v1.DELETE("/products/:id", ctrl.Shop.DeleteProduct)
	v1.POST("/orders", ctrl.Shop.CreateOrder)
	v1.GET("/orders/user/:user_id", ctrl.Shop.GetUserOrders)

	v1.GET("/plant-info", ctrl.Plant.List)
	v1.POST("/plant-info", ctrl.Plant.Create)
	v1.GET("/plant-info/:id/comments", ctrl.Plant.Comments)
	v1.POST("/plant-info/:id/comments", ctrl.Plant.AddComment)

	v1.GET("/chat/users", ctrl.Chat.ListUsers)
	v1.GET("/chat/messages/:other_user_id", ctrl.Chat.GetMessages)
	v1.POST("/chat/messages", ctrl.Chat.Send)

	friends := v1.Group("/friends")
	friends.POST("/request", ctrl.Friend.Request)
	friends.POST("/accept", ctrl.Friend.Accept)
	friends.GET("/requests/:user_id", ctrl.Friend.Pending)
	friends.GET("/sent/:user_id", ctrl.Friend.Sent)
	friends.GET("/:user_id", ctrl.Friend.List)
	friends.DELETE("", ctrl.Friend.Delete)

	v1.POST("/upload", ctrl.Upload.Upload)

	return e
}
