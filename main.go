package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Domkr4t/SocialNetwork/controller"
	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/repository"
	"github.com/Domkr4t/SocialNetwork/service"
	"github.com/Domkr4t/SocialNetwork/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	// init DB (SQLite via GORM); foreign keys must be on for the
	// restrict-on-delete constraints to hold
	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = "social.db"
	}
	log.Printf("Opening SQLite database file %s", dbFile)
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", dbFile)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}

	if err := db.AutoMigrate(&entity.User{}, &entity.Message{}); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	// init redis for cross-instance ws delivery; optional
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr})
	}

	// ws hub (init before services needing it)
	hub := ws.NewHub(rdb)

	// repositories
	userRepo := repository.NewGormRepository[entity.User](db)
	msgRepo := repository.NewGormRepository[entity.Message](db)

	// services
	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo, msgRepo, hub)

	// controllers
	authCtrl := controller.NewAuthController(authSvc)
	userCtrl := controller.NewUserController(userSvc)

	r := gin.Default()

	r.POST("/Auth/Register", authCtrl.Register)
	r.POST("/Auth/Login", authCtrl.Login)

	r.GET("/User/GetUserAccount", userCtrl.GetUserAccount)
	r.GET("/User/GetAllMessages", userCtrl.GetAllMessages)
	r.GET("/User/GetMessage", userCtrl.GetMessage)
	r.POST("/User/SendMessageToUser", userCtrl.SendMessageToUser)
	r.PATCH("/User/IsReadMessage", userCtrl.IsReadMessage)

	r.GET("/ws", func(c *gin.Context) { ws.ServeWS(hub, c) })

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
