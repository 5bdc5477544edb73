package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/repository"
	"github.com/Domkr4t/SocialNetwork/service"
)

// setupRouter wires the full stack over a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Message{}))

	users := repository.NewGormRepository[entity.User](db)
	messages := repository.NewGormRepository[entity.Message](db)
	authCtrl := NewAuthController(service.NewAuthService(users))
	userCtrl := NewUserController(service.NewUserService(users, messages, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/Auth/Register", authCtrl.Register)
	r.POST("/Auth/Login", authCtrl.Login)
	r.GET("/User/GetUserAccount", userCtrl.GetUserAccount)
	r.GET("/User/GetAllMessages", userCtrl.GetAllMessages)
	r.GET("/User/GetMessage", userCtrl.GetMessage)
	r.POST("/User/SendMessageToUser", userCtrl.SendMessageToUser)
	r.PATCH("/User/IsReadMessage", userCtrl.IsReadMessage)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerHTTP(t *testing.T, r *gin.Engine, login, password string) int {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/Auth/Register", entity.RegisterRequest{
		Login:    login,
		Password: password,
		Surname:  "Doe",
		Name:     "John",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := decode(t, w)["data"].(map[string]interface{})
	return int(data["id"].(float64))
}
