package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/repository"
)

// newTestDB opens a fresh in-memory SQLite database with foreign keys on.
// Pool size is pinned to one connection so the memory database is shared
// across all queries in the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Message{}))
	return db
}

func newServices(t *testing.T) (*AuthService, *UserService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	users := repository.NewGormRepository[entity.User](db)
	messages := repository.NewGormRepository[entity.Message](db)
	return NewAuthService(users), NewUserService(users, messages, nil), db
}

func registerUser(t *testing.T, auth *AuthService, login, password string) entity.UserView {
	t.Helper()
	resp := auth.Register(entity.RegisterRequest{
		Login:    login,
		Password: password,
		Surname:  "Doe",
		Name:     "John",
	})
	require.True(t, resp.IsOk(), "register %s: %s", login, resp.Description)
	return resp.Data
}

// seedMessage inserts a message with an explicit date, bypassing the send
// path so filter tests can control the timestamp.
func seedMessage(t *testing.T, db *gorm.DB, fromID, toID int, header string, read bool, date time.Time) entity.Message {
	t.Helper()
	m := entity.Message{
		FromUserID:    fromID,
		ToUserID:      toID,
		Header:        header,
		Body:          "body of " + header,
		IsReading:     read,
		DateOfMessage: date,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}
