package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/repository"
	"github.com/Domkr4t/SocialNetwork/response"
)

// Notifier delivers a payload to a user's active realtime connections.
// A nil Notifier disables realtime events without affecting the HTTP API.
type Notifier interface {
	NotifyUser(userID int, payload []byte)
}

// UserService implements the messaging operations: inbox listing with
// filter composition, message detail, profile lookup, send and mark-read.
type UserService struct {
	users    repository.Repository[entity.User]
	messages repository.Repository[entity.Message]
	notifier Notifier
}

func NewUserService(users repository.Repository[entity.User], messages repository.Repository[entity.Message], notifier Notifier) *UserService {
	return &UserService{users: users, messages: messages, notifier: notifier}
}

// messageRow is the joined projection scanned out of the listing query.
type messageRow struct {
	ID            int
	FromUserLogin string
	Header        string
	IsReading     bool
	DateOfMessage time.Time
}

// GetAllReceivedMessages lists the recipient's inbox. Optional filter
// clauses fold onto the query and compose with AND; absent clauses leave
// the query untouched. Newest messages come first.
//
// SQLite's LIKE is case-insensitive for ASCII, so the sender-login
// predicate uses instr to keep the substring match case-sensitive. Date
// bounds compare the date component only.
func (s *UserService) GetAllReceivedMessages(filter entity.MessageFilter) response.Response[[]entity.MessageView] {
	q := s.messages.GetAll().
		Joins("JOIN users ON users.id = messages.from_user_id").
		Where("messages.to_user_id = ?", filter.UserID).
		Scopes(
			repository.WhereIf(filter.Login != "", "instr(users.login, ?) > 0", filter.Login),
			repository.WhereIf(filter.From != "", "date(messages.date_of_message) >= date(?)", filter.From),
			repository.WhereIf(filter.To != "", "date(messages.date_of_message) <= date(?)", filter.To),
			repository.WhereIf(filter.Status != entity.StatusAll, "messages.is_reading = ?", filter.Status == entity.StatusIsRead),
		).
		Select("messages.id, users.login AS from_user_login, messages.header, messages.is_reading, messages.date_of_message").
		Order("messages.date_of_message DESC, messages.id DESC")

	var rows []messageRow
	if err := q.Scan(&rows).Error; err != nil {
		return response.Internal[[]entity.MessageView](err)
	}

	views := make([]entity.MessageView, 0, len(rows))
	for _, r := range rows {
		views = append(views, entity.MessageView{
			ID:            r.ID,
			FromUserLogin: r.FromUserLogin,
			Header:        r.Header,
			IsReading:     r.IsReading,
			DateOfMessage: r.DateOfMessage.Format(entity.DateLayout),
		})
	}
	return response.OkData(views, "")
}

// GetOneMessage returns the message detail. Read status is not touched.
func (s *UserService) GetOneMessage(messageID int) response.Response[entity.OneMessageView] {
	var m entity.Message
	if err := s.messages.GetAll().Where("id = ?", messageID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[entity.OneMessageView](response.MessageNotFound, "Message not found.")
		}
		return response.Internal[entity.OneMessageView](err)
	}

	view := entity.OneMessageView{
		ID:            m.ID,
		Header:        m.Header,
		Body:          m.Body,
		IsReading:     m.IsReading,
		DateOfMessage: m.DateOfMessage.Format(entity.DateLayout),
	}
	return response.OkData(view, "")
}

// GetUserAccount returns a user's profile, login included, password never.
func (s *UserService) GetUserAccount(userID int) response.Response[entity.UserView] {
	var u entity.User
	if err := s.users.GetAll().Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[entity.UserView](response.UserNotFound, "User not found.")
		}
		return response.Internal[entity.UserView](err)
	}

	view := entity.UserView{
		ID:         u.ID,
		Login:      u.Login,
		Surname:    u.Surname,
		Name:       u.Name,
		Middlename: u.Middlename,
	}
	return response.OkData(view, "")
}

// SendMessage resolves the sender by ID and the recipient by login, then
// creates the message unread with the current server time. The message is
// persisted only after both lookups succeed.
func (s *UserService) SendMessage(req entity.SendMessageRequest) response.Response[struct{}] {
	var from entity.User
	if err := s.users.GetAll().Where("id = ?", req.FromUserID).First(&from).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[struct{}](response.UserNotFound, "Sender not found.")
		}
		return response.Internal[struct{}](err)
	}
	if err := s.users.Attach(&from); err != nil {
		return response.Internal[struct{}](err)
	}

	var to entity.User
	if err := s.users.GetAll().Where("login = ?", req.Login).First(&to).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[struct{}](response.UserNotFound, fmt.Sprintf("User %s not found.", req.Login))
		}
		return response.Internal[struct{}](err)
	}
	if err := s.users.Attach(&to); err != nil {
		return response.Internal[struct{}](err)
	}

	m := &entity.Message{
		FromUserID:    from.ID,
		FromUser:      &from,
		ToUserID:      to.ID,
		ToUser:        &to,
		Header:        req.Header,
		Body:          req.Body,
		IsReading:     false,
		DateOfMessage: time.Now(),
	}
	if err := s.messages.Create(m); err != nil {
		return response.Internal[struct{}](err)
	}

	s.notify(to.ID, map[string]interface{}{
		"type":   "message",
		"id":     m.ID,
		"from":   from.Login,
		"header": m.Header,
		"ts":     m.DateOfMessage.Unix(),
	})
	return response.OkMessage[struct{}]("Message sent.")
}

// SetIsReadMessage flips the read flag to true. The transition is one-way
// and idempotent: marking an already-read message succeeds again.
func (s *UserService) SetIsReadMessage(messageID int) response.Response[struct{}] {
	var m entity.Message
	if err := s.messages.GetAll().Where("id = ?", messageID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Fail[struct{}](response.MessageNotFound, "Message not found.")
		}
		return response.Internal[struct{}](err)
	}

	m.IsReading = true
	if err := s.messages.Update(&m); err != nil {
		return response.Internal[struct{}](err)
	}

	s.notify(m.FromUserID, map[string]interface{}{
		"type": "read",
		"id":   m.ID,
		"ts":   time.Now().Unix(),
	})
	return response.OkMessage[struct{}](fmt.Sprintf("Message %s marked as read.", m.Header))
}

func (s *UserService) notify(userID int, event map[string]interface{}) {
	if s.notifier == nil {
		return
	}
	if b, err := json.Marshal(event); err == nil {
		s.notifier.NotifyUser(userID, b)
	}
}
