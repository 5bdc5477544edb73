package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Domkr4t/SocialNetwork/entity"
	"github.com/Domkr4t/SocialNetwork/service"
)

// UserController exposes the /User routes. Ok maps to 200, every other
// envelope status to 400 with the description; GetAllMessages always
// answers 200 with whatever the listing produced.
type UserController struct {
	svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{svc: svc}
}

// GetUserAccount returns profile information for userId (query).
func (u *UserController) GetUserAccount(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": "invalid userId"})
		return
	}
	resp := u.svc.GetUserAccount(userID)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description, "data": resp.Data})
}

// GetAllMessages lists received messages for the filter in the query.
func (u *UserController) GetAllMessages(c *gin.Context) {
	var filter entity.MessageFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusOK, gin.H{"data": []entity.MessageView{}})
		return
	}
	filter.Status = entity.ParseMessageStatus(c.Query("status"))

	resp := u.svc.GetAllReceivedMessages(filter)
	c.JSON(http.StatusOK, gin.H{"data": resp.Data})
}

// GetMessage returns the detail view for messageId (query).
func (u *UserController) GetMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Query("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": "invalid messageId"})
		return
	}
	resp := u.svc.GetOneMessage(messageID)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description, "data": resp.Data})
}

// SendMessageToUser sends a message described by the JSON body.
func (u *UserController) SendMessageToUser(c *gin.Context) {
	var req entity.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": err.Error()})
		return
	}
	resp := u.svc.SendMessage(req)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description})
}

// IsReadMessage marks messageId (query) as read.
func (u *UserController) IsReadMessage(c *gin.Context) {
	messageID, err := strconv.Atoi(c.Query("messageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"description": "invalid messageId"})
		return
	}
	resp := u.svc.SetIsReadMessage(messageID)
	if !resp.IsOk() {
		c.JSON(http.StatusBadRequest, gin.H{"description": resp.Description})
		return
	}
	c.JSON(http.StatusOK, gin.H{"description": resp.Description})
}
