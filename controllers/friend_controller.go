package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialnet-api/models"
	"socialnet-api/services"
	"socialnet-api/utils"
)

type FriendController struct {
	friends *services.FriendService
}

func NewFriendController(friends *services.FriendService) *FriendController {
	return &FriendController{friends: friends}
}

type SendFriendRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

// SendFriendRequest identifies the receiver by email, matching how users
// find each other through search.
func (fc *FriendController) SendFriendRequest(c *gin.Context) {
	senderID := c.GetString("user_id")

	var body SendFriendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := fc.friends.Send(senderID, body.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendCreated(c, "Friend request sent successfully", request)
}

func (fc *FriendController) AcceptFriendRequest(c *gin.Context) {
	fc.answerFriendRequest(c, fc.friends.Accept, "Friend request accepted successfully")
}

func (fc *FriendController) RejectFriendRequest(c *gin.Context) {
	fc.answerFriendRequest(c, fc.friends.Reject, "Friend request rejected successfully")
}

func (fc *FriendController) answerFriendRequest(c *gin.Context, transition func(uint, string) (*models.FriendRequest, error), message string) {
	userID := c.GetString("user_id")
	requestIDStr := c.Param("request_id")

	requestID, err := strconv.ParseUint(requestIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	request, err := transition(uint(requestID), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, message, request)
}

func (fc *FriendController) GetFriends(c *gin.Context) {
	userID := c.GetString("user_id")

	friends, err := fc.friends.ListFriends(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

func (fc *FriendController) GetPendingRequests(c *gin.Context) {
	userID := c.GetString("user_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = utils.ClampPagination(page, limit, 20)

	requests, total, err := fc.friends.ListPending(userID, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendPaginated(c, requests, page, limit, total)
}
