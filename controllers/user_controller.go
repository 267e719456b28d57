// File: /controllers/user_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialnet-api/services"
	"socialnet-api/utils"
)

type UserController struct {
	accounts *services.AccountService
}

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{accounts: accounts}
}

// Search is public: name is a case-insensitive substring filter, email a
// case-insensitive exact filter, both optional.
func (uc *UserController) Search(c *gin.Context) {
	namePattern := c.Query("name")
	emailExact := c.Query("email")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = utils.ClampPagination(page, limit, 10)

	users, total, err := uc.accounts.Search(namePattern, emailExact, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendPaginated(c, users, page, limit, total)
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.accounts.GetProfile(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := uc.accounts.UpdateName(userID, req.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SendSuccess(c, "Profile updated successfully", nil)
}
