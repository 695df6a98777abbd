package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	uc      UserUseCase
	baseURL string
}

func NewUserController(uc UserUseCase, baseURL string) *UserController {
	return &UserController{uc: uc, baseURL: baseURL}
}

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	u, err := ctl.uc.RegisterUser(c.Request.Context(), req.Name, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", requestBaseURL(c, ctl.baseURL)+"/api/users/"+u.Identifier)
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) GetUserByID(c *gin.Context) {
	id, err := parseID(c, "user")
	if err != nil {
		respondError(c, err)
		return
	}

	u, err := ctl.uc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
