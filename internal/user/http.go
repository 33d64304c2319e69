package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts user CRUD endpoints under /users.
func RegisterRoutes(router *gin.Engine, service *Service) {
	handler := &httpHandler{service: service}
	users := router.Group("/users")
	{
		users.POST("/", handler.createUser)
		users.GET("/", handler.listUsers)
		users.GET("/:id", handler.getUser)
		users.PUT("/:id", handler.updateUser)
		users.DELETE("/:id", handler.deleteUser)
	}
}

type httpHandler struct {
	service *Service
}

type createRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Username string  `json:"username" binding:"required,min=1,max=64"`
	FullName *string `json:"full_name" binding:"omitempty,max=128"`
}

type updateRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Username *string `json:"username" binding:"omitempty,min=1,max=64"`
	FullName *string `json:"full_name" binding:"omitempty,max=128"`
	IsActive *bool   `json:"is_active"`
}

func (h *httpHandler) createUser(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	u, err := h.service.Create(c.Request.Context(), CreateInput{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
	})
	if err != nil {
		switch err {
		case ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *httpHandler) listUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list users"})
		return
	}
	if users == nil {
		users = []User{}
	}

	c.JSON(http.StatusOK, users)
}

func (h *httpHandler) getUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to get user"})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *httpHandler) updateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, Patch{
		Email:    req.Email,
		Username: req.Username,
		FullName: req.FullName,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		case ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *httpHandler) deleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"detail": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid user id"})
		return 0, false
	}
	return id, true
}
