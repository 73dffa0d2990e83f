package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stayops/config"
	"stayops/database"
	"stayops/utils"
)

// RegisterRequest contains data for registering a dashboard user.
// Passwords are bcrypt-hashed before storage; the hash never leaves the
// server.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=admin owner staff"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// LoginRequest contains user credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token  string        `json:"token"`
	User   database.User `json:"user"`
	Expiry int64         `json:"expiry"`
}

// Register handles user registration
func Register(c *gin.Context) {
	var request RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	var existing database.User
	err := database.DB.Where("username = ? OR email = ?", request.Username, request.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username or email already in use"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		zap.L().Error("password hashing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process password"})
		return
	}

	role := request.Role
	if role == "" {
		role = database.RoleStaff
	}

	user := database.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Phone:        request.Phone,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		zap.L().Error("user creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles user authentication and returns a JWT token
func Login(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		validationError(c, err)
		return
	}

	var user database.User
	err := database.DB.Where("username = ?", request.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		} else {
			zap.L().Error("user lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	if !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	expiryTime := time.Now().Add(config.GetJWTExpiration())
	token, err := utils.GenerateJWT(user.ID, user.Email, strings.ToLower(user.Role), expiryTime)
	if err != nil {
		zap.L().Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:  token,
		User:   user,
		Expiry: expiryTime.Unix(),
	})
}

// GetUsers lists all users (admin only; hashes are never serialized)
func GetUsers(c *gin.Context) {
	users := []database.User{}
	if err := database.DB.Find(&users).Error; err != nil {
		zap.L().Error("user list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
		return
	}

	c.JSON(http.StatusOK, users)
}
