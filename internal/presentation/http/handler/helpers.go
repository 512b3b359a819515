package handler

import (
	"math"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// toCents converts a currency-unit amount from a request into cents.
func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserName extracts the display name from the Gin context
func GetUserName(c *gin.Context) string {
	name, exists := c.Get("user_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetStoreID extracts the store ID from the Gin context
func GetStoreID(c *gin.Context) uuid.UUID {
	storeIDVal, exists := c.Get("store_id")
	if !exists {
		return uuid.Nil
	}
	storeID, ok := storeIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return storeID
}

// GetUserRoles extracts the user roles from the Gin context
func GetUserRoles(c *gin.Context) []string {
	roles, exists := c.Get("user_roles")
	if !exists {
		return nil
	}
	return roles.([]string)
}

// IsAdmin checks if the user has the admin role
func IsAdmin(c *gin.Context) bool {
	for _, role := range GetUserRoles(c) {
		if role == "admin" {
			return true
		}
	}
	return false
}
