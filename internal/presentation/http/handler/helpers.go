package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/abs-inventory-api/internal/presentation/http/dto/response"
	"github.com/sangkips/abs-inventory-api/pkg/pagination"
)

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

// parseID reads the :id path parameter, answering 400 when it is not a UUID
func parseID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid "+resource+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// listParams reads page, per_page and search query parameters
func listParams(c *gin.Context) (*pagination.PaginationParams, string) {
	return pagination.FromQuery(c.Query("page"), c.Query("per_page")), c.Query("search")
}

// queryBool reports whether the query parameter is a true boolean
func queryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
