package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/profiled/internal/services"
)

func GetUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		view, err := u.GetProfile(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func UpdateUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var fields map[string]interface{}
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := u.UpdateProfile(c.Request.Context(), id, fields); err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, "Updated Successfully")
	}
}

func DeleteUser(u *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		removed, err := u.DeleteProfile(c.Request.Context(), id)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, removed)
	}
}

func AddHeadlineAndDescription(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var req struct {
			Headline    *string `json:"headline"`
			Description *string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		headline, description, err := p.SetHeadlineAndDescription(c.Request.Context(), id, req.Headline, req.Description)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"headline":    headline,
			"description": description,
		})
	}
}

func UploadProfilePicture(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		url, err := p.UploadProfilePicture(c.Request.Context(), id, fileHeader)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

func UploadBackgroundPicture(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}

		url, err := p.UploadBackgroundPicture(c.Request.Context(), id, fileHeader)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
