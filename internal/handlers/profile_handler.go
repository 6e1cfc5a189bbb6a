package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/profiled/internal/models"
	"github.com/joshua-takyi/profiled/internal/services"
)

// Skills

func AddSkill(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var req struct {
			Name  string `json:"name" binding:"required"`
			Level string `json:"level" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and level are required"})
			return
		}

		skills, err := p.AddSkill(c.Request.Context(), id, req.Name, req.Level)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, skills)
	}
}

func UpdateSkill(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		skillID, ok := parseObjectID(c, "skillId")
		if !ok {
			return
		}

		var upd services.SkillUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		skills, err := p.UpdateSkill(c.Request.Context(), id, skillID, upd)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, skills)
	}
}

func RemoveSkill(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		skillID, ok := parseObjectID(c, "skillId")
		if !ok {
			return
		}

		skills, err := p.RemoveSkill(c.Request.Context(), id, skillID)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, skills)
	}
}

// Projects

func AddProject(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var project models.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projects, err := p.AddProject(c.Request.Context(), id, project)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func UpdateProject(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		projectID, ok := parseObjectID(c, "projectId")
		if !ok {
			return
		}

		var upd services.ProjectUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		projects, err := p.UpdateProject(c.Request.Context(), id, projectID, upd)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

func RemoveProject(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		projectID, ok := parseObjectID(c, "projectId")
		if !ok {
			return
		}

		projects, err := p.RemoveProject(c.Request.Context(), id, projectID)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}

// Education

func AddEducation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var education models.Education
		if err := c.ShouldBindJSON(&education); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entries, err := p.AddEducation(c.Request.Context(), id, education)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

func UpdateEducation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		educationID, ok := parseObjectID(c, "educationId")
		if !ok {
			return
		}

		var upd services.EducationUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entries, err := p.UpdateEducation(c.Request.Context(), id, educationID, upd)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

func RemoveEducation(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		educationID, ok := parseObjectID(c, "educationId")
		if !ok {
			return
		}

		entries, err := p.RemoveEducation(c.Request.Context(), id, educationID)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, entries)
	}
}

// Companies

func AddCompany(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var company models.Company
		if err := c.ShouldBindJSON(&company); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		companies, err := p.AddCompany(c.Request.Context(), id, company)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, companies)
	}
}

func UpdateCompany(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		companyID, ok := parseObjectID(c, "companyId")
		if !ok {
			return
		}

		var upd services.CompanyUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		companies, err := p.UpdateCompany(c.Request.Context(), id, companyID, upd)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, companies)
	}
}

func RemoveCompany(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		companyID, ok := parseObjectID(c, "companyId")
		if !ok {
			return
		}

		companies, err := p.RemoveCompany(c.Request.Context(), id, companyID)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, companies)
	}
}

// Social links

func AddSocialLink(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}

		var req struct {
			Name string `json:"name" binding:"required"`
			Link string `json:"link" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and link are required"})
			return
		}

		links, err := p.AddSocialLink(c.Request.Context(), id, req.Name, req.Link)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, links)
	}
}

func UpdateSocialLink(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		linkID, ok := parseObjectID(c, "linkId")
		if !ok {
			return
		}

		var upd services.SocialLinkUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		links, err := p.UpdateSocialLink(c.Request.Context(), id, linkID, upd)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, links)
	}
}

func RemoveSocialLink(p *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseObjectID(c, "id")
		if !ok {
			return
		}
		linkID, ok := parseObjectID(c, "linkId")
		if !ok {
			return
		}

		links, err := p.RemoveSocialLink(c.Request.Context(), id, linkID)
		if err != nil {
			serviceError(c, err)
			return
		}

		c.JSON(http.StatusOK, links)
	}
}
