package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-api/middleware"
	"portfolio-api/models"
	"portfolio-api/services"
	"portfolio-api/utils"

	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	AdminKey string `json:"adminKey"`
}

// POST /api/admin/login
//
// Exchanges the shared admin secret for a signed session token. The token and
// the raw X-Admin-Key header are interchangeable at the gate.
func AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || !middleware.VerifyAdminKey(req.AdminKey) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized access",
		})
		return
	}

	token, expiresAt, err := middleware.GenerateAdminToken()
	if err != nil {
		utils.ServerError(c, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data": gin.H{
			"token":     token,
			"expiresAt": expiresAt,
		},
	})
}

// GET /api/admin/contacts
func AdminGetContacts(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}

	svc := services.NewContactService(nil)
	contacts, pagination, err := svc.ListFiltered(services.ListFilter{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		utils.ServerError(c, "Failed to fetch contacts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"contacts":   models.ContactSummaries(contacts),
			"pagination": pagination,
		},
	})
}

// GET /api/admin/contacts/stats
func AdminGetContactStats(c *gin.Context) {
	svc := services.NewContactService(nil)
	stats, err := svc.Stats()
	if err != nil {
		utils.ServerError(c, "Failed to fetch statistics", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// PATCH /api/admin/contacts/:id/status
func AdminUpdateContactStatus(c *gin.Context) {
	UpdateContactStatus(c)
}

// DELETE /api/admin/contacts/:id
func AdminDeleteContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	svc := services.NewContactService(nil)
	if err := svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			contactNotFound(c)
			return
		}
		utils.ServerError(c, "Failed to delete contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact deleted successfully",
	})
}
