package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"portfolio-api/models"
	"portfolio-api/services"
	"portfolio-api/utils"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type statusRequest struct {
	Status string `json:"status"`
}

// POST /api/contact
func SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	svc := services.NewContactService(nil)
	contact, err := svc.Submit(services.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Validation failed",
				"errors":  verrs,
			})
			return
		}
		utils.ServerError(c, "Failed to send message. Please try again.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message sent successfully!",
		"data":    contact.Summary(),
	})
}

// GET /api/contact
func GetContacts(c *gin.Context) {
	svc := services.NewContactService(nil)
	contacts, err := svc.ListAll()
	if err != nil {
		utils.ServerError(c, "Failed to fetch contacts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.ContactSummaries(contacts),
	})
}

// GET /api/contact/:id
func GetContact(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	svc := services.NewContactService(nil)
	contact, err := svc.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			contactNotFound(c)
			return
		}
		utils.ServerError(c, "Failed to fetch contact", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    contact,
	})
}

// PATCH /api/contact/:id
func UpdateContactStatus(c *gin.Context) {
	id, ok := contactID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		invalidStatus(c)
		return
	}

	svc := services.NewContactService(nil)
	contact, err := svc.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			invalidStatus(c)
		case errors.Is(err, services.ErrContactNotFound):
			contactNotFound(c)
		default:
			utils.ServerError(c, "Failed to update contact", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact status updated successfully",
		"data":    contact.Summary(),
	})
}

// contactID parses the :id path param. A non-numeric id cannot match any row,
// so it gets the same 404 envelope as an unknown one.
func contactID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		contactNotFound(c)
		return 0, false
	}
	return id, true
}

func contactNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Contact not found",
	})
}

func invalidStatus(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid status. Must be one of: new, read, replied, archived",
	})
}
