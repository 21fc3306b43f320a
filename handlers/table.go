package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type GenerateTableLinkRequest struct {
	Location string `json:"location" binding:"required"`
}

// GenerateTableLink issues a location-scoped token and wraps it into a link
// the staff can print as a QR code for a table (staff only).
func (h *Handler) GenerateTableLink(c *gin.Context) {
	var req GenerateTableLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Issuer.IssueTable(req.Location)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"link":  h.TableLinkBase + "?lots=" + token,
	})
}

type VerifyTableRequest struct {
	Token string `json:"lots" binding:"required"`
}

// VerifyTable validates a table token presented by the customer frontend
func (h *Handler) VerifyTable(c *gin.Context) {
	var req VerifyTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.Issuer.VerifyTable(req.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token valid", "location": location})
}
