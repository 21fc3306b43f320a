package handlers

import (
	"errors"
	"net/http"

	"restaurant-orders-api/auth"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

// Handler carries the collaborators every endpoint needs: the persistent
// store, the token issuer and the credential store.
type Handler struct {
	Store         *store.Store
	Issuer        *auth.Issuer
	Creds         auth.CredentialStore
	TableLinkBase string
}

func New(st *store.Store, issuer *auth.Issuer, creds auth.CredentialStore, tableLinkBase string) *Handler {
	return &Handler{Store: st, Issuer: issuer, Creds: creds, TableLinkBase: tableLinkBase}
}

// storeError translates the store's tagged failures into HTTP responses.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
