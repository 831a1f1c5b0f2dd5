package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school_transport/internal/models"
	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

// ListUsers returns every user with nested driver and guardian profiles.
func (h *Controller) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpUsers(users))
}

func (h *Controller) CreateUser(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadUser(body)
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	user, err := schemas.CreateUser(h.hasher, input)
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	ctx := c.Request.Context()
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		respondError(c, err, "create user")
		return
	}

	log(c).WithField("user_id", user.ID).Info("user created")
	c.JSON(http.StatusCreated, schemas.DumpUser(user))
}

func (h *Controller) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpUser(user))
}

// ChangePassword re-hashes the password of an existing user.
func (h *Controller) ChangePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadPassword(body)
	if err != nil {
		respondError(c, err, "change password")
		return
	}

	ctx := c.Request.Context()
	var user *models.User
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		found, err := tx.GetUser(ctx, id)
		if err != nil {
			return err
		}
		if err := found.SetPassword(h.hasher, input.Password); err != nil {
			return err
		}
		user = found
		return tx.SaveUser(ctx, found)
	})
	if err != nil {
		respondError(c, err, "change password")
		return
	}

	log(c).WithField("user_id", user.ID).Info("password changed")
	c.JSON(http.StatusOK, schemas.DumpUser(user))
}
