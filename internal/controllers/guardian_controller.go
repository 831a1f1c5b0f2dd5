package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

func (h *Controller) ListGuardians(c *gin.Context) {
	guardians, err := h.store.ListGuardians(c.Request.Context())
	if err != nil {
		respondError(c, err, "list guardians")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpGuardians(guardians))
}

// CreateGuardian attaches a guardian profile to an existing user.
func (h *Controller) CreateGuardian(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadGuardian(body)
	if err != nil {
		respondError(c, err, "create guardian")
		return
	}

	guardian, err := schemas.CreateGuardian(input)
	if err != nil {
		respondError(c, err, "create guardian")
		return
	}

	ctx := c.Request.Context()
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.CreateGuardian(ctx, guardian)
	})
	if err != nil {
		respondError(c, err, "create guardian")
		return
	}

	log(c).WithField("guardian_id", guardian.ID).Info("guardian created")
	c.JSON(http.StatusCreated, schemas.DumpGuardian(guardian))
}

func (h *Controller) GetGuardian(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	guardian, err := h.store.GetGuardian(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get guardian")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpGuardian(guardian))
}

// ListGuardianStudents returns the students owned by one guardian.
func (h *Controller) ListGuardianStudents(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	students, err := h.store.ListStudentsByGuardian(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list guardian students")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpStudents(students))
}
