package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

func (h *Controller) ListStudents(c *gin.Context) {
	students, err := h.store.ListStudents(c.Request.Context())
	if err != nil {
		respondError(c, err, "list students")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpStudents(students))
}

func (h *Controller) CreateStudent(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadStudent(body)
	if err != nil {
		respondError(c, err, "create student")
		return
	}

	student, err := schemas.CreateStudent(input)
	if err != nil {
		respondError(c, err, "create student")
		return
	}

	ctx := c.Request.Context()
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.CreateStudent(ctx, student)
	})
	if err != nil {
		respondError(c, err, "create student")
		return
	}

	log(c).WithFields(logrus.Fields{
		"student_id":  student.ID,
		"guardian_id": student.GuardianID,
	}).Info("student created")
	c.JSON(http.StatusCreated, schemas.DumpStudent(student))
}
