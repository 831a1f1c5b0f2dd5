package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

// CreateVehicle registers a vehicle under an existing driver profile.
func (h *Controller) CreateVehicle(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadVehicle(body)
	if err != nil {
		respondError(c, err, "create vehicle")
		return
	}

	vehicle, err := schemas.CreateVehicle(input)
	if err != nil {
		respondError(c, err, "create vehicle")
		return
	}

	ctx := c.Request.Context()
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.CreateVehicle(ctx, vehicle)
	})
	if err != nil {
		respondError(c, err, "create vehicle")
		return
	}

	log(c).WithFields(logrus.Fields{
		"vehicle_id": vehicle.ID,
		"driver_id":  vehicle.DriverID,
	}).Info("vehicle created")
	c.JSON(http.StatusCreated, schemas.DumpVehicle(vehicle))
}

func (h *Controller) ListVehicles(c *gin.Context) {
	vehicles, err := h.store.ListVehicles(c.Request.Context())
	if err != nil {
		respondError(c, err, "list vehicles")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpVehicles(vehicles))
}
