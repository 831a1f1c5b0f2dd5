package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"school_transport/internal/repository"
	"school_transport/internal/schemas"
)

// ListDrivers returns every driver profile with its vehicles.
func (h *Controller) ListDrivers(c *gin.Context) {
	drivers, err := h.store.ListDrivers(c.Request.Context())
	if err != nil {
		respondError(c, err, "list drivers")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpDrivers(drivers))
}

// CreateDriver attaches a driver profile to an existing user.
func (h *Controller) CreateDriver(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
		return
	}

	input, err := schemas.LoadDriver(body)
	if err != nil {
		respondError(c, err, "create driver")
		return
	}

	driver, err := schemas.CreateDriver(input)
	if err != nil {
		respondError(c, err, "create driver")
		return
	}

	ctx := c.Request.Context()
	err = h.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.CreateDriver(ctx, driver)
	})
	if err != nil {
		respondError(c, err, "create driver")
		return
	}

	log(c).WithField("driver_id", driver.ID).Info("driver created")
	c.JSON(http.StatusCreated, schemas.DumpDriver(driver))
}

// GetDriver fetches a single driver profile by its own id.
func (h *Controller) GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	driver, err := h.store.GetDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get driver")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpDriver(driver))
}

// ListDriverVehicles returns the vehicles assigned to one driver.
func (h *Controller) ListDriverVehicles(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicles, err := h.store.ListVehiclesByDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "list driver vehicles")
		return
	}
	c.JSON(http.StatusOK, schemas.DumpVehicles(vehicles))
}
