package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanmatch/marketplace-api/internal/core/ports"
)

// DirectoryHandler serves the public user listings.
type DirectoryHandler struct {
	directoryService ports.DirectoryService
}

func NewDirectoryHandler(directoryService ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directoryService: directoryService}
}

// Cleaners lists all cleaners, newest first.
//
// @Summary      List cleaners
// @Tags         directory
// @Produce      json
// @Success      200  {array}  ports.CleanerSummary
// @Router       /cleaners [get]
func (h *DirectoryHandler) Cleaners(c echo.Context) error {
	cleaners, err := h.directoryService.Cleaners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cleaners)
}

// Customers lists all customers, newest first.
//
// @Summary      List customers
// @Tags         directory
// @Produce      json
// @Success      200  {array}  ports.CustomerSummary
// @Router       /customers [get]
func (h *DirectoryHandler) Customers(c echo.Context) error {
	customers, err := h.directoryService.Customers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Grouped returns cleaners and customers in a single payload.
//
// @Summary      Grouped user directory
// @Tags         directory
// @Produce      json
// @Success      200  {object}  ports.GroupedUsers
// @Router       /users/grouped [get]
func (h *DirectoryHandler) Grouped(c echo.Context) error {
	grouped, err := h.directoryService.Grouped(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, grouped)
}
