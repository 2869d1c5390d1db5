package handlers

import (
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

func ListFleet(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Catalog.Vehicles())
	}
}

func GetVehicle(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicle, err := deps.Catalog.VehicleByID(c.Params.ByName("id"))
		if err != nil {
			web.HandleError(c, http.StatusNotFound, "Failed to find vehicle", err)
			return
		}

		c.JSON(http.StatusOK, vehicle)
	}
}

func ListExcursions(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Catalog.Excursions())
	}
}

func GetExcursion(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		excursion, err := deps.Catalog.ExcursionByID(c.Params.ByName("id"))
		if err != nil {
			web.HandleError(c, http.StatusNotFound, "Failed to find excursion", err)
			return
		}

		c.JSON(http.StatusOK, excursion)
	}
}
