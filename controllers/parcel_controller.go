package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/rakeebhasan09/ZapShift-server/services"
)

type ParcelController struct {
	Service services.ParcelService
}

func NewParcelController(svc services.ParcelService) *ParcelController {
	return &ParcelController{Service: svc}
}

// ListParcels returns all parcels, optionally filtered by sender email,
// newest first.
func (pc *ParcelController) ListParcels(c *gin.Context) {
	email := c.Query("email")

	parcels, svcErr := pc.Service.ListParcels(c.Request.Context(), email)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, parcels)
}

func (pc *ParcelController) CreateParcel(c *gin.Context) {
	var req models.CreateParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, svcErr := pc.Service.CreateParcel(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": id})
}

func (pc *ParcelController) GetParcel(c *gin.Context) {
	parcel, svcErr := pc.Service.GetParcel(c.Request.Context(), c.Param("id"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, parcel)
}

func (pc *ParcelController) DeleteParcel(c *gin.Context) {
	if svcErr := pc.Service.DeleteParcel(c.Request.Context(), c.Param("id")); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}
