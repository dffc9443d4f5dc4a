package controllers

import (
	"net/http"
	"time"

	"github.com/Count174/k-board-sub000/services"
	"github.com/Count174/k-board-sub000/utils"

	"github.com/gin-gonic/gin"
)

func ListMedications(c *gin.Context) {
	uid := c.GetUint("userID")

	meds, err := services.ListMedications(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

func UpsertMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.UpsertMedication(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

func ToggleMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.ToggleMedication(uid, paramUint(c, "id"), *input.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication updated"})
}

func DeleteMedication(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteMedication(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}

func MarkIntake(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Date   string `json:"date" binding:"required"`
		Time   string `json:"time" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, err := services.MarkIntake(uid, paramUint(c, "id"), input.Date, input.Time, input.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, intake)
}

func GetDaySchedule(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.DefaultQuery("date", time.Now().Format(utils.ISODate))
	if _, err := time.Parse(utils.ISODate, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	slots, err := services.DaySchedule(c.Request.Context(), uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slots)
}
