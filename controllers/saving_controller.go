package controllers

import (
	"net/http"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func ListSavings(c *gin.Context) {
	uid := c.GetUint("userID")

	savings, err := services.ListSavings(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, savings)
}

func UpsertSaving(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.SavingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saving, err := services.UpsertSaving(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saving)
}

func AddToSaving(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saving, err := services.AddToSaving(uid, paramUint(c, "id"), input.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saving)
}

func DeleteSaving(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteSaving(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "saving deleted"})
}
