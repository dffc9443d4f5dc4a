package controllers

import (
	"net/http"
	"strconv"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	alerts, err := services.ListAlerts(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func MarkAlertRead(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.MarkAlertRead(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "alert marked read"})
}
