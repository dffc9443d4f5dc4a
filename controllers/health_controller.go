package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Count174/k-board-sub000/services"
	"github.com/Count174/k-board-sub000/utils"

	"github.com/gin-gonic/gin"
)

func UpsertDailyCheck(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.DailyCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	check, err := services.UpsertDailyCheck(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

func GetDailyChecks(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := c.DefaultQuery("from", first.Format(utils.ISODate))
	end := c.DefaultQuery("to", now.Format(utils.ISODate))

	checks, err := services.GetDailyChecks(uid, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checks)
}

func CreateHealthEvent(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.HealthEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ev, err := services.CreateHealthEvent(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func ListHealthEvents(c *gin.Context) {
	uid := c.GetUint("userID")

	events, err := services.ListHealthEvents(uid, c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func CompleteHealthEvent(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramUint(c, "id")

	var input struct {
		Completed *bool `json:"completed" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.CompleteHealthEvent(uid, id, *input.Completed); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event updated"})
}

func DeleteHealthEvent(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteHealthEvent(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func paramUint(c *gin.Context, name string) uint {
	v, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v)
}
