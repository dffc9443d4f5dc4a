package controllers

import (
	"net/http"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func ListGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	goals, err := services.ListGoals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func UpsertGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := services.UpsertGoal(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

func AddGoalCheckin(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		Date  string   `json:"date" binding:"required"`
		Value *float64 `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkin, err := services.AddGoalCheckin(uid, paramUint(c, "id"), input.Date, *input.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, checkin)
}

func ArchiveGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ArchiveGoal(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "goal archived"})
}
