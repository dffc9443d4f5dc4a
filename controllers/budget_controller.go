package controllers

import (
	"net/http"
	"time"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func ListBudgets(c *gin.Context) {
	uid := c.GetUint("userID")

	budgets, err := services.ListBudgets(uid, c.Query("month"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func UpsertBudget(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.BudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := services.UpsertBudget(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, budget)
}

func DeleteBudget(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteBudget(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "budget deleted"})
}

func GetBudgetStats(c *gin.Context) {
	uid := c.GetUint("userID")

	month := c.DefaultQuery("month", time.Now().Format("2006-01"))
	stats, err := services.BudgetStats(uid, month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
