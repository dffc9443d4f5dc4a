package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateFinanceRecord(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.FinanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := services.CreateFinanceRecord(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func ListFinances(c *gin.Context) {
	uid := c.GetUint("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if from, to := c.Query("from"), c.Query("to"); from != "" && to != "" {
		recs, err := services.RangeFinances(uid, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, recs)
		return
	}

	recs, err := services.ListFinances(uid, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recs)
}

func DeleteFinanceRecord(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteFinanceRecord(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "record deleted"})
}

func GetMonthlyStats(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := services.MonthlyStats(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func GetMonthOverview(c *gin.Context) {
	uid := c.GetUint("userID")

	month := c.DefaultQuery("month", time.Now().Format("2006-01"))
	overview, err := services.GetMonthOverview(uid, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, overview)
}
