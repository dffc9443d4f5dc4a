package controllers

import (
	"net/http"

	"github.com/Count174/k-board-sub000/services"

	"github.com/gin-gonic/gin"
)

func ListLoans(c *gin.Context) {
	uid := c.GetUint("userID")

	loans, err := services.ListLoans(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loans)
}

func UpsertLoan(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.LoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loan, err := services.UpsertLoan(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func PayLoanMonth(c *gin.Context) {
	uid := c.GetUint("userID")

	loan, err := services.PayOneMonth(uid, paramUint(c, "id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func PrepayLoan(c *gin.Context) {
	uid := c.GetUint("userID")

	loan, err := services.PrepayFull(uid, paramUint(c, "id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loan)
}

func ListLoanPayments(c *gin.Context) {
	uid := c.GetUint("userID")

	payments, err := services.LoanPayments(uid, paramUint(c, "id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func DeleteLoan(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.DeleteLoan(uid, paramUint(c, "id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "loan deleted"})
}
