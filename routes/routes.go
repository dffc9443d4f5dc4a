package routes

import (
	"github.com/Count174/k-board-sub000/controllers"
	"github.com/Count174/k-board-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Score    *controllers.ScoreController
	Device   *controllers.DeviceController
	Realtime *controllers.RealtimeController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/telegram", controllers.LinkTelegram)
		user.POST("/devices", ctrl.Device.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/score", ctrl.Score.GetScore)

		api.POST("/daily-checks", controllers.UpsertDailyCheck)
		api.GET("/daily-checks", controllers.GetDailyChecks)

		api.GET("/health-events", controllers.ListHealthEvents)
		api.POST("/health-events", controllers.CreateHealthEvent)
		api.PATCH("/health-events/:id/complete", controllers.CompleteHealthEvent)
		api.DELETE("/health-events/:id", controllers.DeleteHealthEvent)

		api.GET("/medications", controllers.ListMedications)
		api.POST("/medications", controllers.UpsertMedication)
		api.PATCH("/medications/:id/toggle", controllers.ToggleMedication)
		api.DELETE("/medications/:id", controllers.DeleteMedication)
		api.POST("/medications/:id/intake", controllers.MarkIntake)
		api.GET("/medications/schedule", controllers.GetDaySchedule)

		api.GET("/finances", controllers.ListFinances)
		api.POST("/finances", controllers.CreateFinanceRecord)
		api.DELETE("/finances/:id", controllers.DeleteFinanceRecord)
		api.GET("/finances/monthly", controllers.GetMonthlyStats)
		api.GET("/finances/overview", controllers.GetMonthOverview)

		api.GET("/budgets", controllers.ListBudgets)
		api.POST("/budgets", controllers.UpsertBudget)
		api.DELETE("/budgets/:id", controllers.DeleteBudget)
		api.GET("/budgets/stats", controllers.GetBudgetStats)

		api.GET("/savings", controllers.ListSavings)
		api.POST("/savings", controllers.UpsertSaving)
		api.POST("/savings/:id/add", controllers.AddToSaving)
		api.DELETE("/savings/:id", controllers.DeleteSaving)

		api.GET("/goals", controllers.ListGoals)
		api.POST("/goals", controllers.UpsertGoal)
		api.POST("/goals/:id/checkins", controllers.AddGoalCheckin)
		api.DELETE("/goals/:id", controllers.ArchiveGoal)

		api.GET("/loans", controllers.ListLoans)
		api.POST("/loans", controllers.UpsertLoan)
		api.POST("/loans/:id/pay", controllers.PayLoanMonth)
		api.POST("/loans/:id/prepay", controllers.PrepayLoan)
		api.GET("/loans/:id/payments", controllers.ListLoanPayments)
		api.DELETE("/loans/:id", controllers.DeleteLoan)

		api.GET("/todos", controllers.ListTodos)
		api.POST("/todos", controllers.CreateTodo)
		api.PATCH("/todos/:id", controllers.ToggleTodo)
		api.DELETE("/todos/:id", controllers.DeleteTodo)

		api.GET("/alerts", controllers.ListAlerts)
		api.PATCH("/alerts/:id/read", controllers.MarkAlertRead)

		api.GET("/ws", ctrl.Realtime.EventsWS)
	}

	return r
}
