package main

import (
	"context"
	"log"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/controllers"
	"github.com/Count174/k-board-sub000/routes"
	"github.com/Count174/k-board-sub000/services"
	"github.com/Count174/k-board-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service: %v", err)
	}
	services.InitAlertDeps(config.DB, hub, push)

	scores := services.NewScoreService(services.NewScoreStore(config.DB))

	ctx := context.Background()
	bot := services.NewTelegramBot(scores)
	if bot != nil {
		go bot.Run(ctx)
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, bot disabled")
	}
	go services.NewDigestService(scores, bot, push).Run(ctx)

	r := routes.SetupRouter(routes.Controllers{
		Score:    controllers.NewScoreController(scores, hub),
		Device:   controllers.NewDeviceController(push),
		Realtime: controllers.NewRealtimeController(hub),
	})
	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
