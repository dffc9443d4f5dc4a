package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

// DigestService sends each user a short daily summary of the current month's
// score over every channel they have linked: Telegram, push and email.
type DigestService struct {
	scores *ScoreService
	bot    *TelegramBot
	push   *PushService
}

func NewDigestService(scores *ScoreService, bot *TelegramBot, push *PushService) *DigestService {
	return &DigestService{scores: scores, bot: bot, push: push}
}

func digestHour() int {
	h, err := strconv.Atoi(os.Getenv("DIGEST_HOUR"))
	if err != nil || h < 0 || h > 23 {
		return 9
	}
	return h
}

// Run fires once a day at DIGEST_HOUR local time until the context is
// cancelled.
func (d *DigestService) Run(ctx context.Context) {
	for {
		next := nextDigestTime(time.Now(), digestHour())
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Until(next)):
		}
		d.SendAll(ctx)
	}
}

func nextDigestTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// SendAll computes and delivers the digest for every reachable user. Failures
// are per-user: one broken mailbox does not stop the run.
func (d *DigestService) SendAll(ctx context.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		log.Printf("digest: loading users failed: %v", err)
		return
	}

	for _, u := range users {
		if err := d.sendOne(ctx, &u); err != nil {
			log.Printf("digest: user %d: %v", u.ID, err)
		}
	}
}

func (d *DigestService) sendOne(ctx context.Context, u *models.User) error {
	today := time.Now().Format(utils.ISODate)
	start := utils.MonthOf(today) + "-01"

	res, err := d.scores.ComputeScore(ctx, u.ID, start, today)
	if err != nil {
		return err
	}

	bd := res.Breakdown
	body := fmt.Sprintf(
		"Your score so far this month: %d/100. Health %d, finance %d, consistency %d.",
		res.Avg, bd.Health.Score, bd.Finance.Score, bd.Consistency.Score)

	if d.bot != nil && u.TelegramChatID != 0 {
		if err := d.bot.SendMessage(u.TelegramChatID, "Daily digest\n"+body); err != nil {
			log.Printf("digest: telegram to user %d failed: %v", u.ID, err)
		}
	}
	if d.push != nil {
		d.push.PushToUser(u.ID, "Daily digest", body, map[string]string{"kind": "digest"})
	}
	if u.Email != "" {
		if err := utils.SendDigestEmail(u.Email, body); err != nil {
			log.Printf("digest: email to user %d failed: %v", u.ID, err)
		}
	}

	EmitAlert(u.ID, "digest", body)
	return nil
}
