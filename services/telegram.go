package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

// TelegramBot long-polls the Bot API and turns chat messages into finance
// records and score queries for the linked user.
type TelegramBot struct {
	token  string
	apiURL string
	client *http.Client
	scores *ScoreService
}

func NewTelegramBot(scores *ScoreService) *TelegramBot {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil
	}
	return &TelegramBot{
		token:  token,
		apiURL: "https://api.telegram.org/bot" + token,
		client: &http.Client{Timeout: 40 * time.Second},
		scores: scores,
	}
}

type tgUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

type tgUpdatesResponse struct {
	OK     bool       `json:"ok"`
	Result []tgUpdate `json:"result"`
}

// Run polls until the context is cancelled. Errors are logged and retried,
// the bot never takes the process down.
func (b *TelegramBot) Run(ctx context.Context) {
	log.Println("telegram bot: polling started")
	var offset int64
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updates, err := b.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("telegram bot: getUpdates failed: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil || u.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, u.Message.Chat.ID, u.Message.Text)
		}
	}
}

func (b *TelegramBot) getUpdates(ctx context.Context, offset int64) ([]tgUpdate, error) {
	q := url.Values{}
	q.Set("timeout", "30")
	if offset > 0 {
		q.Set("offset", strconv.FormatInt(offset, 10))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.apiURL+"/getUpdates?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := b.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out tgUpdatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if !out.OK {
		return nil, fmt.Errorf("telegram api returned ok=false (status %d)", resp.StatusCode)
	}
	return out.Result, nil
}

func (b *TelegramBot) SendMessage(chatID int64, text string) error {
	form := url.Values{}
	form.Set("chat_id", strconv.FormatInt(chatID, 10))
	form.Set("text", text)
	resp, err := b.client.PostForm(b.apiURL+"/sendMessage", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram sendMessage: status %d", resp.StatusCode)
	}
	return nil
}

func (b *TelegramBot) handleMessage(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "/start") {
		_ = b.SendMessage(chatID, fmt.Sprintf(
			"Hi! Your chat id is %d. Paste it in the dashboard settings to link this chat, then send entries like \"+1000 salary\" or \"-250 coffee\".", chatID))
		return
	}

	user, err := FindUserByChatID(chatID)
	if err != nil {
		_ = b.SendMessage(chatID, "This chat is not linked yet. Send /start for instructions.")
		return
	}

	if strings.HasPrefix(text, "/score") {
		b.replyWithScore(ctx, chatID, user.ID)
		return
	}

	entry, err := parseFinanceMessage(text)
	if err != nil {
		_ = b.SendMessage(chatID, "Could not parse that. Use \"+1000 salary\" or \"-250 coffee comment\".")
		return
	}

	rec, err := CreateFinanceRecord(user.ID, entry)
	if err != nil {
		_ = b.SendMessage(chatID, "Failed to save: "+err.Error())
		return
	}

	verb := "Expense"
	if rec.Type == models.FinanceIncome {
		verb = "Income"
	}
	_ = b.SendMessage(chatID, fmt.Sprintf("%s recorded: %.2f (%s)", verb, rec.Amount, rec.Category))
}

func (b *TelegramBot) replyWithScore(ctx context.Context, chatID int64, userID uint) {
	today := time.Now().Format(utils.ISODate)
	start := utils.MonthOf(today) + "-01"

	res, err := b.scores.ComputeScore(ctx, userID, start, today)
	if err != nil {
		_ = b.SendMessage(chatID, "Score is unavailable right now.")
		return
	}
	bd := res.Breakdown
	_ = b.SendMessage(chatID, fmt.Sprintf(
		"Score %d/100 for %s to %s\nHealth %d (sleep %d, workouts %d, meds %d)\nFinance %d, consistency %d",
		res.Avg, res.Start, res.End,
		bd.Health.Score, bd.Health.Sleep.Score, bd.Health.Workouts.Score, bd.Health.Meds.Score,
		bd.Finance.Score, bd.Consistency.Score))
}

// parseFinanceMessage understands "+1000 salary" and "-250 coffee with Anna":
// sign picks income or expense, the second token is the category, the rest
// becomes the comment.
func parseFinanceMessage(text string) (FinanceInput, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return FinanceInput{}, fmt.Errorf("expected amount and category")
	}

	raw := fields[0]
	var typ string
	switch {
	case strings.HasPrefix(raw, "+"):
		typ = models.FinanceIncome
	case strings.HasPrefix(raw, "-"):
		typ = models.FinanceExpense
	default:
		return FinanceInput{}, fmt.Errorf("amount must start with + or -")
	}

	amount, err := strconv.ParseFloat(strings.TrimLeft(raw, "+-"), 64)
	if err != nil || amount <= 0 {
		return FinanceInput{}, fmt.Errorf("invalid amount %q", raw)
	}

	return FinanceInput{
		Type:     typ,
		Category: strings.ToLower(fields[1]),
		Amount:   amount,
		Comment:  strings.Join(fields[2:], " "),
	}, nil
}
