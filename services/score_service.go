package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"

	"golang.org/x/sync/errgroup"
)

// ScoreService computes the composite wellbeing score for a user over an
// inclusive date range. It holds no state between calls: every request is a
// pure function of the rows read through the injected ScoreStore.
type ScoreService struct {
	store ScoreStore
}

func NewScoreService(store ScoreStore) *ScoreService { return &ScoreService{store: store} }

// ---------- result shapes ----------

type SleepScore struct {
	Score    int     `json:"score"`
	AvgHours float64 `json:"avg_hours"` // rounded to 1 decimal
	Days     int     `json:"days"`      // qualifying rows
}

type WorkoutScore struct {
	Score      int `json:"score"`
	DoneDays   int `json:"done_days"`
	TargetDays int `json:"target_days"`
}

type MedicationScore struct {
	Score   int `json:"score"`
	Planned int `json:"planned"`
	Taken   int `json:"taken"`
}

type FinanceScore struct {
	Score int `json:"score"`
}

type ConsistencyScore struct {
	Score     int `json:"score"`
	Streak    int `json:"streak"`
	TotalDays int `json:"total_days"`
}

type HealthBreakdown struct {
	Score    int             `json:"score"`
	Sleep    SleepScore      `json:"sleep"`
	Workouts WorkoutScore    `json:"workouts"`
	Meds     MedicationScore `json:"meds"`
}

type ScoreBreakdown struct {
	Health      HealthBreakdown  `json:"health"`
	Finance     FinanceScore     `json:"finance"`
	Consistency ConsistencyScore `json:"consistency"`
}

type DayScore struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// ScoreResult is recomputed on every request and never persisted.
type ScoreResult struct {
	Start     string         `json:"start"`
	End       string         `json:"end"`
	Avg       int            `json:"avg"`
	Days      []DayScore     `json:"days"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// ---------- composite ----------

// Weights: sleep/workout/medication blend into health, then health, finance
// and consistency blend into the total.
const (
	weightSleep   = 0.55
	weightWorkout = 0.35
	weightMeds    = 0.10

	weightHealth      = 0.50
	weightFinance     = 0.35
	weightConsistency = 0.15
)

// ComputeScore fans out the five sub-scorers, each with its own reads, and
// folds their results into the composite. Any storage failure fails the whole
// request; there are no partial results.
func (s *ScoreService) ComputeScore(ctx context.Context, userID uint, start, end string) (*ScoreResult, error) {
	days := utils.EachDate(start, end)
	startMonth, endMonth := utils.MonthOf(start), utils.MonthOf(end)

	var (
		sleep       SleepScore
		workouts    WorkoutScore
		meds        MedicationScore
		finance     FinanceScore
		consistency ConsistencyScore
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		checks, err := s.store.DailyChecks(gctx, userID, start, end)
		if err != nil {
			return err
		}
		sleep = scoreSleep(checks)
		return nil
	})

	g.Go(func() error {
		checks, err := s.store.DailyChecks(gctx, userID, start, end)
		if err != nil {
			return err
		}
		trained, err := s.store.TrainingDates(gctx, userID, start, end, true)
		if err != nil {
			return err
		}
		workouts = scoreWorkouts(checks, trained, len(days))
		return nil
	})

	g.Go(func() error {
		active, err := s.store.ActiveMedications(gctx, userID, start, end)
		if err != nil {
			return err
		}
		taken, err := s.store.TakenIntakeCount(gctx, userID, start, end)
		if err != nil {
			return err
		}
		meds = scoreMedications(active, taken, days)
		return nil
	})

	g.Go(func() error {
		budgets, err := s.store.BudgetTotalsByMonth(gctx, userID, startMonth, endMonth)
		if err != nil {
			return err
		}
		spent, err := s.store.ExpenseTotalsByDay(gctx, userID, start, end)
		if err != nil {
			return err
		}
		finance = scoreFinance(days, budgets, spent)
		return nil
	})

	g.Go(func() error {
		checks, err := s.store.DailyChecks(gctx, userID, start, end)
		if err != nil {
			return err
		}
		trained, err := s.store.TrainingDates(gctx, userID, start, end, false)
		if err != nil {
			return err
		}
		budgets, err := s.store.BudgetTotalsByMonth(gctx, userID, startMonth, endMonth)
		if err != nil {
			return err
		}
		spent, err := s.store.ExpenseTotalsByDay(gctx, userID, start, end)
		if err != nil {
			return err
		}
		consistency = scoreConsistency(days, checks, trained, budgets, spent)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	health := roundInt(float64(sleep.Score)*weightSleep +
		float64(workouts.Score)*weightWorkout +
		float64(meds.Score)*weightMeds)
	total := roundInt(float64(health)*weightHealth +
		float64(finance.Score)*weightFinance +
		float64(consistency.Score)*weightConsistency)

	// flat series for charting: the composite is range-level, so every day
	// carries the same total
	series := make([]DayScore, 0, len(days))
	for _, d := range days {
		series = append(series, DayScore{Date: d, Total: total})
	}

	return &ScoreResult{
		Start: start,
		End:   end,
		Avg:   total,
		Days:  series,
		Breakdown: ScoreBreakdown{
			Health: HealthBreakdown{
				Score:    health,
				Sleep:    sleep,
				Workouts: workouts,
				Meds:     meds,
			},
			Finance:     finance,
			Consistency: consistency,
		},
	}, nil
}

// ---------- sleep ----------

func scoreSleep(checks []DailyCheckRow) SleepScore {
	var sum float64
	var n int
	for _, c := range checks {
		if c.SleepHours != nil && *c.SleepHours > 0 {
			sum += *c.SleepHours
			n++
		}
	}

	var avg float64
	if n > 0 {
		avg = sum / float64(n)
	}

	var score int
	switch {
	case avg >= 7.5 && avg <= 8.5:
		score = 100
	case (avg >= 7.0 && avg < 7.5) || (avg > 8.5 && avg <= 9.0):
		score = 90
	case (avg >= 6.0 && avg < 7.0) || (avg > 9.0 && avg <= 10.0):
		score = 70
	case avg >= 5.0 && avg < 6.0:
		score = 55
	default:
		score = 40
	}

	return SleepScore{
		Score:    score,
		AvgHours: math.Round(avg*10) / 10,
		Days:     n,
	}
}

// ---------- workouts ----------

// A workout day is a date with a completed training event or a daily check
// with workout_done, counted once even when both signals fire.
func scoreWorkouts(checks []DailyCheckRow, trainedDates []string, totalDays int) WorkoutScore {
	done := make(map[string]struct{})
	for _, d := range trainedDates {
		done[d] = struct{}{}
	}
	for _, c := range checks {
		if c.WorkoutDone {
			done[c.Date] = struct{}{}
		}
	}
	doneDays := len(done)

	// weekly quota of 3, scaled to the range length
	target := roundInt(float64(totalDays) / 7.0 * 3.0)
	if target < 1 {
		target = 1
	}

	var score int
	switch {
	case doneDays == 0:
		score = 40
	case doneDays >= target+2:
		score = 100
	case doneDays == target+1:
		score = 95
	default:
		score = roundInt(90 * math.Min(1, float64(doneDays)/float64(target)))
	}

	return WorkoutScore{Score: score, DoneDays: doneDays, TargetDays: target}
}

// ---------- medications ----------

func parseMedTimes(raw string) []string {
	var times []string
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		return nil // soft-fail: a broken schedule plans nothing
	}
	return times
}

func frequencyMatches(freq, date string) bool {
	if freq == "" || freq == "daily" {
		return true
	}
	if strings.HasPrefix(freq, "dow:") {
		wd, err := utils.ISOWeekday(date)
		if err != nil {
			return false
		}
		for _, tok := range strings.Split(strings.TrimPrefix(freq, "dow:"), ",") {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err == nil && n == wd {
				return true
			}
		}
	}
	return false
}

func scoreMedications(active []models.Medication, taken int, days []string) MedicationScore {
	planned := 0
	for _, m := range active {
		doses := len(parseMedTimes(m.Times))
		if doses == 0 {
			continue
		}
		medStart := m.StartDate.Format(utils.ISODate)
		medEnd := ""
		if m.EndDate != nil {
			medEnd = m.EndDate.Format(utils.ISODate)
		}
		for _, day := range days {
			if day < medStart {
				continue
			}
			if medEnd != "" && day > medEnd {
				continue
			}
			if frequencyMatches(m.Frequency, day) {
				planned += doses
			}
		}
	}

	score := 100 // no schedule means nothing to miss
	if planned > 0 {
		ratio := float64(taken) / float64(planned)
		switch {
		case ratio >= 1:
			score = 100
		case ratio >= 0.8:
			score = 90
		case ratio >= 0.6:
			score = 75
		default:
			score = 55
		}
	}

	return MedicationScore{Score: score, Planned: planned, Taken: taken}
}

// ---------- finance ----------

func scoreFinance(days []string, budgets map[string]float64, spent map[string]float64) FinanceScore {
	if len(days) == 0 {
		return FinanceScore{Score: 0}
	}

	var sum float64
	for _, day := range days {
		month := utils.MonthOf(day)
		budget := budgets[month]
		if budget <= 0 {
			sum += 80 // no budget set: neutral day
			continue
		}

		allowance := budget / float64(utils.DaysInMonth(month))
		daySpent := spent[day]

		if daySpent <= allowance {
			under := (allowance - daySpent) / allowance
			bonus := roundInt(under * 10)
			if bonus > 2 {
				bonus = 2
			}
			sum += float64(95 + bonus)
			continue
		}

		over := (daySpent - allowance) / allowance
		switch {
		case over <= 0.10:
			sum += 85
		case over <= 0.25:
			sum += 70
		case over <= 0.50:
			sum += 55
		default:
			sum += 45
		}
	}

	return FinanceScore{Score: roundInt(sum / float64(len(days)))}
}

// ---------- consistency ----------

const (
	streakSleepMin       = 7.0
	streakSpendTolerance = 1.10
)

// scoreConsistency walks the range from the most recent day backwards,
// counting consecutive "good" days. A good day sleeps enough, stays within
// the pro-rated cumulative budget (10% tolerance) and shows some engagement:
// any daily check, or any training event whether or not it was completed.
func scoreConsistency(days []string, checks []DailyCheckRow, trainedDates []string, budgets map[string]float64, spent map[string]float64) ConsistencyScore {
	sleepByDay := make(map[string]float64)
	checkDates := make(map[string]struct{})
	for _, c := range checks {
		checkDates[c.Date] = struct{}{}
		if c.SleepHours != nil {
			sleepByDay[c.Date] = *c.SleepHours
		}
	}
	trained := make(map[string]struct{})
	for _, d := range trainedDates {
		trained[d] = struct{}{}
	}

	// cumulative spend per day within its month, counted only from the start
	// of the queried range
	cumByDay := make(map[string]float64, len(days))
	var cum float64
	var curMonth string
	for _, day := range days {
		if m := utils.MonthOf(day); m != curMonth {
			curMonth = m
			cum = 0
		}
		cum += spent[day]
		cumByDay[day] = cum
	}

	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		day := days[i]

		okSleep := sleepByDay[day] >= streakSleepMin

		month := utils.MonthOf(day)
		budget := budgets[month]
		okFinance := budget == 0 || spent[day] == 0
		if !okFinance {
			allowed := budget * float64(utils.DayOfMonth(day)) / float64(utils.DaysInMonth(month))
			okFinance = cumByDay[day] <= streakSpendTolerance*allowed
		}

		_, checked := checkDates[day]
		_, didTrain := trained[day]
		okEngaged := checked || didTrain

		if !(okSleep && okFinance && okEngaged) {
			break
		}
		streak++
	}

	var score int
	switch {
	case streak >= 7:
		score = 100
	case streak >= 5:
		score = 85
	case streak >= 3:
		score = 70
	case streak >= 1:
		score = 55
	default:
		score = 40
	}

	return ConsistencyScore{Score: score, Streak: streak, TotalDays: len(days)}
}

func roundInt(v float64) int { return int(math.Round(v)) }
