package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

type MedicationInput struct {
	ID        uint     `json:"id"` // 0 = create
	Name      string   `json:"name" binding:"required"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"` // "daily" | "dow:1,3,5"
	Times     []string `json:"times"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date"`
	Active    *bool    `json:"active"`
}

type MedicationView struct {
	models.Medication
	TimesList []string `json:"times_list"`
}

func ListMedications(userID uint) ([]MedicationView, error) {
	var meds []models.Medication
	err := config.DB.
		Where("user_id = ?", userID).
		Order("active DESC, start_date DESC, id DESC").
		Find(&meds).Error
	if err != nil {
		return nil, err
	}

	out := make([]MedicationView, 0, len(meds))
	for _, m := range meds {
		out = append(out, MedicationView{Medication: m, TimesList: parseMedTimes(m.Times)})
	}
	return out, nil
}

// normalizeTimes keeps only the HH:MM prefix of each entry and drops blanks,
// matching what the web client may send ("09:00:00" etc).
func normalizeTimes(times []string) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		if len(t) > 5 {
			t = t[:5]
		}
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func UpsertMedication(userID uint, input MedicationInput) (*models.Medication, error) {
	start, err := time.Parse(utils.ISODate, input.StartDate)
	if err != nil {
		return nil, errors.New("invalid start_date, expected YYYY-MM-DD")
	}

	var end *time.Time
	if input.EndDate != "" {
		e, err := time.Parse(utils.ISODate, input.EndDate)
		if err != nil {
			return nil, errors.New("invalid end_date, expected YYYY-MM-DD")
		}
		end = &e
	}

	freq := input.Frequency
	if freq == "" {
		freq = "daily"
	}

	rawTimes, err := json.Marshal(normalizeTimes(input.Times))
	if err != nil {
		return nil, err
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	if input.ID != 0 {
		var med models.Medication
		if err := config.DB.Where("id = ? AND user_id = ?", input.ID, userID).First(&med).Error; err != nil {
			return nil, errors.New("medication not found")
		}
		med.Name = input.Name
		med.Dosage = input.Dosage
		med.Frequency = freq
		med.Times = string(rawTimes)
		med.StartDate = start
		med.EndDate = end
		med.Active = active
		return &med, config.DB.Save(&med).Error
	}

	med := models.Medication{
		UserID:    userID,
		Name:      input.Name,
		Dosage:    input.Dosage,
		Frequency: freq,
		Times:     string(rawTimes),
		StartDate: start,
		EndDate:   end,
		Active:    active,
	}
	return &med, config.DB.Create(&med).Error
}

func ToggleMedication(userID, medID uint, active bool) error {
	res := config.DB.Model(&models.Medication{}).
		Where("id = ? AND user_id = ?", medID, userID).
		Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("medication not found")
	}
	return nil
}

func DeleteMedication(userID, medID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", medID, userID).
		Delete(&models.Medication{}).Error
}

func MarkIntake(userID, medID uint, date, slot, status string) (*models.MedicationIntake, error) {
	d, err := time.Parse(utils.ISODate, date)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}
	if status != models.IntakeTaken && status != models.IntakeSkipped {
		return nil, errors.New("status must be taken or skipped")
	}

	intake := models.MedicationIntake{
		UserID:       userID,
		MedicationID: medID,
		IntakeDate:   d,
		IntakeTime:   slot,
		Status:       status,
	}
	return &intake, config.DB.Create(&intake).Error
}

type ScheduleSlot struct {
	MedicationID uint   `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"`
	Taken        bool   `json:"taken"`
}

// DaySchedule expands the active medications into the planned dose slots of
// one day and marks which slots already have a taken intake.
func DaySchedule(ctx context.Context, userID uint, date string) ([]ScheduleSlot, error) {
	store := NewScoreStore(config.DB)
	meds, err := store.ActiveMedications(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	var intakes []models.MedicationIntake
	if err := config.DB.WithContext(ctx).
		Where("user_id = ? AND intake_date = ? AND status = ?", userID, date, models.IntakeTaken).
		Find(&intakes).Error; err != nil {
		return nil, err
	}
	type slotKey struct {
		medID uint
		time  string
	}
	taken := make(map[slotKey]bool, len(intakes))
	for _, in := range intakes {
		taken[slotKey{in.MedicationID, in.IntakeTime}] = true
	}

	var slots []ScheduleSlot
	for _, m := range meds {
		if !frequencyMatches(m.Frequency, date) {
			continue
		}
		for _, t := range parseMedTimes(m.Times) {
			slots = append(slots, ScheduleSlot{
				MedicationID: m.ID,
				Name:         m.Name,
				Dosage:       m.Dosage,
				Time:         t,
				Taken:        taken[slotKey{m.ID, t}],
			})
		}
	}
	return slots, nil
}
