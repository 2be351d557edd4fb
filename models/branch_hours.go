package models

import (
	"time"

	"chitoro-backend/hours"
)

// BranchHours is one weekday's opening window for a branch. Every
// branch carries exactly seven rows, one per day; is_closed marks a
// day the branch does not open at all.
type BranchHours struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BranchID  int64     `gorm:"not null;index" json:"branch_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0=Monday, 6=Sunday
	OpenTime  string    `gorm:"not null;default:'9 AM'" json:"open_time"`
	CloseTime string    `gorm:"not null;default:'5 PM'" json:"close_time"`
	IsClosed  bool      `gorm:"default:false" json:"is_closed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Schedule folds the branch's hour rows into the fixed seven-day
// schedule the status engine consumes. Days without a row, and days
// marked closed, come out as nil.
func (b *Branch) Schedule() hours.Schedule {
	var schedule hours.Schedule
	for _, row := range b.Hours {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 || row.IsClosed {
			continue
		}
		schedule[row.DayOfWeek] = &hours.Span{Open: row.OpenTime, Close: row.CloseTime}
	}
	return schedule
}

// HourRows converts a schedule back into seven BranchHours rows for
// persistence, preserving the all-days-present invariant.
func HourRows(branchID int64, schedule hours.Schedule) []BranchHours {
	rows := make([]BranchHours, 0, 7)
	for day, span := range schedule {
		row := BranchHours{BranchID: branchID, DayOfWeek: day}
		if span == nil {
			row.IsClosed = true
		} else {
			row.OpenTime = span.Open
			row.CloseTime = span.Close
		}
		rows = append(rows, row)
	}
	return rows
}
