package dtos

import (
	"errors"
	"fmt"

	"chitoro-backend/hours"
)

// ErrInvalidRange rejects a non-closed day whose open time is not
// strictly before its close time. This is the only hard validation in
// the schedule pipeline; everything below it degrades gracefully.
var ErrInvalidRange = errors.New("open time must be before close time")

// DayHoursRequest is one weekday of a schedule as submitted by the
// add/edit forms, in 24-hour "HH:MM" form.
type DayHoursRequest struct {
	Open     string `json:"open"`
	Close    string `json:"close"`
	IsClosed bool   `json:"is_closed"`
}

// ScheduleRequest carries all seven days, Monday first.
type ScheduleRequest [7]DayHoursRequest

// ToSchedule validates the submitted week and converts it to the
// engine's schedule form, translating times back to the stored
// 12-hour representation. Days marked closed come out nil.
func (r ScheduleRequest) ToSchedule() (hours.Schedule, error) {
	var schedule hours.Schedule
	for day, submitted := range r {
		if submitted.IsClosed {
			continue
		}
		open := hours.ParseTimeToMinutes(submitted.Open)
		close := hours.ParseTimeToMinutes(submitted.Close)
		if open >= close {
			return schedule, fmt.Errorf("%s: %w", hours.Day(day), ErrInvalidRange)
		}
		schedule[day] = &hours.Span{
			Open:  hours.FormatTo12Hour(submitted.Open),
			Close: hours.FormatTo12Hour(submitted.Close),
		}
	}
	return schedule, nil
}

// BranchRequest is the branch payload of the add/edit operations.
type BranchRequest struct {
	Address   string          `json:"address" binding:"required"`
	City      string          `json:"city" binding:"required"`
	Area      string          `json:"area" binding:"required"`
	Latitude  float64         `json:"latitude" binding:"required,latitude"`
	Longitude float64         `json:"longitude" binding:"required,longitude"`
	Schedule  ScheduleRequest `json:"schedule"`
}

// CreateBusinessRequest creates a business together with its first
// branch; every business has at least one branch by construction.
type CreateBusinessRequest struct {
	Name   string        `json:"name" binding:"required,min=2,max=120"`
	Type   string        `json:"type" binding:"required,oneof=Supermarket Pharmacy Restaurant"`
	Branch BranchRequest `json:"branch" binding:"required"`
}

// UpdateBranchRequest replaces a branch's mutable fields in place and
// may rename/retype the parent business. Ids never change.
type UpdateBranchRequest struct {
	Name   string        `json:"name" binding:"required,min=2,max=120"`
	Type   string        `json:"type" binding:"required,oneof=Supermarket Pharmacy Restaurant"`
	Branch BranchRequest `json:"branch" binding:"required"`
}
