package models

import (
	"testing"

	"chitoro-backend/hours"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}

	// Raw SQLite DDL instead of AutoMigrate: the model tags carry
	// PostgreSQL-specific defaults like gen_random_uuid().
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY, "email" TEXT NOT NULL UNIQUE, "password" TEXT NOT NULL,
			"name" TEXT, "role" TEXT DEFAULT 'contributor', "phone" TEXT,
			"is_blocked" INTEGER DEFAULT 0,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "businesses" (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT, "name" TEXT NOT NULL, "type" TEXT NOT NULL,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "branches" (
			"id" INTEGER PRIMARY KEY, "business_id" INTEGER NOT NULL,
			"address" TEXT NOT NULL, "city" TEXT NOT NULL, "area" TEXT,
			"latitude" REAL NOT NULL, "longitude" REAL NOT NULL,
			"created_at" DATETIME, "updated_at" DATETIME, "deleted_at" DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS "branch_hours" (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT, "branch_id" INTEGER NOT NULL,
			"day_of_week" INTEGER NOT NULL, "open_time" TEXT NOT NULL DEFAULT '9 AM',
			"close_time" TEXT NOT NULL DEFAULT '5 PM', "is_closed" INTEGER DEFAULT 0,
			"created_at" DATETIME, "updated_at" DATETIME
		)`,
	}
	for _, ddl := range tables {
		if err := db.Exec(ddl).Error; err != nil {
			t.Fatal(err)
		}
	}
	return db
}

func TestUserBeforeCreateAssignsUUID(t *testing.T) {
	db := setupTestDB(t)

	user := User{Email: "tari@example.com", Password: "hashed", Name: "Tari"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	if user.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a generated uuid")
	}
}

func TestBranchBeforeCreateAssignsClockID(t *testing.T) {
	db := setupTestDB(t)

	business := Business{Name: "OK Mart", Type: TypeSupermarket}
	if err := db.Create(&business).Error; err != nil {
		t.Fatal(err)
	}

	branch := Branch{
		BusinessID: business.ID,
		Address:    "123 Samora Machel Ave",
		City:       "Harare",
		Area:       "CBD",
		Latitude:   -17.824,
		Longitude:  31.049,
	}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatal(err)
	}
	if branch.ID == 0 {
		t.Error("expected a clock-based id")
	}

	// An explicitly set id is preserved.
	preset := Branch{ID: 4242, BusinessID: business.ID, Address: "x", City: "Harare", Latitude: 1, Longitude: 1}
	if err := db.Create(&preset).Error; err != nil {
		t.Fatal(err)
	}
	if preset.ID != 4242 {
		t.Errorf("expected preset id to survive, got %d", preset.ID)
	}
}

func TestBranchSchedule(t *testing.T) {
	branch := Branch{
		Hours: []BranchHours{
			{DayOfWeek: 0, OpenTime: "8 AM", CloseTime: "8 PM"},
			{DayOfWeek: 4, OpenTime: "10 PM", CloseTime: "2 AM"},
			{DayOfWeek: 6, IsClosed: true, OpenTime: "9 AM", CloseTime: "5 PM"},
		},
	}

	schedule := branch.Schedule()
	if schedule[hours.Monday] == nil || schedule[hours.Monday].Open != "8 AM" {
		t.Errorf("unexpected Monday span: %+v", schedule[hours.Monday])
	}
	if schedule[hours.Friday] == nil || schedule[hours.Friday].Close != "2 AM" {
		t.Errorf("unexpected Friday span: %+v", schedule[hours.Friday])
	}
	// Closed days and missing days both come out nil.
	if schedule[hours.Sunday] != nil {
		t.Errorf("expected Sunday closed, got %+v", schedule[hours.Sunday])
	}
	if schedule[hours.Tuesday] != nil {
		t.Errorf("expected Tuesday closed, got %+v", schedule[hours.Tuesday])
	}
}

func TestHourRowsRoundTrip(t *testing.T) {
	var schedule hours.Schedule
	schedule[hours.Monday] = &hours.Span{Open: "8 AM", Close: "5 PM"}
	schedule[hours.Friday] = &hours.Span{Open: "10 PM", Close: "2 AM"}

	rows := HourRows(77, schedule)
	if len(rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(rows))
	}

	branch := Branch{Hours: rows}
	got := branch.Schedule()
	for day := hours.Monday; day <= hours.Sunday; day++ {
		want := schedule[day]
		if (want == nil) != (got[day] == nil) {
			t.Errorf("%s: closed mismatch", day)
			continue
		}
		if want != nil && *want != *got[day] {
			t.Errorf("%s: got %+v, want %+v", day, got[day], want)
		}
	}
}

func TestBusinessTypeValid(t *testing.T) {
	for _, bt := range BusinessTypes {
		if !bt.Valid() {
			t.Errorf("%s should be valid", bt)
		}
	}
	if BusinessType("Bakery").Valid() {
		t.Error("Bakery is not a known type")
	}
}
