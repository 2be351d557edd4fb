package database

import (
	"fmt"
	"log"
	"os"

	"chitoro-backend/hours"
	"chitoro-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "host=localhost user=postgres password=postgres dbname=chitoro port=5432 sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Ensure PostgreSQL has gen_random_uuid() available (pgcrypto extension).
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Branch{},
		&models.BranchHours{},
	)
}

func CreateDefaultAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" {
		adminEmail = "admin@chitoro.co.zw"
	}
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var existingUser models.User
	result := db.Where("email = ?", adminEmail).First(&existingUser)
	if result.Error == nil {
		// Admin already exists
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
		Name:     "Admin User",
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin created: %s", adminEmail)
	return nil
}

type sampleBranch struct {
	id       int64
	address  string
	city     string
	area     string
	lat, lng float64
	schedule hours.Schedule
}

type sampleBusiness struct {
	name     string
	btype    models.BusinessType
	branches []sampleBranch
}

func span(open, close string) *hours.Span {
	return &hours.Span{Open: open, Close: close}
}

// SeedSampleBusinesses populates an empty database with a handful of
// well-known listings, including an overnight Friday schedule for the
// pizzeria. It is a no-op once any business exists.
func SeedSampleBusinesses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Business{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []sampleBusiness{
		{
			name:  "OK Mart",
			btype: models.TypeSupermarket,
			branches: []sampleBranch{
				{
					id: 101, address: "123 Samora Machel Ave, Harare",
					city: "Harare", area: "CBD", lat: -17.824, lng: 31.049,
					schedule: hours.Schedule{
						span("8 AM", "8 PM"), span("8 AM", "8 PM"), span("8 AM", "8 PM"),
						span("8 AM", "8 PM"), span("8 AM", "9 PM"), span("9 AM", "7 PM"),
						span("9 AM", "5 PM"),
					},
				},
			},
		},
		{
			name:  "Alpha Pharmacy",
			btype: models.TypePharmacy,
			branches: []sampleBranch{
				{
					id: 201, address: "456 Jason Moyo St, Bulawayo",
					city: "Bulawayo", area: "CBD", lat: -20.151, lng: 28.586,
					schedule: hours.Schedule{
						span("9 AM", "7 PM"), span("9 AM", "7 PM"), span("9 AM", "7 PM"),
						span("9 AM", "7 PM"), span("9 AM", "7 PM"), span("10 AM", "1 PM"),
						nil,
					},
				},
				{
					id: 202, address: "Shop 5, Avondale Shopping Centre, Harare",
					city: "Harare", area: "Avondale", lat: -17.795, lng: 31.02,
					schedule: hours.Schedule{
						span("8 AM", "8 PM"), span("8 AM", "8 PM"), span("8 AM", "8 PM"),
						span("8 AM", "8 PM"), span("8 AM", "8 PM"), span("9 AM", "5 PM"),
						span("10 AM", "4 PM"),
					},
				},
			},
		},
		{
			name:  "Gweru Pizzeria",
			btype: models.TypeRestaurant,
			branches: []sampleBranch{
				{
					id: 301, address: "789 Robert Mugabe Way, Gweru",
					city: "Gweru", area: "CBD", lat: -19.458, lng: 29.815,
					schedule: hours.Schedule{
						nil, span("5 PM", "10 PM"), span("5 PM", "10 PM"),
						span("5 PM", "10 PM"), span("10 PM", "2 AM"), span("4 PM", "11 PM"),
						span("4 PM", "9 PM"),
					},
				},
			},
		},
		{
			name:  "TM Pick n Pay",
			btype: models.TypeSupermarket,
			branches: []sampleBranch{
				{
					id: 501, address: "212 Fife St, Bulawayo",
					city: "Bulawayo", area: "Hillcrest", lat: -20.165, lng: 28.601,
					schedule: hours.Schedule{
						span("7 AM", "10 PM"), span("7 AM", "10 PM"), span("7 AM", "10 PM"),
						span("7 AM", "10 PM"), span("7 AM", "10 PM"), span("7 AM", "10 PM"),
						span("7 AM", "10 PM"),
					},
				},
			},
		},
		{
			name:  "CureChem Pharmacy",
			btype: models.TypePharmacy,
			branches: []sampleBranch{
				{
					id: 801, address: "33 Robert Mugabe Rd, Masvingo",
					city: "Masvingo", area: "CBD", lat: -20.074, lng: 30.829,
					schedule: hours.Schedule{
						span("8 AM", "9 PM"), span("8 AM", "9 PM"), span("8 AM", "9 PM"),
						span("8 AM", "9 PM"), span("8 AM", "9 PM"), span("8 AM", "9 PM"),
						span("9 AM", "6 PM"),
					},
				},
			},
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, sample := range samples {
			business := models.Business{Name: sample.name, Type: sample.btype}
			if err := tx.Create(&business).Error; err != nil {
				return err
			}
			for _, sb := range sample.branches {
				branch := models.Branch{
					ID:         sb.id,
					BusinessID: business.ID,
					Address:    sb.address,
					City:       sb.city,
					Area:       sb.area,
					Latitude:   sb.lat,
					Longitude:  sb.lng,
				}
				if err := tx.Create(&branch).Error; err != nil {
					return err
				}
				rows := models.HourRows(branch.ID, sb.schedule)
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		log.Printf("Seeded %d sample businesses", len(samples))
		return nil
	})
}
