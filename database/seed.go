package database

import (
	"log"

	"promotions-backend/models"

	"gorm.io/gorm"
)

// LoadSampleData loads a set of sample promotions covering every type plus
// some already-expired records so the inactive filter has matches.
func LoadSampleData(db *gorm.DB) (int, error) {
	today := models.Today()

	samples := []models.Promotion{
		{Name: "Summer Sale 20% Off", PromotionType: models.TypePercent, Value: 20, ProductID: 101,
			StartDate: today, EndDate: today.AddDays(30)},
		{Name: "Black Friday 50% Discount", PromotionType: models.TypePercent, Value: 50, ProductID: 102,
			StartDate: today, EndDate: today.AddDays(7)},
		{Name: "Winter Clearance 30% Off", PromotionType: models.TypePercent, Value: 30, ProductID: 103,
			StartDate: today.AddDays(-10), EndDate: today.AddDays(20)},
		{Name: "Holiday Special $10 Off", PromotionType: models.TypeDiscount, Value: 10, ProductID: 201,
			StartDate: today, EndDate: today.AddDays(15)},
		{Name: "New Customer $25 Discount", PromotionType: models.TypeDiscount, Value: 25, ProductID: 202,
			StartDate: today, EndDate: today.AddDays(60)},
		{Name: "Flash Sale $5 Off", PromotionType: models.TypeDiscount, Value: 5, ProductID: 203,
			StartDate: today, EndDate: today.AddDays(3)},
		{Name: "Buy One Get One Free", PromotionType: models.TypeBogo, Value: 1, ProductID: 301,
			StartDate: today, EndDate: today.AddDays(14)},
		{Name: "BOGO 50% Off Second Item", PromotionType: models.TypeBogo, Value: 50, ProductID: 302,
			StartDate: today, EndDate: today.AddDays(21)},
		{Name: "Weekend BOGO Special", PromotionType: models.TypeBogo, Value: 1, ProductID: 303,
			StartDate: today.AddDays(-5), EndDate: today.AddDays(2)},
		// Expired records for the inactive filter.
		{Name: "Expired Spring Sale", PromotionType: models.TypePercent, Value: 25, ProductID: 401,
			StartDate: today.AddDays(-60), EndDate: today.AddDays(-30)},
		{Name: "Past Holiday Discount", PromotionType: models.TypeDiscount, Value: 15, ProductID: 402,
			StartDate: today.AddDays(-45), EndDate: today.AddDays(-15)},
	}

	created := 0
	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			return created, err
		}
		created++
		log.Printf("Created: %s (%s)", samples[i].Name, samples[i].PromotionType)
	}

	log.Printf("Loaded %d promotions into the database", created)
	return created, nil
}
