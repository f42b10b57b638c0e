package main

import (
	"log"

	"storefront-bot/internal/entity"
	"storefront-bot/internal/model"

	"gorm.io/gorm"
)

// seedCatalog inserts the sample rows whose name is not taken yet.
func seedCatalog(db *gorm.DB) {
	products := []model.Product{
		{Name: "Makita DF333D Cordless Drill", Brand: "Makita", Model: "DF333DSAE", Description: "12V max compact drill driver, two batteries", PriceHKD: 899, CategoryType: entity.CategoryDrilling},
		{Name: "Makita HR2470 Rotary Hammer", Brand: "Makita", Model: "HR2470", Description: "24mm SDS-plus, three modes", PriceHKD: 1280, CategoryType: entity.CategoryDrilling},
		{Name: "Bosch GKS 190 Circular Saw", Brand: "Bosch", Model: "GKS 190", Description: "1400W, 190mm blade", PriceHKD: 1150, CategoryType: entity.CategoryCutting},
		{Name: "Dewalt DCS369 Reciprocating Saw", Brand: "Dewalt", Model: "DCS369N", Description: "18V one-handed reciprocating saw, body only", PriceHKD: 1690, CategoryType: entity.CategoryCutting},
		{Name: "Bosch GEX 125 Random Orbit Sander", Brand: "Bosch", Model: "GEX 125-1 AE", Description: "250W with dust box", PriceHKD: 720, CategoryType: entity.CategorySurface},
		{Name: "Makita 9557HN Angle Grinder", Brand: "Makita", Model: "9557HN", Description: "115mm, 840W", PriceHKD: 560, CategoryType: entity.CategorySurface},
		{Name: "Bosch GLL 3-80 Line Laser", Brand: "Bosch", Model: "GLL 3-80", Description: "360 degree three-plane laser level", PriceHKD: 3280, CategoryType: entity.CategorySpecialty},
	}
	shops := []model.Shop{
		{Name: "Mong Kok Branch", Region: "Kowloon", District: "Yau Tsim Mong", Address: "88 Shanghai Street, Mong Kok", Latitude: 22.3193, Longitude: 114.1694, Phone: "2388 1234", OpeningHours: "Mon-Sat 09:30-19:00"},
		{Name: "Sham Shui Po Branch", Region: "Kowloon", District: "Sham Shui Po", Address: "201 Ki Lung Street, Sham Shui Po", Latitude: 22.3303, Longitude: 114.1622, Phone: "2729 5678", OpeningHours: "Mon-Sun 10:00-20:00"},
		{Name: "Wan Chai Branch", Region: "Hong Kong Island", District: "Wan Chai", Address: "12 Lockhart Road, Wan Chai", Latitude: 22.2783, Longitude: 114.1747, Phone: "2527 9012", OpeningHours: "Mon-Sat 09:00-18:30"},
		{Name: "Tuen Mun Branch", Region: "New Territories", District: "Tuen Mun", Address: "3 Tsing Hoi Circuit, Tuen Mun", Latitude: 22.3916, Longitude: 113.9771, Phone: "2458 3456", OpeningHours: "Mon-Sat 10:00-19:00"},
	}
	questions := []model.Question{
		{Question: "Do your power tools come with a warranty?", Answer: "All power tools carry the manufacturer's one-year warranty. Keep your receipt."},
		{Question: "Can I return an item?", Answer: "Unused items in original packaging can be returned within 7 days with the receipt."},
		{Question: "Do you deliver?", Answer: "We deliver across Hong Kong. Orders over HKD 1,000 ship free."},
		{Question: "Which payment methods do you accept?", Answer: "Cash, Octopus, credit cards, FPS and PayMe."},
	}

	for i := range products {
		res := db.Where(model.Product{Name: products[i].Name}).FirstOrCreate(&products[i])
		if res.Error != nil {
			log.Printf("Warn: product %q: %v", products[i].Name, res.Error)
		}
	}
	for i := range shops {
		res := db.Where(model.Shop{Name: shops[i].Name}).FirstOrCreate(&shops[i])
		if res.Error != nil {
			log.Printf("Warn: shop %q: %v", shops[i].Name, res.Error)
		}
	}
	for i := range questions {
		res := db.Where(model.Question{Question: questions[i].Question}).FirstOrCreate(&questions[i])
		if res.Error != nil {
			log.Printf("Warn: question %q: %v", questions[i].Question, res.Error)
		}
	}

	log.Printf("Catalog seeded: %d products, %d shops, %d questions", len(products), len(shops), len(questions))
}
