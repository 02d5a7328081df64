package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedPlans(db)
	seedPromotions(db)
	seedDeviceContributions(db)
	seedServiceContributions(db)

	log.Println("Seeding completed successfully!")
}

func seedPlans(db *sql.DB) {
	plans := []struct {
		ID       string
		Name     string
		Prices   [5]float64
		Premium  string
		Hotspot  float64
		Features []string
	}{
		{
			"unlimited-ultimate", "Unlimited Ultimate",
			[5]float64{90, 80, 65, 55, 52},
			"Unlimited Premium Data", 60,
			[]string{"Unlimited Premium Data", "5G Ultra Wideband", "Mobile hotspot 60GB", "Disney+, Hulu, ESPN+, Netflix, Apple Music"},
		},
		{
			"unlimited-plus", "Unlimited Plus",
			[5]float64{80, 70, 55, 45, 42},
			"Unlimited", 30,
			[]string{"Unlimited talk, text & data", "5G Ultra Wideband", "Mobile hotspot 30GB", "Disney+, Hulu, ESPN+"},
		},
		{
			"unlimited-welcome", "Unlimited Welcome",
			[5]float64{65, 55, 40, 30, 27},
			"Unlimited", 5,
			[]string{"Unlimited talk, text & data", "5G access", "Mobile hotspot 5GB", "Disney+ (6 months)"},
		},
	}

	fmt.Println("Seeding Plans...")
	for _, p := range plans {
		_, err := db.Exec(`
			INSERT INTO plans (id, name, type, price_1, price_2, price_3, price_4, price_5, data_premium, data_hotspot, features)
			VALUES ($1, $2, 'consumer', $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				price_1 = EXCLUDED.price_1,
				price_2 = EXCLUDED.price_2,
				price_3 = EXCLUDED.price_3,
				price_4 = EXCLUDED.price_4,
				price_5 = EXCLUDED.price_5,
				data_premium = EXCLUDED.data_premium,
				data_hotspot = EXCLUDED.data_hotspot,
				features = EXCLUDED.features,
				updated_at = now();
		`, p.ID, p.Name, p.Prices[0], p.Prices[1], p.Prices[2], p.Prices[3], p.Prices[4],
			p.Premium, p.Hotspot, pq.Array(p.Features))
		if err != nil {
			log.Printf("Failed to seed plan %s: %v", p.ID, err)
		}
	}
}

func seedPromotions(db *sql.DB) {
	promos := []struct {
		ID          string
		Title       string
		StartDate   string
		KeyPoints   []string
		Eligibility []string
		PartnerType string
		PromoType   string
	}{
		{
			"bmsm-tab-10", "BMSM: TCL Tab 10 5G for $4/mo", "01.09.25",
			[]string{"Requires any unlimited phone plan", "36-month device payment"},
			[]string{"new", "upgrade"}, "tcl", "bmsm",
		},
		{
			"bmsm-apple-watch-se", "BMSM - Apple Watch SE as low as $5/mo", "01.09.25",
			[]string{"$120 off over 36 months", "Requires watch line"},
			[]string{"new"}, "apple", "bmsm",
		},
		{
			"bmsm-galaxy-watch", "BMSM - Samsung Galaxy Watches as low as $5/mo", "01.09.25",
			[]string{"Discount applied over 36 months", "Requires watch line"},
			[]string{"new", "upgrade"}, "samsung", "bmsm",
		},
		{
			"bmsm-ipad", "BMSM - iPad as low as $5/mo", "01.09.25",
			[]string{"Requires tablet line", "Select models only"},
			[]string{"new"}, "apple", "bmsm",
		},
	}

	fmt.Println("Seeding Promotions...")
	for _, p := range promos {
		_, err := db.Exec(`
			INSERT INTO promotions (id, title, start_date, key_points, eligibility, partner_type, promo_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				title = EXCLUDED.title,
				start_date = EXCLUDED.start_date,
				key_points = EXCLUDED.key_points,
				eligibility = EXCLUDED.eligibility,
				partner_type = EXCLUDED.partner_type,
				promo_type = EXCLUDED.promo_type,
				updated_at = now();
		`, p.ID, p.Title, p.StartDate, pq.Array(p.KeyPoints), pq.Array(p.Eligibility), p.PartnerType, p.PromoType)
		if err != nil {
			log.Printf("Failed to seed promotion %s: %v", p.ID, err)
		}
	}
}

func seedDeviceContributions(db *sql.DB) {
	devices := []struct {
		ID           string
		Name         string
		Manufacturer string
		DPPPrice     float64
		BaseSpiff    float64
		WelcomeNew   float64
		UltimateNew  float64
		WelcomeUpg   float64
		UltimateUpg  float64
	}{
		{"iphone-15-128", "iPhone 15 128GB", "Apple", 840, 15, 35, 75, 15, 35},
		{"iphone-15-256", "iPhone 15 256GB", "Apple", 940, 15, 35, 75, 15, 35},
		{"pixel-8-128", "Google Pixel 8 128GB", "Google", 806, 0, 65, 95, 45, 65},
		{"galaxy-s24-128", "Samsung Galaxy S24 128GB", "Samsung", 860, 10, 55, 85, 35, 55},
		{"galaxy-s24-ultra", "Samsung Galaxy S24 Ultra", "Samsung", 1300, 20, 65, 105, 45, 70},
	}

	fmt.Println("Seeding Device Contributions...")
	for _, d := range devices {
		_, err := db.Exec(`
			INSERT INTO device_contributions
				(id, device_name, manufacturer, dpp_price, base_spiff,
				 welcome_unlimited_new, plus_ultimate_new,
				 welcome_unlimited_upgrade, plus_ultimate_upgrade)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE SET
				device_name = EXCLUDED.device_name,
				dpp_price = EXCLUDED.dpp_price,
				base_spiff = EXCLUDED.base_spiff,
				welcome_unlimited_new = EXCLUDED.welcome_unlimited_new,
				plus_ultimate_new = EXCLUDED.plus_ultimate_new,
				welcome_unlimited_upgrade = EXCLUDED.welcome_unlimited_upgrade,
				plus_ultimate_upgrade = EXCLUDED.plus_ultimate_upgrade;
		`, d.ID, d.Name, d.Manufacturer, d.DPPPrice, d.BaseSpiff,
			d.WelcomeNew, d.UltimateNew, d.WelcomeUpg, d.UltimateUpg)
		if err != nil {
			log.Printf("Failed to seed device %s: %v", d.ID, err)
		}
	}
}

func seedServiceContributions(db *sql.DB) {
	services := []struct {
		ID           string
		Name         string
		Category     string
		Contribution float64
		Spiff        float64
		Total        float64
	}{
		{"home-internet", "5G Home Internet", "connectivity", 50, 25, 75},
		{"device-protection", "Device Protection", "insurance", 20, 10, 30},
		{"mobile-secure", "Mobile Secure", "insurance", 15, 5, 20},
		{"smartwatch-line", "Smartwatch Line", "feature", 10, 5, 15},
		{"tablet-line", "Tablet Line", "feature", 10, 5, 15},
	}

	fmt.Println("Seeding Service Contributions...")
	for _, s := range services {
		_, err := db.Exec(`
			INSERT INTO service_contributions (id, name, category, contribution, spiff, total_contribution)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				category = EXCLUDED.category,
				contribution = EXCLUDED.contribution,
				spiff = EXCLUDED.spiff,
				total_contribution = EXCLUDED.total_contribution;
		`, s.ID, s.Name, s.Category, s.Contribution, s.Spiff, s.Total)
		if err != nil {
			log.Printf("Failed to seed service %s: %v", s.ID, err)
		}
	}
}
