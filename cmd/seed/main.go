package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/aaronwins356/RoveShopV2/config"
	"github.com/aaronwins356/RoveShopV2/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main writes the ROVE catalog fixture to CATALOG_FILE (default products.json).
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("ROVE Storefront - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	path := config.GetEnv("CATALOG_FILE", "products.json")

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("❌ Catalog file '%s' already exists, refusing to overwrite\n", path)
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(catalogFixture(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}

	log.Printf("✓ Wrote %d products to %s", len(catalogFixture()), path)
}

func catalogFixture() []models.Product {
	return []models.Product{
		{
			SKU:         "RV-CLASSIC-01",
			Name:        "ROVE Classic",
			Price:       89.00,
			Colors:      []string{"Matte Black", "Tortoise", "Crystal"},
			Description: "The original ROVE frame. Lightweight acetate with polarized lenses.",
			Weight:      24,
			Dimensions:  "145x48x20 mm",
			Tags:        []string{"classic", "polarized", "unisex"},
			Image:       "rove-classic.png",
		},
		{
			SKU:         "RV-AVIATOR-02",
			Name:        "ROVE Aviator",
			Price:       109.00,
			Colors:      []string{"Gold", "Gunmetal"},
			Description: "Stainless aviator with gradient lenses and adjustable nose pads.",
			Weight:      28,
			Dimensions:  "150x52x18 mm",
			Tags:        []string{"aviator", "metal"},
			Image:       "rove-aviator.png",
		},
		{
			SKU:         "RV-SPORT-03",
			Name:        "ROVE Sport",
			Price:       129.00,
			Colors:      []string{"Matte Black", "Electric Blue", "Signal Red"},
			Description: "Wrap-around sport frame with grippy temples and shatterproof lenses.",
			Weight:      22,
			Dimensions:  "140x46x22 mm",
			Tags:        []string{"sport", "polarized", "lightweight"},
			Image:       "rove-sport.png",
		},
		{
			SKU:         "RV-ROUND-04",
			Name:        "ROVE Round",
			Price:       95.00,
			Colors:      []string{"Tortoise", "Honey", "Matte Black"},
			Description: "Retro round frame in bio-acetate with anti-reflective coating.",
			Weight:      21,
			Dimensions:  "142x47x21 mm",
			Tags:        []string{"round", "retro", "bio-acetate"},
			Image:       "rove-round.png",
		},
	}
}
