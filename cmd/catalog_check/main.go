// Lints the product catalog file before deployment: reports per-brand
// product counts and flags entries with missing fields that would weaken
// the grounding prompt.
package main

import (
	"log"
	"os"

	"lira-support-be/internal/catalog"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		path = "products.json"
	}

	color.Cyan("🔍 Checking catalog: %s\n", path)

	cat, err := catalog.Load(path)
	if err != nil {
		color.Red("Failed to load catalog: %v", err)
		os.Exit(1)
	}

	warnings := 0
	for _, brand := range cat.Brands {
		color.Yellow("\nBrand: %s (%d products)", brand.BrandName, len(brand.Products))
		if brand.BrandName == "" {
			color.Red("  - brand has no brand_name")
			warnings++
		}
		for i, p := range brand.Products {
			if p.Name == "" {
				color.Red("  - product #%d has no name", i+1)
				warnings++
			}
			if p.PriceBDT <= 0 {
				color.Red("  - product %q has no price", p.Name)
				warnings++
			}
			if len(p.Ingredients) == 0 {
				color.Red("  - product %q lists no ingredients", p.Name)
				warnings++
			}
		}
	}

	products := cat.Flatten()
	if warnings == 0 {
		color.Green("\n✓ Catalog OK: %d brands, %d products", len(cat.Brands), len(products))
		return
	}
	color.Red("\n%d warning(s) across %d products", warnings, len(products))
	os.Exit(1)
}
