// internal/seed/seed.go
package seed

import (
	"context"
	"log"
	"time"

	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
	"github.com/shopspring/decimal"
)

// SeedData creates the starting content for a fresh install: the default
// portfolio categories plus a handful of services and testimonials so the
// site is not empty on first deploy. It is a no-op when categories exist.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	count, err := repos.CategoryRepo.Count(ctx)
	if err != nil {
		log.Printf("[Seed] Error checking existing data: %v", err)
		return
	}
	if count > 0 {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating initial data...")

	// ============================================
	// DEFAULT CATEGORIES
	// ============================================
	categories := []string{"Bridal", "Party", "Editorial", repository.UncategorizedName}
	for _, name := range categories {
		if err := repos.CategoryRepo.Create(ctx, &repository.Category{Name: name}); err != nil {
			log.Printf("[Seed] Error creating category %s: %v", name, err)
		}
	}
	log.Printf("✅ Created %d categories", len(categories))

	// ============================================
	// SAMPLE SERVICES
	// ============================================
	bridalPrice := decimal.NewFromInt(250)
	partyPrice := decimal.NewFromInt(90)
	trialPrice := decimal.NewFromInt(60)

	services := []*repository.Service{
		{
			Title:       "Bridal Makeup",
			Description: "Full bridal look with premium long-wear products, lashes and touch-up kit.",
			Price:       &bridalPrice,
			SortOrder:   1,
			IsActive:    true,
		},
		{
			Title:       "Party Makeup",
			Description: "Glam evening look for parties, receptions and photo shoots.",
			Price:       &partyPrice,
			SortOrder:   2,
			IsActive:    true,
		},
		{
			Title:       "Makeup Trial",
			Description: "One-hour trial session to design your look before the big day.",
			Price:       &trialPrice,
			SortOrder:   3,
			IsActive:    true,
		},
	}
	for _, svc := range services {
		if err := repos.ServiceRepo.Create(ctx, svc); err != nil {
			log.Printf("[Seed] Error creating service %s: %v", svc.Title, err)
		}
	}
	log.Printf("✅ Created %d services", len(services))

	// ============================================
	// SAMPLE TESTIMONIALS
	// ============================================
	testimonials := []*repository.Testimonial{
		{
			ClientName: "Aisha R.",
			Review:     "My bridal makeup was flawless and lasted the whole day. Could not recommend more!",
			Rating:     5,
			EventType:  "Wedding",
			Date:       time.Now().AddDate(0, -2, 0),
			IsActive:   true,
		},
		{
			ClientName: "Priya S.",
			Review:     "Beautiful party look, exactly what I asked for. Booking again for sure.",
			Rating:     5,
			EventType:  "Birthday",
			Date:       time.Now().AddDate(0, -1, 0),
			IsActive:   true,
		},
	}
	for _, t := range testimonials {
		if err := repos.TestimonialRepo.Create(ctx, t); err != nil {
			log.Printf("[Seed] Error creating testimonial from %s: %v", t.ClientName, err)
		}
	}
	log.Printf("✅ Created %d testimonials", len(testimonials))

	log.Println("[Seed] Initial data created")
}
