package main

import (
	"os"

	"github.com/rs/zerolog"

	"shopease/internal/config"
	"shopease/internal/database"
	"shopease/internal/models"
	"shopease/internal/repositories"
)

// Seeds the catalog with sample items for local development. Skips seeding
// when the catalog already has items.
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&existing); err != nil {
		logger.Fatal().Err(err).Msg("failed to inspect catalog")
	}
	if existing > 0 {
		logger.Info().Int("items", existing).Msg("catalog already seeded, nothing to do")
		return
	}

	itemRepo := repositories.NewItemRepository(db.DB)
	for _, req := range sampleItems() {
		item, err := itemRepo.Create(&req)
		if err != nil {
			logger.Fatal().Err(err).Str("name", req.Name).Msg("failed to seed item")
		}
		logger.Info().Int("id", item.ID).Str("name", item.Name).Msg("seeded item")
	}

	logger.Info().Int("count", len(sampleItems())).Msg("catalog seeded")
}

func sampleItems() []models.ItemCreateRequest {
	return []models.ItemCreateRequest{
		{
			Name:        "Floral Summer Dress",
			Description: "Lightweight floral print dress with a flattering A-line cut, perfect for warm days.",
			Price:       2499,
			Category:    models.CategoryDresses,
			Brand:       "ShopEase",
			Image:       "https://images.shopease.dev/items/floral-summer-dress.jpg",
			Stock:       40,
			Discount:    20,
			Featured:    true,
			Tags:        []string{"summer", "floral", "casual"},
		},
		{
			Name:        "Classic White Tee",
			Description: "Soft combed cotton crew neck tee that pairs with everything.",
			Price:       599,
			Category:    models.CategoryTops,
			Brand:       "ShopEase Basics",
			Image:       "https://images.shopease.dev/items/classic-white-tee.jpg",
			Stock:       120,
			Featured:    true,
			Tags:        []string{"basics", "cotton"},
		},
		{
			Name:        "High-Waist Skinny Jeans",
			Description: "Stretch denim with a high rise and skinny fit through the leg.",
			Price:       1899,
			Category:    models.CategoryJeans,
			Brand:       "DenimCo",
			Image:       "https://images.shopease.dev/items/high-waist-skinny-jeans.jpg",
			Material:    "Denim",
			Stock:       65,
			Discount:    10,
			Tags:        []string{"denim", "high-waist"},
		},
		{
			Name:        "Relaxed Joggers",
			Description: "Tapered joggers in brushed fleece with an elastic drawstring waist.",
			Price:       1299,
			Category:    models.CategoryLowers,
			Brand:       "ShopEase Active",
			Image:       "https://images.shopease.dev/items/relaxed-joggers.jpg",
			Stock:       80,
			Tags:        []string{"loungewear", "active"},
		},
		{
			Name:        "Seamless Comfort Set",
			Description: "Breathable seamless innerwear set with a second-skin feel.",
			Price:       999,
			Category:    models.CategoryInnerwear,
			Brand:       "ShopEase",
			Image:       "https://images.shopease.dev/items/seamless-comfort-set.jpg",
			Stock:       150,
			Tags:        []string{"seamless", "everyday"},
		},
		{
			Name:        "Embroidered Anarkali Kurta",
			Description: "Hand-embroidered full-length kurta in rich festive tones.",
			Price:       3499,
			Category:    models.CategoryEthnic,
			Brand:       "Heritage",
			Image:       "https://images.shopease.dev/items/embroidered-anarkali-kurta.jpg",
			Material:    "Silk blend",
			Stock:       25,
			Discount:    15,
			Featured:    true,
			Tags:        []string{"festive", "embroidered", "ethnic"},
		},
		{
			Name:        "Satin Slip Dress",
			Description: "Bias-cut satin slip dress with adjustable straps and a cowl neck.",
			Price:       2799,
			Category:    models.CategorySexy,
			Brand:       "After Hours",
			Image:       "https://images.shopease.dev/items/satin-slip-dress.jpg",
			Material:    "Satin",
			Stock:       30,
			Featured:    true,
			Tags:        []string{"evening", "satin"},
		},
	}
}
