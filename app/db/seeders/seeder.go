package seeders

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/hubbra/go-storefront/app/db/fakers"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/hubbra/go-storefront/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type jersey struct {
	name        string
	team        string
	price       string
	description string
	isNew       bool
	category    string
	rating      string
	stock       int
}

var catalog = []jersey{
	{"Camisa Brasil Home 2024", "Brasil", "349.90", "Camisa oficial da Seleção Brasileira 2024. Tecnologia Dri-FIT, material de alta qualidade.", true, "Seleções", "4.8", 150},
	{"Camisa Real Madrid Home 24/25", "Real Madrid", "399.90", "Uniforme oficial do Real Madrid. Design clássico branco com detalhes em dourado.", true, "Clubes", "4.9", 120},
	{"Camisa Barcelona 24/25", "Barcelona", "389.90", "Terceiro uniforme do Barcelona com design moderno e inovador.", false, "Clubes", "4.6", 100},
	{"Camisa Manchester City 2024", "Manchester City", "419.90", "Edição especial Champions League do Manchester City.", true, "Clubes", "4.7", 90},
	{"Camisa PSG Home 2024", "PSG", "379.90", "Camisa principal do PSG com as cores tradicionais azul e vermelho.", false, "Clubes", "4.5", 110},
	{"Camisa Liverpool Away 24/25", "Liverpool", "389.90", "Segundo uniforme do Liverpool para a temporada 24/25.", true, "Clubes", "4.8", 95},
	{"Camisa Brasil Retrô 2002", "Brasil", "299.90", "Réplica da lendária camisa do pentacampeonato mundial de 2002. Edição limitada.", false, "Retrô", "5.0", 50},
	{"Camisa Bayern Munich 2024", "Bayern Munich", "399.90", "Camisa oficial do Bayern de Munique. Vermelho clássico com detalhes modernos.", true, "Clubes", "4.9", 105},
}

// Seed is idempotent: it skips tables that already hold rows.
func Seed(db *gorm.DB) error {
	if err := seedProducts(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Println("products already seeded, skipping")
		return nil
	}

	for _, j := range catalog {
		price, err := decimal.NewFromString(j.price)
		if err != nil {
			return fmt.Errorf("bad seed price for %s: %w", j.name, err)
		}
		rating, err := decimal.NewFromString(j.rating)
		if err != nil {
			return fmt.Errorf("bad seed rating for %s: %w", j.name, err)
		}

		product := &models.Product{
			ID:          uuid.New().String(),
			Name:        j.name,
			Team:        j.team,
			Price:       price,
			Images:      seedImages(j.name),
			Description: j.description,
			IsNew:       j.isNew,
			Category:    j.category,
			Sizes:       models.StringList{"P", "M", "G", "GG"},
			Rating:      rating,
			Stock:       j.stock,
		}
		if err := db.Create(product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", j.name, err)
		}
	}

	log.Printf("✅ %d products seeded", len(catalog))
	return nil
}

func seedImages(name string) models.StringList {
	base := slug.Make(name)
	return models.StringList{
		fmt.Sprintf("/images/products/%s-1.jpg", base),
		fmt.Sprintf("/images/products/%s-2.jpg", base),
	}
}

func seedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Println("users already seeded, skipping")
		return nil
	}

	admin := &models.User{
		ID:       uuid.New().String(),
		Name:     "Administrador",
		Email:    "admin@hubbra.com.br",
		Password: helpers.HashPassword("admin123"),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	for i := 0; i < 3; i++ {
		if err := db.Create(fakers.UserFaker()).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	log.Println("✅ users seeded")
	return nil
}
