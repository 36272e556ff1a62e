package memory

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Biz-Hub01/pureez/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Category    string    `yaml:"category"`
	Seller      string    `yaml:"seller"`
	Image       string    `yaml:"image"`
	Price       float64   `yaml:"price"`
	Stock       int       `yaml:"stock"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// LoadSeed reads a YAML product list. Prices are in the base currency.
func LoadSeed(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]domain.Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog seed: %w", err)
	}

	out := make([]domain.Product, 0, len(f.Products))
	seen := make(map[string]struct{}, len(f.Products))
	for i, sp := range f.Products {
		id := strings.TrimSpace(sp.ID)
		if id == "" || strings.TrimSpace(sp.Title) == "" {
			return nil, fmt.Errorf("catalog seed: product %d needs id and title", i)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("catalog seed: duplicate product id %s", id)
		}
		if sp.Price <= 0 || sp.Stock < 0 {
			return nil, fmt.Errorf("catalog seed: product %s has invalid price or stock", id)
		}
		seen[id] = struct{}{}
		out = append(out, domain.Product{
			ID:          id,
			Title:       strings.TrimSpace(sp.Title),
			Description: sp.Description,
			Category:    strings.ToLower(strings.TrimSpace(sp.Category)),
			Seller:      sp.Seller,
			Image:       sp.Image,
			Price:       decimal.NewFromFloat(sp.Price),
			Stock:       sp.Stock,
			CreatedAt:   sp.CreatedAt,
		})
	}
	return out, nil
}

// DefaultSeed is the demo catalog used when no seed file is configured.
func DefaultSeed() []domain.Product {
	day := func(d int) time.Time { return time.Date(2026, time.January, d, 9, 0, 0, 0, time.UTC) }
	return []domain.Product{
		{ID: "kikoy-beach-towel", Title: "Kikoy Beach Towel", Category: "home", Seller: "Lamu Weavers", Image: "/img/kikoy.jpg", Price: decimal.NewFromInt(1800), Stock: 40, CreatedAt: day(2), Description: "Hand-loomed cotton kikoy."},
		{ID: "maasai-shuka", Title: "Maasai Shuka Blanket", Category: "home", Seller: "Narok Crafts", Image: "/img/shuka.jpg", Price: decimal.NewFromInt(2500), Stock: 12, CreatedAt: day(4), Description: "Red checked wool blend shuka."},
		{ID: "kenyan-aa-coffee", Title: "Kenyan AA Coffee 500g", Category: "grocery", Seller: "Nyeri Highlands", Image: "/img/coffee.jpg", Price: decimal.NewFromInt(1200), Stock: 100, CreatedAt: day(6), Description: "Single origin, medium roast."},
		{ID: "soapstone-bowl", Title: "Kisii Soapstone Bowl", Category: "decor", Seller: "Tabaka Carvers", Image: "/img/soapstone.jpg", Price: decimal.NewFromInt(950), Stock: 0, CreatedAt: day(8), Description: "Carved and polished soapstone."},
		{ID: "sisal-kiondo", Title: "Sisal Kiondo Basket", Category: "accessories", Seller: "Machakos Collective", Image: "/img/kiondo.jpg", Price: decimal.NewFromInt(3200), Stock: 7, CreatedAt: day(10), Description: "Woven sisal with leather straps."},
		{ID: "beaded-sandals", Title: "Beaded Leather Sandals", Category: "fashion", Seller: "Narok Crafts", Image: "/img/sandals.jpg", Price: decimal.NewFromInt(2800), Stock: 15, CreatedAt: day(12), Description: "Handmade beadwork on leather."},
	}
}
