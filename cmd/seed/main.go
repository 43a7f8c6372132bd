// Seeds a fresh database with the shop settings, an admin account and a
// starter product catalog. Safe to run once against an empty database:
//
//	go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
	"github.com/jawharapos/pos-api/internal/infrastructure/postgres"
	"github.com/jawharapos/pos-api/pkg/config"
	"github.com/jawharapos/pos-api/pkg/logger"
)

type seedProduct struct {
	name            string
	purchasePrice   string
	sellingPrice    string
	stock           int
	unit            entity.Unit
	unitWeightGrams int
}

var catalog = []seedProduct{
	{"Whole Chicken", "18.00", "28.00", 50, entity.UnitWeight, 1200},
	{"Chicken Breast", "22.00", "34.00", 30, entity.UnitWeight, 1000},
	{"Chicken Thighs", "16.00", "26.00", 30, entity.UnitWeight, 1000},
	{"Lamb Leg", "38.00", "52.50", 15, entity.UnitWeight, 2000},
	{"Lamb Chops", "42.00", "58.00", 15, entity.UnitWeight, 1000},
	{"Beef Mince", "28.00", "39.00", 20, entity.UnitWeight, 1000},
	{"Eggs Tray (30)", "12.00", "18.00", 40, entity.UnitPiece, 0},
	{"Charcoal Bag", "8.00", "15.00", 25, entity.UnitPiece, 0},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	adminPassword := "changeme"
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	now := time.Now()
	txRunner := postgres.NewTxRunner(pool)
	err = txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		settingsRepo repository.SettingsRepository,
		userRepo repository.UserRepository,
	) error {
		if err := settingsRepo.Update(&entity.ShopSettings{
			ID:        1,
			ShopName:  "Jawhara Poultry Est.",
			TRN:       "310613414700003",
			Address:   "Al Aziziyah, Riyadh",
			Phone:     "+966 55 000 0000",
			UpdatedAt: now,
		}); err != nil {
			return err
		}

		if err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Name:         "Admin",
			Email:        "admin@jawhara.local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}

		for _, p := range catalog {
			if err := productRepo.Create(&entity.Product{
				ID:              uuid.New().String(),
				Name:            p.name,
				PurchasePrice:   decimal.RequireFromString(p.purchasePrice),
				SellingPrice:    decimal.RequireFromString(p.sellingPrice),
				Stock:           p.stock,
				Unit:            p.unit,
				UnitWeightGrams: p.unitWeightGrams,
				CreatedAt:       now,
				UpdatedAt:       now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed, nothing written")
	}

	log.Info().
		Int("products", len(catalog)).
		Str("admin", "admin@jawhara.local").
		Msg("seed complete; change the admin password after first login")
}
