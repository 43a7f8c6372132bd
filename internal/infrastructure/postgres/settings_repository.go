package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jawharapos/pos-api/internal/domain/entity"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements SettingsRepository over PostgreSQL. The table
// holds exactly one row, pinned to id 1.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository builds the persistence adapter for shop settings.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get() (*entity.ShopSettings, error) {
	query := `SELECT id, shop_name, trn, address, phone, updated_at FROM shop_settings WHERE id = 1`
	var s entity.ShopSettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.ShopName, &s.TRN, &s.Address, &s.Phone, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Update upserts the singleton row so a fresh database works without a seed.
func (r *SettingsRepo) Update(settings *entity.ShopSettings) error {
	query := `
		INSERT INTO shop_settings (id, shop_name, trn, address, phone, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET shop_name = EXCLUDED.shop_name, trn = EXCLUDED.trn,
			address = EXCLUDED.address, phone = EXCLUDED.phone, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ShopName, settings.TRN, settings.Address, settings.Phone, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
