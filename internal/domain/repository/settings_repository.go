package repository

import "github.com/jawharapos/pos-api/internal/domain/entity"

// SettingsRepository is the persistence port for the singleton shop settings.
type SettingsRepository interface {
	Get() (*entity.ShopSettings, error)
	Update(settings *entity.ShopSettings) error
}
