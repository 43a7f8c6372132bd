package usecase

import (
	"strings"
	"time"

	"github.com/jawharapos/pos-api/internal/application/dto"
	"github.com/jawharapos/pos-api/internal/domain"
	"github.com/jawharapos/pos-api/internal/domain/repository"
)

// SettingsUseCase read/update of the singleton shop settings. The values
// appear on every rendered receipt.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// Get returns the shop settings.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingsResponse{
		ShopName: s.ShopName,
		TRN:      s.TRN,
		Address:  s.Address,
		Phone:    s.Phone,
	}, nil
}

// Update replaces the shop settings. Shop name and TRN must be non-empty;
// the TRN is at most 15 characters.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	shopName := strings.TrimSpace(in.ShopName)
	trn := strings.TrimSpace(in.TRN)
	if shopName == "" || trn == "" || len(trn) > 15 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.ShopName = shopName
	s.TRN = trn
	s.Address = strings.TrimSpace(in.Address)
	s.Phone = strings.TrimSpace(in.Phone)
	s.UpdatedAt = time.Now()
	if err := uc.settingsRepo.Update(s); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		ShopName: s.ShopName,
		TRN:      s.TRN,
		Address:  s.Address,
		Phone:    s.Phone,
	}, nil
}
