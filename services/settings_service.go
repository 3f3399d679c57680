package services

import (
	"errors"
	"fmt"

	"storefront/repository"

	"gorm.io/gorm"
)

// Known settings keys and their out-of-the-box values.
const (
	SettingPaymentMethods = "payment_methods"
	SettingPaymentText    = "payment_text"

	DefaultPaymentMethods = "KBZPay,WavePay,COD"
	DefaultPaymentText    = "Payment instructions have not been set yet."
)

// ISettingsService defines the interface for key/value settings.
type ISettingsService interface {
	Get(key, fallback string) (string, error)
	Set(actorID int64, key, value string) error
}

// SettingsService implements ISettingsService. Only the admin panel writes
// settings, so Set is gated on operator privilege.
type SettingsService struct {
	settingsRepo repository.ISettingsRepository
	operators    OperatorIdentity
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(settingsRepo repository.ISettingsRepository, operators OperatorIdentity) ISettingsService {
	return &SettingsService{settingsRepo: settingsRepo, operators: operators}
}

// Get returns the stored value, or fallback when the key was never set.
func (s *SettingsService) Get(key, fallback string) (string, error) {
	value, err := s.settingsRepo.Get(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fallback, nil
		}
		return "", fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, nil
}

// Set upserts a key. Operator only.
func (s *SettingsService) Set(actorID int64, key, value string) error {
	if !s.operators.IsOperator(actorID) {
		return fmt.Errorf("user %d: %w", actorID, ErrUnauthorized)
	}
	if err := s.settingsRepo.Set(key, value); err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}
