package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrGatewayNotFound = errors.New("gateway setting not found")

type GatewaySetting struct {
	ID uint `gorm:"primaryKey"`

	Gateway   string `gorm:"unique;not null"`
	Enabled   bool   `gorm:"not null;default:false"`
	Default   bool   `gorm:"column:is_default;not null;default:false"`
	SecretKey string
	PublicKey string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SettingDAO struct {
	db *gorm.DB
}

func NewSettingDAO(db *gorm.DB) *SettingDAO {
	return &SettingDAO{
		db: db,
	}
}

func (d *SettingDAO) Upsert(ctx context.Context, setting GatewaySetting) (GatewaySetting, error) {
	result := d.db.WithContext(ctx).Save(&setting)
	if result.Error != nil {
		return GatewaySetting{}, result.Error
	}

	return setting, nil
}

func (d *SettingDAO) FindByGateway(ctx context.Context, gateway string) (GatewaySetting, error) {
	var setting GatewaySetting

	result := d.db.WithContext(ctx).First(&setting, "gateway = ?", gateway)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GatewaySetting{}, ErrGatewayNotFound
		}

		return GatewaySetting{}, result.Error
	}

	return setting, nil
}

func (d *SettingDAO) FindDefault(ctx context.Context) (GatewaySetting, error) {
	var setting GatewaySetting

	result := d.db.WithContext(ctx).First(&setting, "is_default = ? AND enabled = ?", true, true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GatewaySetting{}, ErrGatewayNotFound
		}

		return GatewaySetting{}, result.Error
	}

	return setting, nil
}

func (d *SettingDAO) FindEnabled(ctx context.Context) ([]GatewaySetting, error) {
	var settings []GatewaySetting

	result := d.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("gateway asc").
		Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}
