package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/pos-api/internal/domain"
	"github.com/vietanh2810/pos-api/internal/repository/dao"
)

var ErrGatewayNotFound = dao.ErrGatewayNotFound

type SettingRepository struct {
	dao *dao.SettingDAO
}

func NewSettingRepository(settingDAO *dao.SettingDAO) *SettingRepository {
	return &SettingRepository{
		dao: settingDAO,
	}
}

func settingDaoToDomain(s dao.GatewaySetting) domain.GatewaySetting {
	return domain.GatewaySetting{
		ID:        s.ID,
		Gateway:   s.Gateway,
		Enabled:   s.Enabled,
		Default:   s.Default,
		SecretKey: s.SecretKey,
		PublicKey: s.PublicKey,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *SettingRepository) FindByGateway(ctx context.Context, gateway string) (domain.GatewaySetting, error) {
	setting, err := r.dao.FindByGateway(ctx, gateway)
	if err != nil {
		return domain.GatewaySetting{}, fmt.Errorf("r.dao.FindByGateway -> %w", err)
	}

	return settingDaoToDomain(setting), nil
}

func (r *SettingRepository) FindDefault(ctx context.Context) (domain.GatewaySetting, error) {
	setting, err := r.dao.FindDefault(ctx)
	if err != nil {
		return domain.GatewaySetting{}, fmt.Errorf("r.dao.FindDefault -> %w", err)
	}

	return settingDaoToDomain(setting), nil
}

func (r *SettingRepository) FindEnabled(ctx context.Context) ([]domain.GatewaySetting, error) {
	settings, err := r.dao.FindEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEnabled -> %w", err)
	}

	converted := make([]domain.GatewaySetting, len(settings))
	for i, s := range settings {
		converted[i] = settingDaoToDomain(s)
	}

	return converted, nil
}
