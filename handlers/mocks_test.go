package handlers

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"LOJA_PIX_GO/efi"
	"LOJA_PIX_GO/models"
)

type mockSettingsStore struct{ mock.Mock }

func (m *mockSettingsStore) Get(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*models.Settings)
	return s, args.Error(1)
}

func (m *mockSettingsStore) Save(ctx context.Context, in models.SettingsInput) (*models.Settings, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*models.Settings)
	return s, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserStore) RecordLogin(ctx context.Context, l models.UserLogin) error {
	return m.Called(ctx, l).Error(0)
}

type mockChargeStore struct{ mock.Mock }

func (m *mockChargeStore) Create(ctx context.Context, c *models.PixCobranca) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockChargeStore) FindByTxID(ctx context.Context, txid string) (*models.PixCobranca, error) {
	args := m.Called(ctx, txid)
	c, _ := args.Get(0).(*models.PixCobranca)
	return c, args.Error(1)
}

func (m *mockChargeStore) UpdateStatus(ctx context.Context, txid, status string, dataPago *time.Time) error {
	return m.Called(ctx, txid, status, dataPago).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateImmediateCharge(ctx context.Context, req efi.ChargeRequest) (*efi.Charge, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*efi.Charge)
	return c, args.Error(1)
}

func (m *mockGateway) DetailCharge(ctx context.Context, txid string) (*efi.Charge, error) {
	args := m.Called(ctx, txid)
	c, _ := args.Get(0).(*efi.Charge)
	return c, args.Error(1)
}

func strPtr(s string) *string { return &s }
