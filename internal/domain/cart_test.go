package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItemPredicates(t *testing.T) {
	active := CartItem{ID: 1}
	assert.True(t, active.IsActive())
	assert.False(t, active.IsInGroup("g-1"))

	groupID := "g-1"
	held := CartItem{ID: 2, HoldGroupID: &groupID}
	assert.False(t, held.IsActive())
	assert.True(t, held.IsInGroup("g-1"))
	assert.False(t, held.IsInGroup("g-2"))
}

func TestTransactionIsCash(t *testing.T) {
	assert.True(t, Transaction{PaymentMethod: PaymentMethodCash}.IsCash())
	assert.False(t, Transaction{PaymentMethod: "stripe"}.IsCash())
}

func TestGatewaySettingIsReady(t *testing.T) {
	assert.True(t, GatewaySetting{Enabled: true, SecretKey: "sk"}.IsReady())
	assert.False(t, GatewaySetting{Enabled: false, SecretKey: "sk"}.IsReady())
	assert.False(t, GatewaySetting{Enabled: true}.IsReady())
}
