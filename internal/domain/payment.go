package domain

import "time"

// GatewaySetting is the stored configuration of one payment gateway.
// A gateway is ready when it is enabled and carries a secret key.
type GatewaySetting struct {
	ID        uint      `json:"id"`
	Gateway   string    `json:"gateway"`
	Enabled   bool      `json:"enabled"`
	Default   bool      `json:"default"`
	SecretKey string    `json:"-"`
	PublicKey string    `json:"public_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g GatewaySetting) IsReady() bool {
	return g.Enabled && g.SecretKey != ""
}
