package config

// BillingConfig holds pricing configuration used to seed the rate table
type BillingConfig struct {
	// BaseDockingFee seeds the tariff when the store carries none
	BaseDockingFee float64 `mapstructure:"base_docking_fee" validate:"min=0"`
}
