package persistence

import (
	"time"
)

// UserModel represents the users table
type UserModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
	Role string `gorm:"column:role;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// ShipModel represents the ships table
type ShipModel struct {
	ID       string  `gorm:"column:id;primaryKey"`
	Name     string  `gorm:"column:name;not null"`
	ShipType string  `gorm:"column:ship_type;not null"`
	Length   float64 `gorm:"column:length;not null"`
	Draft    float64 `gorm:"column:draft;not null"`
	Tonnage  float64 `gorm:"column:tonnage;not null"`
	Capacity float64 `gorm:"column:capacity;not null;default:0"`
	OwnerID  string  `gorm:"column:owner_id;index;not null"`
}

func (ShipModel) TableName() string {
	return "ships"
}

// BerthModel represents the berths table
type BerthModel struct {
	ID        string  `gorm:"column:id;primaryKey"`
	Name      string  `gorm:"column:name"`
	MaxLength float64 `gorm:"column:max_length;not null"`
	MaxDraft  float64 `gorm:"column:max_draft;not null"`
	Available int     `gorm:"column:available;not null;default:1"` // 0 or 1 (SQLite compatible)
}

func (BerthModel) TableName() string {
	return "berths"
}

// AssignmentModel represents the assignments table. Rows are never
// deleted; released assignments stay as history.
type AssignmentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	BerthID   string    `gorm:"column:berth_id;index;not null"`
	ShipID    string    `gorm:"column:ship_id;index;not null"`
	ETA       time.Time `gorm:"column:eta;index;not null"`
	ETD       time.Time `gorm:"column:etd;index;not null"`
	Status    string    `gorm:"column:status;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

// DockingRequestModel represents the docking_requests table
type DockingRequestModel struct {
	ID                  string     `gorm:"column:id;primaryKey"`
	ShipID              string     `gorm:"column:ship_id;index;not null"`
	OwnerID             string     `gorm:"column:owner_id;index;not null"`
	ETA                 time.Time  `gorm:"column:eta;not null"`
	ETD                 time.Time  `gorm:"column:etd;not null"`
	CargoType           string     `gorm:"column:cargo_type"`
	SpecialRequirements string     `gorm:"column:special_requirements;type:text"`
	Status              string     `gorm:"column:status;index;not null"`
	RejectionReason     string     `gorm:"column:rejection_reason;type:text"`
	SubmittedAt         time.Time  `gorm:"column:submitted_at;not null"`
	ProcessedAt         *time.Time `gorm:"column:processed_at"`
}

func (DockingRequestModel) TableName() string {
	return "docking_requests"
}

// InvoiceModel represents the invoices table
type InvoiceModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	RequestID string    `gorm:"column:request_id;index"`
	ShipID    string    `gorm:"column:ship_id;index;not null"`
	LinesJSON string    `gorm:"column:lines;type:text;not null"` // JSON array as text
	Total     float64   `gorm:"column:total;not null"`
	Status    string    `gorm:"column:status;not null"`
	IssuedAt  time.Time `gorm:"column:issued_at;not null"`
}

func (InvoiceModel) TableName() string {
	return "invoices"
}

// TariffSettingModel holds the single base-fee row of the rate table
type TariffSettingModel struct {
	ID             int     `gorm:"column:id;primaryKey"`
	BaseDockingFee float64 `gorm:"column:base_docking_fee;not null"`
}

func (TariffSettingModel) TableName() string {
	return "tariff_settings"
}

// SizeMultiplierTierModel represents the size_multiplier_tiers table
type SizeMultiplierTierModel struct {
	ID         int     `gorm:"column:id;primaryKey;autoIncrement"`
	MinLength  float64 `gorm:"column:min_length;not null"`
	MaxLength  float64 `gorm:"column:max_length;not null"`
	Multiplier float64 `gorm:"column:multiplier;not null"`
}

func (SizeMultiplierTierModel) TableName() string {
	return "size_multiplier_tiers"
}

// ShipTypeMultiplierModel represents the ship_type_multipliers table
type ShipTypeMultiplierModel struct {
	ShipType   string  `gorm:"column:ship_type;primaryKey"`
	Multiplier float64 `gorm:"column:multiplier;not null"`
}

func (ShipTypeMultiplierModel) TableName() string {
	return "ship_type_multipliers"
}
