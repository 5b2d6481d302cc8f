package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/harborops/harbormaster-go/internal/domain/billing"
	"github.com/harborops/harbormaster-go/internal/domain/fleet"
)

// tariffSettingID is the primary key of the single base-fee row
const tariffSettingID = 1

// GormTariffRepository implements TariffRepository using GORM
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Load reads the full rate table. A store with no tariff rows yields the
// default tariff so a fresh harbor can price from day one.
func (r *GormTariffRepository) Load(ctx context.Context) (billing.Tariff, error) {
	var setting TariffSettingModel
	err := execWithRetry(ctx, "tariff.Load", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Where("id = ?", tariffSettingID).First(&setting).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return billing.DefaultTariff(), nil
		}
		return billing.Tariff{}, err
	}

	var tierModels []SizeMultiplierTierModel
	err = execWithRetry(ctx, "tariff.Load", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Order("min_length").Find(&tierModels).Error
	})
	if err != nil {
		return billing.Tariff{}, err
	}

	var typeModels []ShipTypeMultiplierModel
	err = execWithRetry(ctx, "tariff.Load", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Find(&typeModels).Error
	})
	if err != nil {
		return billing.Tariff{}, err
	}

	tiers := make([]billing.SizeMultiplierTier, 0, len(tierModels))
	for _, m := range tierModels {
		tiers = append(tiers, billing.SizeMultiplierTier{
			MinLength:  m.MinLength,
			MaxLength:  m.MaxLength,
			Multiplier: m.Multiplier,
		})
	}

	typeMultipliers := make(map[fleet.ShipType]float64, len(typeModels))
	for _, m := range typeModels {
		typeMultipliers[fleet.ShipType(m.ShipType)] = m.Multiplier
	}

	return billing.NewTariff(setting.BaseDockingFee, tiers, typeMultipliers)
}

// Save replaces the stored rate table with the given tariff
func (r *GormTariffRepository) Save(ctx context.Context, tariff billing.Tariff) error {
	return execWithRetry(ctx, "tariff.Save", func(ctx context.Context) error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&TariffSettingModel{
				ID:             tariffSettingID,
				BaseDockingFee: tariff.BaseDockingFee,
			}).Error; err != nil {
				return err
			}

			if err := tx.Where("1 = 1").Delete(&SizeMultiplierTierModel{}).Error; err != nil {
				return err
			}
			for _, tier := range tariff.SizeTiers {
				if err := tx.Create(&SizeMultiplierTierModel{
					MinLength:  tier.MinLength,
					MaxLength:  tier.MaxLength,
					Multiplier: tier.Multiplier,
				}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("1 = 1").Delete(&ShipTypeMultiplierModel{}).Error; err != nil {
				return err
			}
			for shipType, multiplier := range tariff.TypeMultipliers {
				if err := tx.Create(&ShipTypeMultiplierModel{
					ShipType:   string(shipType),
					Multiplier: multiplier,
				}).Error; err != nil {
					return err
				}
			}

			return nil
		})
	})
}
