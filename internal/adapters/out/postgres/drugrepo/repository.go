package drugrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/drug"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDrugRepository implements DrugRepository using GORM.
type GormDrugRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDrugRepository creates a new GORM drug repository.
func NewGormDrugRepository(db *gorm.DB, tracker aggregateTracker) *GormDrugRepository {
	return &GormDrugRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new drug to the database.
func (r *GormDrugRepository) Add(ctx context.Context, aggregate *drug.Drug) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing drug to the database.
func (r *GormDrugRepository) Update(ctx context.Context, aggregate *drug.Drug) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DrugDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("drug", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a drug by ID.
func (r *GormDrugRepository) Get(ctx context.Context, id kernel.UUID) (*drug.Drug, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DrugDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("drug", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// IncrementQuantity atomically adds delta to the drug's stored quantity and
// returns the updated aggregate. The below-zero guard sits in the WHERE clause,
// so the check and the write are one statement: two orders delivering the same
// drug concurrently both apply without a read-modify-write race.
//
// The returned aggregate carries the stored (stale) status; callers re-derive
// it via the status policy and persist the result with Update.
func (r *GormDrugRepository) IncrementQuantity(
	ctx context.Context, id kernel.UUID, delta int,
) (*drug.Drug, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DrugDTO
	result := r.db.WithContext(ctx).Raw(`
		UPDATE drugs
		SET quantity = quantity + ?
		WHERE id = ? AND quantity + ? >= 0
		RETURNING *
	`, delta, id.Bytes(), delta).Scan(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DrugDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errs.NewObjectNotFoundError("drug", id.String())
		}
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity adjustment",
			fmt.Errorf("delta %d would take quantity of drug %s below 0", delta, id),
		)
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetExpiredBefore retrieves drugs whose expiry date is before the given time
// and whose stored status has not caught up yet. Feeds the expiry sweep.
func (r *GormDrugRepository) GetExpiredBefore(ctx context.Context, now time.Time) ([]*drug.Drug, error) {
	var dtos []DrugDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "expiry_date IS NOT NULL AND expiry_date < ? AND status <> ?",
			now, int(drug.Expired)).Error
	if err != nil {
		return nil, err
	}

	drugs := make([]*drug.Drug, 0, len(dtos))
	for _, dto := range dtos {
		d, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		drugs = append(drugs, d)
	}

	return drugs, nil
}
