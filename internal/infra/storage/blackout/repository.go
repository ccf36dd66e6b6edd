package blackout

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/dbmetrics"
	"github.com/vinetours/VT-FleetService/pkg/psqlbuilder"
)

// Repository репозиторий дат-блэкаутов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блэкаутов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindForDate возвращает блэкаут, действующий на указанную дату для данного
// бренда: либо глобальный (brand_id IS NULL), либо с совпадающим брендом.
// Возвращает nil без ошибки, если блэкаута нет.
func (r *Repository) FindForDate(ctx context.Context, date time.Time, brandID *string) (*domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"blackout_date",
		"brand_id",
		"reason",
		"created_at",
	).
		From("blackout_dates").
		Where(squirrel.Eq{"blackout_date": date})

	// Глобальные блэкауты действуют на все бренды; брендовые - только на свой
	if brandID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"brand_id": nil},
			squirrel.Eq{"brand_id": *brandID},
		})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"brand_id": nil})
	}

	query, args, err := selectBuilder.
		OrderBy("brand_id NULLS FIRST").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindForDate - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.BlackoutDate
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.Date,
		&b.BrandID,
		&b.Reason,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindForDate - scan blackout: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time

	return &b, nil
}
