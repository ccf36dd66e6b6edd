package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/dbmetrics"
	"github.com/vinetours/VT-FleetService/pkg/psqlbuilder"
)

// vehicleColumns полный список колонок таблицы vehicles
var vehicleColumns = []string{
	"id",
	"name",
	"capacity",
	"status",
	"brands",
	"archived_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий автомобилей флота
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := r.scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return v, nil
}

// ListCandidates получает незаархивированные рабочие автомобили с
// вместимостью не меньше partySize, упорядоченные по вместимости ASC -
// наименьший подходящий автомобиль первым (best-fit). Фильтр по бренду:
// автомобили без ограничения брендов (brands IS NULL) проходят всегда;
// если brandID == nil, фильтр по бренду не применяется вовсе.
func (r *Repository) ListCandidates(ctx context.Context, partySize int, brandID *string) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.GtOrEq{"capacity": partySize}).
		Where(squirrel.Eq{"archived_at": nil}).
		Where(squirrel.NotEq{"status": []string{
			string(domain.VehicleMaintenance),
			string(domain.VehicleOutOfService),
		}})

	if brandID != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Or{
				squirrel.Eq{"brands": nil},
				squirrel.Expr("brands @> ARRAY[?]::text[]", *brandID),
			},
		)
	}

	query, args, err := selectBuilder.
		OrderBy("capacity ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCandidates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCandidates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVehicles(rows)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanVehicle сканирует одну строку в автомобиль
func (r *Repository) scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var brands pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Capacity,
		&v.Status,
		&brands,
		&v.ArchivedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// brands IS NULL означает "доступен всем брендам"
	if brands != nil {
		v.Brands = []string(brands)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// scanVehicles сканирует результаты запроса в слайс автомобилей
func (r *Repository) scanVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		v, err := r.scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
}
