package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vinetours/VT-FleetService/internal/domain"
	"github.com/vinetours/VT-FleetService/pkg/dbmetrics"
	"github.com/vinetours/VT-FleetService/pkg/psqlbuilder"
	"github.com/vinetours/VT-FleetService/pkg/types"
)

// Коды ошибок PostgreSQL, означающие конфликт слота.
// 23P01 - exclusion_violation: нарушение EXCLUDE USING gist
// (vehicle_id WITH =, block_date WITH =, timerange WITH &&)
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

// blockColumns полный список колонок таблицы availability_blocks
var blockColumns = []string{
	"id",
	"vehicle_id",
	"block_date",
	"start_time",
	"end_time",
	"block_type",
	"booking_id",
	"brand_id",
	"expires_at",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий блоков доступности.
// Инвариант "нет двух пересекающихся блоков для одного автомобиля и даты"
// обеспечивается exclusion constraint на стороне БД; репозиторий переводит
// нарушение этого констрейнта в ErrSlotConflict, остальные ошибки стора
// пробрасывает без изменений.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блок доступности.
// При нарушении exclusion constraint (конкурентная или существующая
// пересекающаяся запись) возвращает ErrSlotConflict - это race-safety
// backstop: read-check перед вставкой лишь оптимизация, атомарность
// "проверить и занять" гарантирует именно вставка.
func (r *Repository) Create(ctx context.Context, b *domain.AvailabilityBlock) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_blocks").
		Columns(
			"vehicle_id",
			"block_date",
			"start_time",
			"end_time",
			"block_type",
			"booking_id",
			"brand_id",
			"expires_at",
			"notes",
		).
		Values(
			b.VehicleID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Type,
			b.BookingID,
			b.BrandID,
			b.ExpiresAt,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isConflictError(err) {
			return nil, fmt.Errorf("%w: vehicle=%d date=%s [%s, %s)",
				ErrSlotConflict, b.VehicleID, b.Date.Format(domain.DateFormat), b.StartTime, b.EndTime)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает блок по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("availability_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBlock(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListForVehicleOnDate получает все блоки автомобиля на дату,
// отсортированные по времени начала
func (r *Repository) ListForVehicleOnDate(ctx context.Context, vehicleID int64, date time.Time) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("availability_blocks").
		Where(squirrel.Eq{"vehicle_id": vehicleID, "block_date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForVehicleOnDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForVehicleOnDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// ListOverlapping получает блоки любого типа, пересекающиеся с окном
// [start, end) для автомобиля на дату. Полуоткрытые интервалы: блоки,
// граничащие по конечной точке, не считаются пересекающимися.
func (r *Repository) ListOverlapping(ctx context.Context, vehicleID int64, date time.Time, start, end types.TimeString) ([]*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("availability_blocks").
		Where(squirrel.Eq{"vehicle_id": vehicleID, "block_date": date}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// ConvertHoldToBooking атомарно превращает hold в booking-блок: тип меняется,
// booking_id проставляется, expires_at очищается. Условие block_type='hold'
// в WHERE делает повторную конвертацию безопасной - второй вызов получает
// ErrBlockNotFound, поскольку блок уже не является hold'ом.
func (r *Repository) ConvertHoldToBooking(ctx context.Context, holdID, bookingID int64) (*domain.AvailabilityBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_blocks").
		Set("block_type", domain.BlockBooking).
		Set("booking_id", bookingID).
		Set("expires_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": holdID, "block_type": domain.BlockHold}).
		Suffix("RETURNING " + joinColumns(blockColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ConvertHoldToBooking - build update query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBlock(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ConvertHoldToBooking - scan block: %v", ErrScanRow, err)
	}

	return b, nil
}

// Delete удаляет блок по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// DeleteForBooking удаляет booking-блок и его буферы единым действием.
// Используется только путём удаления/отмены бронирования.
func (r *Repository) DeleteForBooking(ctx context.Context, bookingID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_blocks").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteForBooking - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteForBooking - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteForBooking - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// DeleteExpiredHolds удаляет все hold-блоки с истекшим expires_at.
// Идемпотентна и безопасна при конкурентных вызовах - вызывается
// оппортунистически перед каждой проверкой доступности.
func (r *Repository) DeleteExpiredHolds(ctx context.Context) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_blocks").
		Where(squirrel.Eq{"block_type": domain.BlockHold}).
		Where(squirrel.Expr("expires_at < NOW()")).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBlock сканирует одну строку в блок
func (r *Repository) scanBlock(row rowScanner) (*domain.AvailabilityBlock, error) {
	var b domain.AvailabilityBlock
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.VehicleID,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Type,
		&b.BookingID,
		&b.BrandID,
		&b.ExpiresAt,
		&b.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBlocks сканирует результаты запроса в слайс блоков
func (r *Repository) scanBlocks(rows *sql.Rows) ([]*domain.AvailabilityBlock, error) {
	blocks := make([]*domain.AvailabilityBlock, 0)

	for rows.Next() {
		b, err := r.scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// isConflictError распознает нарушение exclusion/unique constraint
func isConflictError(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return code == pgExclusionViolation || code == pgUniqueViolation
	}
	return false
}

func joinColumns(columns []string) string {
	out := ""
	for i, c := range columns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}
