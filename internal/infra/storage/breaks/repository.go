package breaks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с ежедневными перерывами стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория перерывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylist получает все перерывы стилиста
// Перерывы повторяются каждый рабочий день, даты у них нет
func (r *Repository) GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Break, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"start_time",
		"end_time",
		"label",
		"created_at",
	).
		From("stylist_breaks").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Break, 0)
	for rows.Next() {
		var b domain.Break
		var createdAt sql.NullTime

		if err := rows.Scan(
			&b.ID,
			&b.StylistID,
			&b.StartTime,
			&b.EndTime,
			&b.Label,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByStylist - scan break: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		result = append(result, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - rows iteration: %v", ErrExecQuery, err)
	}

	return result, nil
}
