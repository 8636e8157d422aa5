package leave

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с отпусками стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отпусков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByStylistForDate получает диапазоны отпусков стилиста, покрывающие
// указанную дату (границы диапазона включительно)
func (r *Repository) GetByStylistForDate(ctx context.Context, stylistID int64, date time.Time) ([]*domain.LeaveRange, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"stylist_id",
		"start_date",
		"end_date",
		"reason",
		"created_at",
	).
		From("leave_ranges").
		Where(squirrel.Eq{"stylist_id": stylistID}).
		Where(squirrel.LtOrEq{"start_date": date}).
		Where(squirrel.GtOrEq{"end_date": date}).
		OrderBy("start_date").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ranges := make([]*domain.LeaveRange, 0)
	for rows.Next() {
		var lr domain.LeaveRange
		var createdAt sql.NullTime

		if err := rows.Scan(
			&lr.ID,
			&lr.StylistID,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Reason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByStylistForDate - scan leave range: %v", ErrScanRow, err)
		}

		lr.CreatedAt = createdAt.Time
		ranges = append(ranges, &lr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByStylistForDate - rows iteration: %v", ErrExecQuery, err)
	}

	return ranges, nil
}
