package stylist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями стилистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория стилистов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль стилиста по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"working_days",
		"work_start",
		"work_end",
		"is_emergency_unavailable",
		"created_at",
		"updated_at",
	).
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var stylist domain.Stylist
	var workStart, workEnd sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&stylist.ID,
		&stylist.Name,
		pq.Array(&stylist.WorkingDays),
		&workStart,
		&workEnd,
		&stylist.IsEmergencyUnavailable,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan stylist: %v", ErrScanRow, err)
	}

	if workStart.Valid {
		if err := stylist.WorkStart.Scan(workStart.String); err != nil {
			return nil, fmt.Errorf("%w: GetByID - parse work_start: %v", ErrScanRow, err)
		}
	}
	if workEnd.Valid {
		if err := stylist.WorkEnd.Scan(workEnd.String); err != nil {
			return nil, fmt.Errorf("%w: GetByID - parse work_end: %v", ErrScanRow, err)
		}
	}

	stylist.CreatedAt = createdAt.Time
	stylist.UpdatedAt = updatedAt.Time

	return &stylist, nil
}

// UpdateSchedule обновляет расписание стилиста: рабочие дни, рабочие часы
// и флаг экстренной недоступности
func (r *Repository) UpdateSchedule(ctx context.Context, s *domain.Stylist) (*domain.Stylist, error) {
	query, args, err := psqlbuilder.Update("stylists").
		Set("working_days", pq.Array(s.WorkingDays)).
		Set("work_start", s.WorkStart).
		Set("work_end", s.WorkEnd).
		Set("is_emergency_unavailable", s.IsEmergencyUnavailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING name, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.Name,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateSchedule - execute update: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
