package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с общесалонными настройками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки салона
// Таблица содержит одну строку; если она отсутствует,
// возвращается ErrSettingsNotFound
func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"slot_interval_minutes",
		"updated_at",
	).
		From("salon_settings").
		OrderBy("id").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SalonSettings
	var updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SlotIntervalMinutes,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
