package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24 часа)
const timeLayout = "15:04"

// TimeString время в формате "HH:MM" без даты и часового пояса
// Используется для рабочих часов, перерывов и времени начала записей
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует формат
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time format %q, expected HH:MM: %w", s, err)
	}
	return NewTimeString(t), nil
}

// String возвращает время в формате "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM: %w", t, err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Переход через полночь не поддерживается - возвращает ошибку
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}
	if total < 0 {
		return "", fmt.Errorf("time %s + %d minutes is negative", t, minutes)
	}

	return FromMinutes(total), nil
}

// FromMinutes создает TimeString из количества минут с начала суток
func FromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	// Лексикографическое сравнение корректно для зафиксированного формата HH:MM
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает колонки типа TIME (читаются драйвером как time.Time) и текстовые
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		parsed, err := parseLoose(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := parseLoose(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

// parseLoose парсит "HH:MM" и "HH:MM:SS" (postgres TIME приходит с секундами)
func parseLoose(s string) (TimeString, error) {
	if len(s) > len("15:04") {
		if t, err := time.Parse("15:04:05", s); err == nil {
			return NewTimeString(t), nil
		}
	}
	return NewTimeStringFromString(s)
}
