package types

import (
	"fmt"
	"time"
)

// timeFormat формат времени HH:MM (24 часа)
const timeFormat = "15:04"

// TimeString строковое представление времени дня в формате "HH:MM".
// Используется для времени работы объектов и границ временных слотов,
// где дата не имеет значения, а важно только время суток.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// toTime парсит TimeString в time.Time (дата фиктивная)
func (t TimeString) toTime() (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string format: %v", err)
	}
	return parsed, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут вперёд.
// Переход через полночь не поддерживается: "23:30" + 60 вернёт ошибку,
// потому что слоты не пересекают границу суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.toTime()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}

	return NewTimeString(shifted), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// MinutesUntil возвращает количество минут от t до other.
// Отрицательное значение означает, что other раньше t.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.toTime()
	if err != nil {
		return 0, err
	}
	to, err := other.toTime()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Minutes()), nil
}
