package utils

import "time"

const (
	TimeFormat = "2006-01-02 15:04:05"
	DateFormat = "2006-01-02"
)

func FormatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format(TimeFormat)
}

func FormatTime(t time.Time) string {
	return t.Local().Format(TimeFormat)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(DateFormat)
	return &formatted
}
