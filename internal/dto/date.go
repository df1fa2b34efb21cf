package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate возвращается при разборе даты в неподдерживаемом формате.
var ErrInvalidDate = errors.New("invalid date")

// Date - календарная дата без времени и часового пояса.
// Принимает "2006-01-02" и RFC 3339 (берется дата в том поясе, в котором она записана),
// в JSON всегда пишется как "2006-01-02".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate строит дату по календарной дате t в ее собственном часовом поясе.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate разбирает дату в формате 2006-01-02 или RFC 3339.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDate(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w %q, expected YYYY-MM-DD", ErrInvalidDate, s)
}

// Time возвращает полночь даты в UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

// MarshalJSON реализует json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON реализует json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: expected a string", ErrInvalidDate)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func dateFromTime(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

func (d *Date) toTime() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}
