// Package flow implements the guided application dialogue: field
// validation, the step transition table and the engine driving it.
package flow

import (
	"regexp"
	"time"
)

// Kind classifies a step's expected input. Free-text fields accept any
// text verbatim, including empty strings; only dates are validated.
type Kind int

const (
	KindText Kind = iota
	KindDate
)

// Result is the validator outcome. Value holds the accepted text;
// Reason is a user-facing message when Ok is false.
type Result struct {
	Ok     bool
	Value  string
	Reason string
}

const dateLayout = "02.01.2006"

// time.Parse alone accepts "5.1.1990", so the shape is pinned first.
var dateShape = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

const dateRejectedReason = "Неверный формат даты. Введите в формате ДД.ММ.ГГГГ:"

// Validate checks raw input against the field kind.
func Validate(kind Kind, raw string) Result {
	switch kind {
	case KindDate:
		if !dateShape.MatchString(raw) {
			return Result{Reason: dateRejectedReason}
		}
		if _, err := time.Parse(dateLayout, raw); err != nil {
			return Result{Reason: dateRejectedReason}
		}
		return Result{Ok: true, Value: raw}
	default:
		return Result{Ok: true, Value: raw}
	}
}
