package services

import (
	"math"

	"github.com/custodia-labs/unitbot/internal/core/domain"
	"github.com/custodia-labs/unitbot/internal/core/ports/driving"
	"github.com/custodia-labs/unitbot/internal/logger"
)

// Ensure Responder implements the interface.
var _ driving.Responder = (*Responder)(nil)

// Responder is the unit conversion engine.
// It holds no state; the zero value is ready to use.
type Responder struct{}

// NewResponder creates a responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond returns the conversion reply for text.
// The boolean is false exactly when no quantity was recognised.
func (r *Responder) Respond(text string) (string, bool) {
	conversions := r.Conversions(text)
	if len(conversions) == 0 {
		return "", false
	}
	return FormatReply(conversions), true
}

// Conversions scans text and converts every recognised quantity.
// Quantities whose conversion overflows float64 are dropped.
func (r *Responder) Conversions(text string) []domain.Conversion {
	quantities := Recognize(Scan(text))
	if len(quantities) == 0 {
		return nil
	}

	conversions := make([]domain.Conversion, 0, len(quantities))
	for _, q := range quantities {
		converted := Convert(q)
		if math.IsInf(converted.Magnitude, 0) || math.IsNaN(converted.Magnitude) {
			logger.Debug("dropping %v %s: conversion overflows", q.Magnitude, q.Unit.Symbol())
			continue
		}
		logger.Debug("recognised %v %s -> %v %s",
			q.Magnitude, q.Unit.Symbol(), converted.Magnitude, converted.Unit.Symbol())
		conversions = append(conversions, domain.Conversion{Original: q, Converted: converted})
	}
	if len(conversions) == 0 {
		return nil
	}
	return conversions
}

// Respond is a convenience wrapper around a zero Responder.
func Respond(text string) (string, bool) {
	var r Responder
	return r.Respond(text)
}
