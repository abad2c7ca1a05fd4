package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable offering on the ground (e.g., "Football Turf",
// "Cricket Nets"). Two flat per-slot rates; the evening rate applies to any
// slot starting at or after the configured evening cutoff.
type Service struct {
	ID             string               `bson:"id" json:"id"`
	Name           string               `bson:"name" json:"name"`
	PricePerHour   primitive.Decimal128 `bson:"price_per_hour" json:"price_per_hour"`
	EveningPricing primitive.Decimal128 `bson:"evening_pricing" json:"evening_pricing"`
}
