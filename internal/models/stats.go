package models

import "time"

// Point is one sample of a chart series.
type Point struct {
	Time  time.Time
	Label string
	Value float64
}

// Skill is the aggregated level of one skill type.
type Skill struct {
	Type     string
	Name     string
	Category string
	Level    float64
	ObjectID int64
}
