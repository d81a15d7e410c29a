package models

import "time"

// Record is a schema-less user entry. Values are whatever the JSON decoder
// produced; the store never interprets them.
type Record map[string]any

type Calculation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Expression string    `gorm:"not null" json:"expression"`
	Result     string    `gorm:"not null" json:"result"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}
