package models

import "time"

// Option is a single persisted setting. Value holds the JSON encoding of
// the stored value so booleans and strings keep their type.
type Option struct {
	Name      string    `json:"name" gorm:"primaryKey;size:191"`
	Value     string    `json:"value" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
