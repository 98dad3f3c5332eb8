package domain

import (
	"time"

	"github.com/google/uuid"
)

// Holiday 表示一个法定假日及其合资格窗口，窗口为空时默认为假日前 28 天
type Holiday struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Date            time.Time  `json:"date"`
	QualifyingStart *time.Time `json:"qualifyingStart,omitempty"`
	QualifyingEnd   *time.Time `json:"qualifyingEnd,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
