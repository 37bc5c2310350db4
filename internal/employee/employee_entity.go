package employee

import "time"

type Employee struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	Role          string
	Department    string
	Email         string
	AdmissionDate time.Time
	Photo         string
	CreatedAt     time.Time
}
