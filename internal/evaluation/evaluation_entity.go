package evaluation

import (
	"time"

	"go-evaltrack/internal/employee"
)

type Evaluation struct {
	ID              uint `gorm:"primaryKey"`
	EmployeeID      uint `gorm:"index"`
	Period          string
	Ratings         Ratings `gorm:"embedded"`
	FinalScore      float64
	Strengths       string
	Improvements    string
	DevelopmentPlan string
	CreatedAt       time.Time

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}
