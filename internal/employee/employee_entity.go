package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName         string    `gorm:"type:varchar(255);not null"`
	AttendanceNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_employee_attendance_number"`
	HireDate         time.Time `gorm:"type:date"`
	EmploymentStatus string    `gorm:"type:varchar(30)"`
	Department       string    `gorm:"type:varchar(100)"`
	Education        string    `gorm:"type:varchar(50)"`
	Religion         string    `gorm:"type:varchar(30)"`
	Gender           string    `gorm:"type:varchar(1)"`
	BirthPlace       string    `gorm:"type:varchar(100)"`
	BirthDate        time.Time `gorm:"type:date"`
	MaritalStatus    string    `gorm:"type:varchar(30)"`
	Phone            string    `gorm:"type:varchar(30)"`
	Address          string    `gorm:"type:text"`
	PhotoData        string    `gorm:"type:text"` // base64, opsional
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}
