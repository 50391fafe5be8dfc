package problem

import (
	"time"

	"go-plastindo/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Problem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_problems_employee"`

	Category string    `gorm:"type:varchar(30);not null;index:idx_problems_category"`
	Level    *string   `gorm:"type:varchar(5)"` // hanya untuk surat peringatan
	Date     time.Time `gorm:"type:date;not null"`
	Detail   string    `gorm:"type:text"`
	Amount   *int64    // rupiah, hanya untuk potongan gaji

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_problems_deleted_at"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`
}
