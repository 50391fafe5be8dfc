package problem

type CreateProblemRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Category   string  `json:"category" binding:"required,oneof=WARNING_LETTER SALARY_DEDUCTION"`
	Level      *string `json:"level" binding:"omitempty,oneof=SP1 SP2"`
	Date       string  `json:"date" binding:"required"`
	Detail     string  `json:"detail"`
	Amount     *int64  `json:"amount" binding:"omitempty,gt=0"`
}

type UpdateProblemRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Category   string  `json:"category" binding:"required,oneof=WARNING_LETTER SALARY_DEDUCTION"`
	Level      *string `json:"level" binding:"omitempty,oneof=SP1 SP2"`
	Date       string  `json:"date" binding:"required"`
	Detail     string  `json:"detail"`
	Amount     *int64  `json:"amount" binding:"omitempty,gt=0"`
}

type ProblemResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Category     string  `json:"category"`
	Level        *string `json:"level,omitempty"`
	Date         string  `json:"date"`
	Detail       string  `json:"detail,omitempty"`
	Amount       *int64  `json:"amount,omitempty"`
}
