package employee

type CreateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	AttendanceNumber string `json:"attendance_number"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=TETAP KONTRAK HARIAN"`
	Department       string `json:"department" binding:"required"`
	Education        string `json:"education"`
	Religion         string `json:"religion"`
	Gender           string `json:"gender" binding:"required,oneof=L P"`
	BirthPlace       string `json:"birth_place"`
	BirthDate        string `json:"birth_date"`
	MaritalStatus    string `json:"marital_status"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PhotoData        string `json:"photo_data"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	AttendanceNumber string `json:"attendance_number" binding:"required"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=TETAP KONTRAK HARIAN"`
	Department       string `json:"department" binding:"required"`
	Education        string `json:"education"`
	Religion         string `json:"religion"`
	Gender           string `json:"gender" binding:"required,oneof=L P"`
	BirthPlace       string `json:"birth_place"`
	BirthDate        string `json:"birth_date"`
	MaritalStatus    string `json:"marital_status"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PhotoData        string `json:"photo_data"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	AttendanceNumber string `json:"attendance_number"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
	Department       string `json:"department"`
	Education        string `json:"education,omitempty"`
	Religion         string `json:"religion,omitempty"`
	Gender           string `json:"gender"`
	BirthPlace       string `json:"birth_place,omitempty"`
	BirthDate        string `json:"birth_date,omitempty"`
	MaritalStatus    string `json:"marital_status,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Address          string `json:"address,omitempty"`
	PhotoData        string `json:"photo_data,omitempty"`
	CreatedAt        string `json:"created_at"`
}

// OptionResponse adalah bentuk ringkas untuk dropdown form admin.
type OptionResponse struct {
	ID               string `json:"id"`
	FullName         string `json:"full_name"`
	AttendanceNumber string `json:"attendance_number"`
}
