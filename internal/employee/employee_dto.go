package employee

type CreateEmployeeRequest struct {
	Name          string `form:"name" binding:"required"`
	Role          string `form:"role" binding:"required"`
	Department    string `form:"department" binding:"required"`
	Email         string `form:"email" binding:"required"`
	AdmissionDate string `form:"admission_date" binding:"required"`
}

type EmployeeResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Department    string `json:"department"`
	Email         string `json:"email"`
	AdmissionDate string `json:"admission_date"`
	Photo         string `json:"photo,omitempty"`
	CreatedAt     string `json:"created_at"`
}
