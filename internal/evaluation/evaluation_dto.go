package evaluation

type CreateEvaluationRequest struct {
	EmployeeID      uint   `json:"employee_id" binding:"required"`
	Period          string `json:"period" binding:"required"`
	Quality         int    `json:"quality" binding:"required,min=1,max=5"`
	Productivity    int    `json:"productivity" binding:"required,min=1,max=5"`
	Technical       int    `json:"technical" binding:"required,min=1,max=5"`
	Teamwork        int    `json:"teamwork" binding:"required,min=1,max=5"`
	Initiative      int    `json:"initiative" binding:"required,min=1,max=5"`
	Punctuality     int    `json:"punctuality" binding:"required,min=1,max=5"`
	Leadership      int    `json:"leadership" binding:"required,min=1,max=5"`
	Adaptability    int    `json:"adaptability" binding:"required,min=1,max=5"`
	Communication   int    `json:"communication" binding:"required,min=1,max=5"`
	ValuesAlignment int    `json:"values_alignment" binding:"required,min=1,max=5"`
	Strengths       string `json:"strengths"`
	Improvements    string `json:"improvements"`
	DevelopmentPlan string `json:"development_plan"`
}

func (r CreateEvaluationRequest) ratings() Ratings {
	return Ratings{
		Quality:         r.Quality,
		Productivity:    r.Productivity,
		Technical:       r.Technical,
		Teamwork:        r.Teamwork,
		Initiative:      r.Initiative,
		Punctuality:     r.Punctuality,
		Leadership:      r.Leadership,
		Adaptability:    r.Adaptability,
		Communication:   r.Communication,
		ValuesAlignment: r.ValuesAlignment,
	}
}

type EvaluationResponse struct {
	ID              uint    `json:"id"`
	EmployeeID      uint    `json:"employee_id"`
	Period          string  `json:"period"`
	Quality         int     `json:"quality"`
	Productivity    int     `json:"productivity"`
	Technical       int     `json:"technical"`
	Teamwork        int     `json:"teamwork"`
	Initiative      int     `json:"initiative"`
	Punctuality     int     `json:"punctuality"`
	Leadership      int     `json:"leadership"`
	Adaptability    int     `json:"adaptability"`
	Communication   int     `json:"communication"`
	ValuesAlignment int     `json:"values_alignment"`
	FinalScore      float64 `json:"final_score"`
	Strengths       string  `json:"strengths,omitempty"`
	Improvements    string  `json:"improvements,omitempty"`
	DevelopmentPlan string  `json:"development_plan,omitempty"`
	CreatedAt       string  `json:"created_at"`

	// Joined from the employee row; null when the employee no longer exists.
	EmployeeName       *string `json:"employee_name"`
	EmployeeRole       *string `json:"employee_role"`
	EmployeeDepartment *string `json:"employee_department"`
}
