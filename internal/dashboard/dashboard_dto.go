package dashboard

type RecentEvaluationResponse struct {
	ID           uint    `json:"id"`
	EmployeeID   uint    `json:"employee_id"`
	Period       string  `json:"period"`
	FinalScore   float64 `json:"final_score"`
	CreatedAt    string  `json:"created_at"`
	EmployeeName *string `json:"employee_name"`
	EmployeeRole *string `json:"employee_role"`
}

type DashboardResponse struct {
	TotalEmployees     int64                      `json:"totalEmployees"`
	TotalEvaluations   int64                      `json:"totalEvaluations"`
	PendingEvaluations int64                      `json:"pendingEvaluations"`
	AverageScore       *float64                   `json:"averageScore"`
	RecentEvaluations  []RecentEvaluationResponse `json:"recentEvaluations"`
}
