package handler

// --- Request types ---

type createEmployeeRequest struct {
	FirstName  string  `json:"first_name" validate:"required"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone" validate:"omitempty,phone_chars"`
	Department string  `json:"department" validate:"required,oneof=IT HR Finance Marketing Sales Operations"`
	Position   string  `json:"position" validate:"required"`
	Status     string  `json:"status" validate:"required,oneof=Active Inactive 'On Leave'"`
	HireDate   string  `json:"hire_date" validate:"required,not_future"`
	Salary     float64 `json:"salary" validate:"gte=0,lte=1000000"`
	ImageURL   string  `json:"image_url" validate:"omitempty,url"`
}

// updateEmployeeRequest is a partial record: absent fields are preserved on
// the stored employee. Pointers distinguish "not sent" from zero values.
type updateEmployeeRequest struct {
	FirstName  *string  `json:"first_name" validate:"omitempty,min=1"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email" validate:"omitempty,email"`
	Phone      *string  `json:"phone" validate:"omitempty,phone_chars"`
	Department *string  `json:"department" validate:"omitempty,oneof=IT HR Finance Marketing Sales Operations"`
	Position   *string  `json:"position" validate:"omitempty,min=1"`
	Status     *string  `json:"status" validate:"omitempty,oneof=Active Inactive 'On Leave'"`
	HireDate   *string  `json:"hire_date" validate:"omitempty,not_future"`
	Salary     *float64 `json:"salary" validate:"omitempty,gte=0,lte=1000000"`
	ImageURL   *string  `json:"image_url" validate:"omitempty,url"`
}

// --- Response types ---

type employeeResponse struct {
	ID         int     `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name,omitempty"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone,omitempty"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Status     string  `json:"status"`
	HireDate   string  `json:"hire_date"`
	Salary     float64 `json:"salary"`
	ImageURL   string  `json:"image_url,omitempty"`
}

type employeeListResponse struct {
	Items []employeeResponse `json:"items"`
	Total int                `json:"total"`
}
