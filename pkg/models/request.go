package models

// CreateJobRequest is the payload for creating a job. Date fields are
// YYYY-MM-DD strings coerced by the service layer.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=2"`
	Company     string   `json:"company" validate:"required,min=1"`
	Location    string   `json:"location,omitempty"`
	Remote      bool     `json:"remote"`
	Source      string   `json:"source,omitempty"`
	Status      string   `json:"status,omitempty" validate:"omitempty,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED ON_HOLD"`
	SalaryNote  string   `json:"salary_note,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=8"`
	URL         string   `json:"url,omitempty" validate:"omitempty,url"`
	AppliedAt   string   `json:"applied_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NextAction  string   `json:"next_action_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateJobRequest is the partial payload for updating a job; nil fields are
// left untouched.
type UpdateJobRequest struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=2"`
	Company     *string   `json:"company,omitempty" validate:"omitempty,min=1"`
	Location    *string   `json:"location,omitempty"`
	Remote      *bool     `json:"remote,omitempty"`
	Source      *string   `json:"source,omitempty"`
	Status      *string   `json:"status,omitempty" validate:"omitempty,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED ON_HOLD"`
	SalaryNote  *string   `json:"salary_note,omitempty"`
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty" validate:"omitempty,max=8"`
	URL         *string   `json:"url,omitempty" validate:"omitempty,url"`
	AppliedAt   *string   `json:"applied_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NextAction  *string   `json:"next_action_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// MoveStatusRequest moves a job to a new board column
type MoveStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPLIED SCREENING INTERVIEW OFFER REJECTED ON_HOLD"`
}

// CreateTaskRequest creates a task, optionally scoped to a job
type CreateTaskRequest struct {
	JobID string `json:"job_id,omitempty"`
	Title string `json:"title" validate:"required,min=2"`
	DueAt string `json:"due_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest is the partial payload for updating a task
type UpdateTaskRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=2"`
	DueAt *string `json:"due_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Done  *bool   `json:"done,omitempty"`
}

// CreateNoteRequest creates a note on a job
type CreateNoteRequest struct {
	JobID   string `json:"job_id" validate:"required"`
	Content string `json:"content" validate:"required,min=1"`
}

// CreateContactRequest creates a contact, optionally scoped to a job
type CreateContactRequest struct {
	JobID string `json:"job_id,omitempty"`
	Name  string `json:"name" validate:"required,min=1"`
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty"`
}
