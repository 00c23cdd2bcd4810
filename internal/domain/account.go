package domain

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Acknowledgement is the user-facing notice shown after a form is accepted.
type Acknowledgement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
