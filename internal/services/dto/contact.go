package dto

// ContactRequest is the contact-form body. All fields are required; email
// must have a basic email shape.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactStatusRequest updates a message's processing status.
type ContactStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=received read replied"`
}

// ContactStats counts messages per processing status.
type ContactStats struct {
	Total    int `json:"total"`
	Received int `json:"received"`
	Read     int `json:"read"`
	Replied  int `json:"replied"`
}
