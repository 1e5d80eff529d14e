package contact

type ContactRequest struct {
	Name    string `form:"name" validate:"required,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"max=200"`
	Message string `form:"message" validate:"required"`
}
