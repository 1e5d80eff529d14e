package business

type RegisterBusinessRequest struct {
	Name     string `form:"service_name" validate:"required,max=100"`
	Category string `form:"service_category" validate:"required,max=100"`
	Location string `form:"location" validate:"required"`
}
