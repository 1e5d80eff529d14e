package catalog

type WorkItemInput struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Price float64 `json:"price"`
}

type CreateServiceRequest struct {
	Category    string          `json:"category" binding:"required"`
	Title       string          `json:"title" binding:"required,max=100"`
	Description string          `json:"description" binding:"required"`
	Location    string          `json:"location"`
	WorkItems   []WorkItemInput `json:"work_specifications"`
}

type UpdateServiceRequest struct {
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}
