package review

type CreateReviewRequest struct {
	Rating      int    `json:"rating" binding:"required"`
	RatingLabel string `json:"rating_label" binding:"required"`
	Comment     string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	RatingLabel *string `json:"rating_label"`
	Comment     *string `json:"comment"`
}

type ReplyRequest struct {
	Comment string `json:"comment" binding:"required"`
}
