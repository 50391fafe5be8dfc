package company

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Tagline string `json:"tagline"`
	About   string `json:"about"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type ProfileResponse struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	About   string `json:"about,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type CreateSlideRequest struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	ImageData string `json:"image_data" binding:"required"`
	SortOrder int    `json:"sort_order"`
}

type SlideResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Caption   string `json:"caption,omitempty"`
	ImageData string `json:"image_data"`
	SortOrder int    `json:"sort_order"`
}
