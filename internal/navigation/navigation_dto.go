package navigation

type NavigateRequest struct {
	Page   string `json:"page" binding:"required"`
	IsBack bool   `json:"is_back"`
}

type StateResponse struct {
	CurrentPage        string   `json:"current_page"`
	History            []string `json:"history"`
	AdminAuthenticated bool     `json:"admin_authenticated"`
	Visibility         string   `json:"visibility"`
}
