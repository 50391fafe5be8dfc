package domain

// EnforceRequest adalah kontrak netral antara middleware dan authorizer.
type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}
