package model

// Actor is the authenticated identity behind a request. It is passed explicitly
// into every user-facing operation.
type Actor struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

func (a Actor) IsZero() bool {
	return a.UserID == 0
}
