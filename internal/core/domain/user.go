package domain

// User models a registered actor. Roles is populated only on paths that
// resolve membership explicitly (signin, profile projections); elsewhere it
// stays nil.
type User struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Position     string `json:"position"`
	Picture      string `json:"picture"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles,omitempty"`
}

// Authorities renders the loaded roles as prefixed authority strings.
func (u *User) Authorities() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, r.Authority())
	}
	return out
}
