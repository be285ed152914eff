package domain

import "time"

// Template is a landing-page template a link may reference. Config is an
// opaque JSON document consumed by the rendering frontend.
type Template struct {
	ID        string
	UserID    string
	Name      string
	Config    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
