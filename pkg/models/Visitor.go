package models

import (
	"fmt"
)

var (
	ErrVisitorNotFound = fmt.Errorf("visitor not found")
)

// Visitor identifies one browser session. It lives in the session cookie.
type Visitor struct {
	ID string
}
