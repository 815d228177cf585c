package projects

import "time"

type Project struct {
	ID        int64
	Name      string
	OwnerID   int64
	CreatedAt time.Time
}

// ProjectView is a project joined with its owner's and members' usernames.
type ProjectView struct {
	ID      int64
	Name    string
	Owner   string
	Members []string
}
