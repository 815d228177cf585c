package tasks

type Task struct {
	ID        int64
	ProjectID int64
	Name      string
}

// TaskView is a task joined with its assignees' usernames.
type TaskView struct {
	ID      int64
	Name    string
	Members []string
}
