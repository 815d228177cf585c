package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

func (a *App) CreateProject(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	name, err := GetSimpleText(a.reader, "Enter project name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	members, err := GetMemberList(a.reader, "Enter member usernames (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.client.CreateProject(a.token, name, members); err != nil {
		log.Printf("Project creation failed: %s", err.Error())
		return
	}

	fmt.Println("Project created")
}

func (a *App) ListProjects(ctx context.Context) {

	projects, err := a.client.GetProjects()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet")
		return
	}

	for _, p := range projects {
		fmt.Printf("#%d %s (owner: %s, members: %s)\n", p.ID, p.Name, p.Owner, strings.Join(p.Members, ", "))
	}
}

func (a *App) AddTask(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	projectID, err := a.getProjectID()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	name, err := GetSimpleText(a.reader, "Enter task name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	members, err := GetMemberList(a.reader, "Enter assignee usernames (comma-separated, empty for none)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.client.AddTask(a.token, projectID, name, members); err != nil {
		log.Printf("Adding task failed: %s", err.Error())
		return
	}

	fmt.Println("Task added")
}

func (a *App) ListTasks(ctx context.Context) {

	projectID, err := a.getProjectID()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	tasks, err := a.client.GetTasks(projectID)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks for this project")
		return
	}

	for _, t := range tasks {
		fmt.Printf("#%d %s (assignees: %s)\n", t.ID, t.Name, strings.Join(t.Members, ", "))
	}
}

func (a *App) getProjectID() (int64, error) {
	raw, err := GetSimpleText(a.reader, "Enter project id", os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", raw)
	}
	return id, nil
}
