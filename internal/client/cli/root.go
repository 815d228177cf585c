package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TaskChat (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("taskchat %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: chat, chats, project, projects, task, tasks, users, exit")
			} else {
				fmt.Println("Available commands: register, login, chats, projects, tasks, users, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "chat":
			a.Chat(ctx)
		case "chats":
			a.ListChats(ctx)
		case "project":
			a.CreateProject(ctx)
		case "projects":
			a.ListProjects(ctx)
		case "task":
			a.AddTask(ctx)
		case "tasks":
			a.ListTasks(ctx)
		case "users":
			a.ListUsers(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
