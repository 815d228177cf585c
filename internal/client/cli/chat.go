package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Chat(ctx context.Context) {

	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return
	}

	message, err := GetSimpleText(a.reader, "Enter message", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.client.Chat(a.token, message); err != nil {
		log.Printf("Sending failed: %s", err.Error())
		return
	}

	fmt.Println("Message sent")
}

func (a *App) ListChats(ctx context.Context) {

	chats, err := a.client.GetAllChats()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if len(chats) == 0 {
		fmt.Println("No messages yet")
		return
	}

	for _, c := range chats {
		fmt.Printf("[%s] %s: %s\n", c.Timestamp, c.Username, c.Message)
	}
}

func (a *App) ListUsers(ctx context.Context) {

	usernames, err := a.client.GetAllUsers()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	for _, u := range usernames {
		fmt.Println(u)
	}
}
