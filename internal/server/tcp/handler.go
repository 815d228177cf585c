package tcp

import (
	"context"
	"errors"
	"time"

	"github.com/duongnt/taskchat/internal/common"
	"github.com/duongnt/taskchat/internal/logging"
	"github.com/duongnt/taskchat/internal/protocol"
)

// errorResponse maps domain sentinels to the client-visible messages.
// Internal detail never crosses the wire.
func errorResponse(err error) protocol.Response {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return protocol.Error("Username already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return protocol.Error("Invalid credentials")
	case errors.Is(err, common.ErrInvalidToken):
		return protocol.Error("Authentication failed")
	case errors.Is(err, common.ErrNotProjectOwner):
		return protocol.Error("Only project owner can add tasks")
	default:
		return protocol.Error("internal error")
	}
}

func (s *Server) register(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		log.Warn(ctx, "registration failed", "username", req.Username, "error", err)
		return errorResponse(err)
	}

	log.Info(ctx, "user registered", "username", user.Username)
	return protocol.Success("User registered successfully")
}

func (s *Server) login(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		log.Warn(ctx, "login failed", "username", req.Username, "error", err)
		return errorResponse(err)
	}

	log.Info(ctx, "user logged in", "username", req.Username)
	return protocol.Response{Status: protocol.StatusSuccess, Token: token}
}

func (s *Server) chat(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	user, err := s.users.Authenticate(ctx, req.Token)
	if err != nil {
		return errorResponse(err)
	}

	if err := s.chats.Post(ctx, user.ID, req.Message); err != nil {
		log.Error(ctx, "chat insert failed", "error", err)
		return errorResponse(err)
	}

	log.Info(ctx, "message posted", "username", user.Username)
	return protocol.Success("Message sent")
}

func (s *Server) getAllChats(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	messages, err := s.chats.ListAll(ctx)
	if err != nil {
		// listing actions have no error channel on the wire
		log.Error(ctx, "chat listing failed", "error", err)
		return []protocol.ChatEntry{}
	}

	entries := make([]protocol.ChatEntry, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, protocol.ChatEntry{
			Username:  m.Username,
			Message:   m.Message,
			Timestamp: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return entries
}

func (s *Server) createProject(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	user, err := s.users.Authenticate(ctx, req.Token)
	if err != nil {
		return errorResponse(err)
	}

	if _, err := s.projects.Create(ctx, user.ID, req.ProjectName, req.Members); err != nil {
		log.Error(ctx, "project insert failed", "error", err)
		return errorResponse(err)
	}

	log.Info(ctx, "project created", "name", req.ProjectName, "owner", user.Username)
	return protocol.Success("Project created successfully")
}

func (s *Server) addTask(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	user, err := s.users.Authenticate(ctx, req.Token)
	if err != nil {
		return errorResponse(err)
	}

	if _, err := s.tasks.Add(ctx, user.ID, req.ProjectID, req.TaskName, req.Members); err != nil {
		if !errors.Is(err, common.ErrNotProjectOwner) {
			log.Error(ctx, "task insert failed", "error", err)
		}
		return errorResponse(err)
	}

	log.Info(ctx, "task added", "name", req.TaskName, "project_id", req.ProjectID, "username", user.Username)
	return protocol.Success("Task added successfully")
}

func (s *Server) getProjects(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	views, err := s.projects.ListAll(ctx)
	if err != nil {
		log.Error(ctx, "project listing failed", "error", err)
		return []protocol.ProjectEntry{}
	}

	entries := make([]protocol.ProjectEntry, 0, len(views))
	for _, v := range views {
		entries = append(entries, protocol.ProjectEntry{
			ID:      v.ID,
			Name:    v.Name,
			Owner:   v.Owner,
			Members: v.Members,
		})
	}
	return entries
}

func (s *Server) getTasks(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	views, err := s.tasks.ListByProject(ctx, req.ProjectID)
	if err != nil {
		log.Error(ctx, "task listing failed", "error", err)
		return []protocol.TaskEntry{}
	}

	entries := make([]protocol.TaskEntry, 0, len(views))
	for _, v := range views {
		entries = append(entries, protocol.TaskEntry{
			ID:      v.ID,
			Name:    v.Name,
			Members: v.Members,
		})
	}
	return entries
}

func (s *Server) getAllUsers(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	usernames, err := s.users.ListUsernames(ctx)
	if err != nil {
		log.Error(ctx, "user listing failed", "error", err)
		return []string{}
	}
	return usernames
}
