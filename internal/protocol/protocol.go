// Package protocol defines the wire format shared by the TaskChat server and
// client: newline-delimited JSON, one object per line in each direction.
//
// Requests are flat objects carrying an "action" field plus the fields that
// action needs. Responses to scalar actions are Response objects; listing
// actions answer with a bare JSON array instead. This asymmetry is part of
// the wire contract, so callers must know which shape to expect for the
// action they sent.
package protocol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Action names understood by the server.
const (
	ActionRegister      = "register"
	ActionLogin         = "login"
	ActionChat          = "chat"
	ActionGetAllChats   = "get_all_chats"
	ActionCreateProject = "create_project"
	ActionAddTask       = "add_task"
	ActionGetProjects   = "get_projects"
	ActionGetTasks      = "get_tasks"
	ActionGetAllUsers   = "get_all_users"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is the decoded form of one client frame. Only the fields relevant
// to Action are populated; the rest keep their zero values.
type Request struct {
	Action      string   `json:"action"`
	Username    string   `json:"username,omitempty"`
	Password    string   `json:"password,omitempty"`
	Token       string   `json:"token,omitempty"`
	Message     string   `json:"message,omitempty"`
	ProjectName string   `json:"project_name,omitempty"`
	ProjectID   int64    `json:"project_id,omitempty"`
	TaskName    string   `json:"task_name,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// Response is the scalar answer shape ({status, message?, token?}).
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}

// ChatEntry is one element of the get_all_chats reply.
type ChatEntry struct {
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ProjectEntry is one element of the get_projects reply.
type ProjectEntry struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Owner   string   `json:"owner"`
	Members []string `json:"members"`
}

// TaskEntry is one element of the get_tasks reply.
type TaskEntry struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Success builds a success Response with a human-readable message.
func Success(message string) Response {
	return Response{Status: StatusSuccess, Message: message}
}

// Error builds an error Response with a client-visible message.
func Error(message string) Response {
	return Response{Status: StatusError, Message: message}
}

// MaxFrameSize bounds a single frame; a peer sending more is misbehaving.
const MaxFrameSize = 1 << 20

// ReadFrame reads one newline-terminated frame from r and returns it without
// the trailing newline. io.EOF is returned unwrapped on a clean close so
// callers can match it with errors.Is.
func ReadFrame(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(bytes.TrimSpace(line)) > 0 {
			// partial frame without the terminator: treat as malformed
			return nil, fmt.Errorf("unterminated frame: %w", io.ErrUnexpectedEOF)
		}
		return nil, err
	}
	if len(line) > MaxFrameSize {
		return nil, fmt.Errorf("frame exceeds %d bytes", MaxFrameSize)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

// WriteFrame serializes v as JSON and writes it as a single
// newline-terminated frame.
func WriteFrame(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
