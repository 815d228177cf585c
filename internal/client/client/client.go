// Package client implements the TaskChat TCP client: one long-lived
// connection, framed JSON requests, and a typed method per server action.
//
// The client is not safe for concurrent use; the protocol has no request
// IDs, so requests and responses must alternate on the connection.
package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/duongnt/taskchat/internal/protocol"
)

// ErrConnectionLost reports that the server closed or reset the connection.
var ErrConnectionLost = errors.New("connection to the server was lost")

type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial connects to the server address.
func Dial(ctx context.Context, address string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("dial error: %w", err)
	}
	return &Client{conn: conn, reader: bufio.NewReader(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// roundTrip sends one request frame and decodes the response frame into out.
func (c *Client) roundTrip(req protocol.Request, out any) error {
	if err := protocol.WriteFrame(c.conn, req); err != nil {
		return ErrConnectionLost
	}

	frame, err := protocol.ReadFrame(c.reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return ErrConnectionLost
		}
		return err
	}

	if err := json.Unmarshal(frame, out); err != nil {
		return fmt.Errorf("malformed server response: %w", err)
	}

	return nil
}

// scalar sends a request expecting a {status, message?, token?} response and
// converts an error status into a Go error carrying the server message.
func (c *Client) scalar(req protocol.Request) (protocol.Response, error) {
	var resp protocol.Response
	if err := c.roundTrip(req, &resp); err != nil {
		return protocol.Response{}, err
	}
	if resp.Status != protocol.StatusSuccess {
		return resp, errors.New(resp.Message)
	}
	return resp, nil
}

func (c *Client) Register(username, password string) error {
	_, err := c.scalar(protocol.Request{
		Action:   protocol.ActionRegister,
		Username: username,
		Password: password,
	})
	return err
}

// Login authenticates and returns the session token.
func (c *Client) Login(username, password string) (string, error) {
	resp, err := c.scalar(protocol.Request{
		Action:   protocol.ActionLogin,
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Chat(token, message string) error {
	_, err := c.scalar(protocol.Request{
		Action:  protocol.ActionChat,
		Token:   token,
		Message: message,
	})
	return err
}

func (c *Client) GetAllChats() ([]protocol.ChatEntry, error) {
	var entries []protocol.ChatEntry
	if err := c.roundTrip(protocol.Request{Action: protocol.ActionGetAllChats}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) CreateProject(token, name string, members []string) error {
	_, err := c.scalar(protocol.Request{
		Action:      protocol.ActionCreateProject,
		Token:       token,
		ProjectName: name,
		Members:     members,
	})
	return err
}

func (c *Client) AddTask(token string, projectID int64, name string, members []string) error {
	_, err := c.scalar(protocol.Request{
		Action:    protocol.ActionAddTask,
		Token:     token,
		ProjectID: projectID,
		TaskName:  name,
		Members:   members,
	})
	return err
}

func (c *Client) GetProjects() ([]protocol.ProjectEntry, error) {
	var entries []protocol.ProjectEntry
	if err := c.roundTrip(protocol.Request{Action: protocol.ActionGetProjects}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetTasks(projectID int64) ([]protocol.TaskEntry, error) {
	var entries []protocol.TaskEntry
	if err := c.roundTrip(protocol.Request{Action: protocol.ActionGetTasks, ProjectID: projectID}, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetAllUsers() ([]string, error) {
	var usernames []string
	if err := c.roundTrip(protocol.Request{Action: protocol.ActionGetAllUsers}, &usernames); err != nil {
		return nil, err
	}
	return usernames, nil
}
