// Package tcp implements the TaskChat wire endpoint: a TCP listener that
// runs one handler goroutine per client connection and dispatches decoded
// requests to the domain services.
package tcp

import (
	"context"
	"errors"
	"net"
	"sync"

	"github.com/duongnt/taskchat/internal/logging"
	"github.com/duongnt/taskchat/internal/protocol"
	"github.com/duongnt/taskchat/internal/server/chats"
	"github.com/duongnt/taskchat/internal/server/projects"
	"github.com/duongnt/taskchat/internal/server/tasks"
	"github.com/duongnt/taskchat/internal/server/users"
)

type handlerFunc func(ctx context.Context, log logging.Logger, req *protocol.Request) any

type Server struct {
	address  string
	logger   logging.Logger
	users    *users.Service
	chats    *chats.Service
	projects *projects.Service
	tasks    *tasks.Service
	actions  map[string]handlerFunc

	listener net.Listener
	ready    chan struct{}
}

func NewServer(a string, l logging.Logger, us *users.Service, cs *chats.Service, ps *projects.Service, ts *tasks.Service) *Server {
	s := &Server{
		address:  a,
		logger:   l.With("module", "tcp_server"),
		users:    us,
		chats:    cs,
		projects: ps,
		tasks:    ts,
		ready:    make(chan struct{}),
	}

	s.actions = map[string]handlerFunc{
		protocol.ActionRegister:      s.register,
		protocol.ActionLogin:         s.login,
		protocol.ActionChat:          s.chat,
		protocol.ActionGetAllChats:   s.getAllChats,
		protocol.ActionCreateProject: s.createProject,
		protocol.ActionAddTask:       s.addTask,
		protocol.ActionGetProjects:   s.getProjects,
		protocol.ActionGetTasks:      s.getTasks,
		protocol.ActionGetAllUsers:   s.getAllUsers,
	}

	return s
}

// Run listens on the configured address and accepts connections until ctx is
// canceled. Every accepted connection gets its own goroutine; a failed
// connection never stops the accept loop.
func (s *Server) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.listener = listen
	close(s.ready)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping TCP server...")
		_ = listen.Close()
	}()

	s.logger.Info(ctx, "Starting TCP server", "address", listen.Addr().String())

	var wg sync.WaitGroup

	for {
		conn, err := listen.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			s.logger.Error(ctx, "accept error", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConn(ctx, conn)
		}()
	}

	wg.Wait()

	return nil
}

// Addr blocks until Run has bound the listener and returns its address.
// Useful when the server was started on ":0".
func (s *Server) Addr() net.Addr {
	<-s.ready
	return s.listener.Addr()
}
