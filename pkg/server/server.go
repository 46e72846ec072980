package server

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Server owns the registry: the authoritative name-to-user and
// name-to-room maps and, transitively, every membership set. A name is a
// key in at most one of the two maps; room names carry the leading '#'
// in their key. One mutex guards all of it and each command takes the
// lock exactly once, so registry mutations are atomic per command.
// Recipient sets are snapshotted under the lock and written to after
// release so a stalled client cannot hold up the registry.
type Server struct {
	hostname string

	mu    sync.Mutex
	users map[string]*User
	rooms map[string]*Room
}

// New creates a server whose replies are prefixed with hostname.
func New(hostname string) *Server {
	return &Server{
		hostname: hostname,
		users:    make(map[string]*User),
		rooms:    make(map[string]*Room),
	}
}

// Send routes one message. A target starting with '#' is a room and the
// message fans out to every member except skip; any other target is a
// user nick delivered directly. The sender string is used verbatim in
// the message prefix. Returns ErrUnknownTarget when the name resolves
// to nothing.
func (s *Server) Send(target, sender, command string, params []string, skip *User) error {
	line := formatMessage(sender, command, target, params)

	s.mu.Lock()
	if !strings.HasPrefix(target, "#") {
		u, ok := s.users[target]
		s.mu.Unlock()
		if !ok {
			return ErrUnknownTarget
		}
		u.send(line)
		return nil
	}

	room, ok := s.rooms[target]
	if !ok {
		s.mu.Unlock()
		return ErrUnknownTarget
	}
	members := room.members(skip)
	s.mu.Unlock()

	for _, m := range members {
		m.send(line)
	}
	return nil
}

// removeUser tears a user down on QUIT or disconnect: leave every room,
// notify the remaining members, and drop the registry entry. The quit
// message is empty on plain disconnects.
func (s *Server) removeUser(u *User, quitMessage string) {
	var params []string
	if quitMessage != "" {
		params = []string{quitMessage}
	}

	type delivery struct {
		to   []*User
		line string
	}
	var deliveries []delivery

	s.mu.Lock()
	for room := range u.rooms {
		delete(room.users, u)
		delete(u.rooms, room)
		deliveries = append(deliveries, delivery{
			to:   room.members(nil),
			line: formatMessage(u.prefix(), QuitCmd, room.name, params),
		})
	}
	if s.users[u.name] == u {
		delete(s.users, u.name)
	}
	s.mu.Unlock()

	for _, d := range deliveries {
		for _, m := range d.to {
			m.send(d.line)
		}
	}
}

// Shutdown closes every connected user's sink. Sessions unwind through
// their normal disconnect path, including QUIT notices.
func (s *Server) Shutdown() {
	s.mu.Lock()
	users := make([]*User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	s.mu.Unlock()

	log.Infof("Disconnecting %d clients...", len(users))
	for _, u := range users {
		if u.conn != nil {
			u.conn.Close()
		}
	}
}
