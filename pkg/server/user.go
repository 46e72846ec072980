package server

import (
	"io"
	"net"

	log "github.com/sirupsen/logrus"
)

// Conn is what the server needs from a transport connection: a byte
// stream plus the peer address. Satisfied by net.Conn and by the
// WebSocket adapter.
type Conn interface {
	io.ReadWriteCloser
	RemoteAddr() net.Addr
}

// User is one connected client. name is the registry key; renaming
// re-keys the map. remoteUsername and remoteHostname are fixed at
// registration time and render into the nick!user@host message prefix.
// The connection is exclusively owned by the user's session and closed
// when the session ends.
type User struct {
	name           string
	remoteUsername string
	remoteHostname string
	rooms          map[*Room]bool
	conn           Conn
}

// newUser creates an unregistered user with the placeholder nickname.
func newUser(conn Conn) *User {
	u := &User{
		name:  "*",
		rooms: make(map[*Room]bool),
		conn:  conn,
	}
	if conn != nil {
		u.remoteHostname = hostFromAddr(conn.RemoteAddr())
	}
	return u
}

// prefix renders the user's full sender identity.
func (u *User) prefix() string {
	return u.name + "!" + u.remoteUsername + "@" + u.remoteHostname
}

// send writes one formatted line to the user's connection. A failed
// write is the owning session's problem to notice on its next read, so
// it is only logged here.
func (u *User) send(line string) {
	if u.conn == nil {
		return
	}
	if _, err := u.conn.Write([]byte(line)); err != nil {
		log.Debugf("Write to %s failed: %v", u.name, err)
	}
}

func hostFromAddr(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
