package server

import (
	"errors"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// HandleConn runs the protocol state machine for one connection. It owns
// the connection for its whole lifetime and closes it on every exit
// path; commands from one connection are processed strictly in arrival
// order.
func (s *Server) HandleConn(conn Conn) {
	connID := uuid.Must(uuid.NewRandom())
	log.Infof("Client connecting from %s, handling connection ...", conn.RemoteAddr())
	log.Debugf("Connection %s accepted", connID)

	u := newUser(conn)
	parser := &Parser{}
	buf := make([]byte, 4096)

	// next pulls the next complete command, reading more chunks from the
	// transport as needed. ok is false once the stream is done.
	next := func() (Command, bool) {
		for {
			if cmd, ok := parser.Next(); ok {
				return cmd, true
			}
			n, err := conn.Read(buf)
			if n > 0 {
				parser.Feed(buf[:n])
			}
			if err != nil {
				return Command{}, false
			}
		}
	}

	quitMessage := ""
	defer func() {
		s.removeUser(u, quitMessage)
		conn.Close()
		log.Infof("Client %s disconnected", u.name)
		log.Debugf("Connection %s closed", connID)
	}()

	// Registration handshake: only NICK and USER are accepted until both
	// have succeeded, in either order.
	nickDone, userDone := false, false
	for !(nickDone && userDone) {
		cmd, ok := next()
		if !ok {
			return
		}

		var err error
		switch cmd.Name {
		case NickCmd:
			if err = s.cmdNick(u, cmd.Params); err == nil {
				nickDone = true
			}
		case UserCmd:
			if err = s.cmdUser(u, cmd.Params); err == nil {
				userDone = true
			}
		default:
			err = newError(ErrNotRegistered, "You have not registered")
		}
		if err != nil {
			s.sendError(u, err)
		}

		if nickDone && userDone {
			u.send(formatMessage(s.hostname, RplWelcome, u.name, []string{"Welcome " + u.name + "!"}))
			log.Infof("Client registered as %s", u.name)
		}
	}

	// Registered: dispatch every command. Protocol errors answer the
	// sender and never end the loop; QUIT does.
	for {
		cmd, ok := next()
		if !ok {
			return
		}
		if cmd.Name == QuitCmd {
			if len(cmd.Params) > 0 {
				quitMessage = cmd.Params[0]
			}
			return
		}

		var err error
		switch cmd.Name {
		case JoinCmd:
			err = s.cmdJoin(u, cmd.Params)
		case PartCmd:
			err = s.cmdPart(u, cmd.Params)
		case PrivmsgCmd:
			err = s.cmdPrivmsg(u, cmd.Params)
		case NickCmd:
			err = s.cmdNick(u, cmd.Params)
		case PingCmd:
			err = s.cmdPing(u, cmd.Params)
		case WhoCmd:
			err = s.cmdWho(u, cmd.Params)
		default:
			err = newError(ErrUnknownCommand, cmd.Name, "Unknown command")
		}
		if err != nil {
			s.sendError(u, err)
		}
	}
}

// sendError renders a protocol error as a numeric reply to the offending
// user, addressed to their current name. Anything that is not a protocol
// Error is a bug in a handler and is only logged.
func (s *Server) sendError(u *User, err error) {
	var e *Error
	if !errors.As(err, &e) {
		log.Errorf("Handler returned non-protocol error: %v", err)
		return
	}
	u.send(formatMessage(s.hostname, e.Code, u.name, e.Params))
}
