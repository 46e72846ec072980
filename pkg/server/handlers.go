package server

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// nickForbidden are the bytes a nickname or username may not contain.
// Everything else is allowed; names are plain byte sequences.
const nickForbidden = "!#*@"

func validName(name string) bool {
	return !strings.ContainsAny(name, nickForbidden)
}

// cmdNick sets or changes the user's nickname. The registry re-key and
// the name field update happen under one lock hold, so no other
// connection can observe the rename half-applied. The change notice is
// rendered under the old identity and goes to the user plus everyone
// sharing a room with them, deduplicated.
func (s *Server) cmdNick(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNickNull, "No nickname given")
	}
	newName := params[0]
	if !validName(newName) {
		return newError(ErrNickInvalid, newName, "Erroneous nickname")
	}

	s.mu.Lock()
	if _, taken := s.users[newName]; taken {
		s.mu.Unlock()
		return newError(ErrNickInUse, newName, "Nickname is already in use")
	}

	line := formatMessage(u.prefix(), NickCmd, newName, nil)

	delete(s.users, u.name)
	s.users[newName] = u
	u.name = newName

	notify := map[*User]bool{u: true}
	for room := range u.rooms {
		for m := range room.users {
			notify[m] = true
		}
	}
	targets := make([]*User, 0, len(notify))
	for m := range notify {
		targets = append(targets, m)
	}
	s.mu.Unlock()

	for _, m := range targets {
		m.send(line)
	}
	return nil
}

// cmdUser records the remote username presented during the handshake.
func (s *Server) cmdUser(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNeedMoreParams, UserCmd, "Not enough parameters")
	}
	if !validName(params[0]) {
		return newError(ErrUserInvalid, "Your username is invalid. Please make sure that your username contains only alphanumeric characters.")
	}

	s.mu.Lock()
	u.remoteUsername = params[0]
	s.mu.Unlock()
	return nil
}

// cmdJoin adds the user to a room, creating the room on first
// reference. Joining a room you are already in is a silent no-op. The
// JOIN notice goes to every member including the joining user, who then
// receives the names list.
func (s *Server) cmdJoin(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNeedMoreParams, JoinCmd, "Not enough parameters")
	}
	name := params[0]

	s.mu.Lock()
	room, ok := s.rooms[name]
	if !ok {
		room = newRoom(name)
		s.rooms[name] = room
		log.Debugf("Created room %s", name)
	}
	if room.users[u] {
		s.mu.Unlock()
		return nil
	}
	room.users[u] = true
	u.rooms[room] = true

	line := formatMessage(u.prefix(), JoinCmd, room.name, nil)
	members := room.members(nil)
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.name)
	}
	nick := u.name
	s.mu.Unlock()

	for _, m := range members {
		m.send(line)
	}
	u.send(formatMessage(s.hostname, RplNameReply, nick, []string{"=", room.name, strings.Join(names, " ")}))
	u.send(formatMessage(s.hostname, RplEndOfNames, nick, []string{room.name, "End of /NAMES list."}))
	return nil
}

// cmdPart removes the user from a room. The PART notice goes to every
// member, the departing user included, before the membership is dropped
// on both sides.
func (s *Server) cmdPart(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNeedMoreParams, PartCmd, "Not enough parameters")
	}
	name := params[0]

	s.mu.Lock()
	room, ok := s.rooms[name]
	if !ok {
		s.mu.Unlock()
		return newError(ErrNoSuchChannel, name, "No such channel")
	}
	if !room.users[u] {
		s.mu.Unlock()
		return newError(ErrNotOnChannel, name, "You're not on that channel")
	}

	var reason []string
	if len(params) >= 2 {
		reason = []string{params[1]}
	}
	line := formatMessage(u.prefix(), PartCmd, room.name, reason)
	members := room.members(nil)

	delete(room.users, u)
	delete(u.rooms, room)
	s.mu.Unlock()

	for _, m := range members {
		m.send(line)
	}
	return nil
}

// cmdPrivmsg routes a message to a user or room. The sender renders as
// the bare nick. Room targets exclude the sender; direct targets do not.
func (s *Server) cmdPrivmsg(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNoRecipient, "No recipient given (PRIVMSG)")
	}
	if len(params) < 2 {
		return newError(ErrNoTextToSend, "No text to send")
	}

	if err := s.Send(params[0], u.name, PrivmsgCmd, []string{params[1]}, u); err != nil {
		return newError(ErrNoSuchNick, params[0], "No such nick/channel")
	}
	return nil
}

// cmdPing answers directly with a PONG echoing the given token,
// addressed from the server hostname.
func (s *Server) cmdPing(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNeedMoreParams, PingCmd, "Not enough parameters")
	}
	u.send(formatMessage(s.hostname, PongCmd, s.hostname, []string{params[0]}))
	return nil
}

// cmdWho is a best-effort single-user lookup. The closing 352 goes out
// whether or not the name matched.
func (s *Server) cmdWho(u *User, params []string) error {
	if len(params) < 1 {
		return newError(ErrNeedMoreParams, WhoCmd, "Not enough parameters")
	}

	var lines []string
	s.mu.Lock()
	nick := u.name
	if target, ok := s.users[params[0]]; ok {
		lines = append(lines, formatMessage(s.hostname, RplWhoReply, nick,
			[]string{"*", "~", target.remoteHostname, s.hostname, target.name, "H", "0 d"}))
	}
	s.mu.Unlock()
	lines = append(lines, formatMessage(s.hostname, RplWhoReply, nick, []string{params[0], "End of /WHO list."}))

	for _, l := range lines {
		u.send(l)
	}
	return nil
}
