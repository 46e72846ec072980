package server

// Room struct holding a named channel and its member set. Rooms are
// created lazily on first JOIN and never destroyed, even when empty, so
// a later JOIN finds the same room again.
type Room struct {
	name  string
	users map[*User]bool
}

func newRoom(name string) *Room {
	return &Room{
		name:  name,
		users: make(map[*User]bool),
	}
}

// members returns a snapshot of the member set, minus skip when given.
// Callers snapshot under the registry lock and send after releasing it.
func (r *Room) members(skip *User) []*User {
	users := make([]*User, 0, len(r.users))
	for u := range r.users {
		if u == skip {
			continue
		}
		users = append(users, u)
	}
	return users
}
