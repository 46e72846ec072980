package server

const (
	// Registration commands
	// NickCmd `NICK <nickname>` [Nick message](https://tools.ietf.org/html/rfc2812#section-3.1.2)
	NickCmd = "NICK"
	// UserCmd `USER <user>` [User message](https://tools.ietf.org/html/rfc2812#section-3.1.3) - only the username parameter is used
	UserCmd = "USER"
	// QuitCmd `QUIT [<Quit message>]` [Quit](https://tools.ietf.org/html/rfc2812#section-3.1.7)
	QuitCmd = "QUIT"
	// !Registration commands

	// Client commands
	PrivmsgCmd = "PRIVMSG"
	PingCmd    = "PING"
	JoinCmd    = "JOIN"
	PartCmd    = "PART"
	WhoCmd     = "WHO"
	// !Client commands

	// Server responses
	PongCmd = "PONG"
	// !Server responses

	// Error replies
	ErrNoSuchNick     = "401"
	ErrNoSuchChannel  = "403"
	ErrNoRecipient    = "411"
	ErrNoTextToSend   = "412"
	ErrUnknownCommand = "421"
	ErrNickNull       = "431"
	ErrNickInvalid    = "432"
	ErrNickInUse      = "433"
	ErrNotOnChannel   = "442"
	ErrNotRegistered  = "451"
	ErrNeedMoreParams = "461" // <command> :Not enough parameters
	ErrUserInvalid    = "555" // non-standard extension code for invalid usernames
	// !Error replies

	// Command Responses
	RplWelcome    = "001"
	RplWhoReply   = "352"
	RplNameReply  = "353"
	RplEndOfNames = "366"
	// !Command Responses
)
