package server

import "strings"

// formatMessage renders one wire line: ":<sender> <command> <target>"
// followed by the parameters, the last of which is always sent as the
// trailing parameter so it survives containing spaces. The sender string
// is used verbatim; callers pass either the server hostname or a user's
// nick!user@host prefix.
func formatMessage(sender, command, target string, params []string) string {
	var b strings.Builder
	b.WriteByte(':')
	b.WriteString(sender)
	b.WriteByte(' ')
	b.WriteString(command)
	b.WriteByte(' ')
	b.WriteString(target)

	if len(params) > 0 {
		for _, p := range params[:len(params)-1] {
			b.WriteByte(' ')
			b.WriteString(p)
		}
		b.WriteString(" :")
		b.WriteString(params[len(params)-1])
	}

	b.WriteByte('\n')
	return b.String()
}
