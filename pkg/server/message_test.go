package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		cmd    string
		target string
		params []string
		want   string
	}{
		{
			name:   "no params",
			sender: "alice!al@localhost",
			cmd:    "JOIN",
			target: "#test",
			want:   ":alice!al@localhost JOIN #test\n",
		},
		{
			name:   "single param becomes trailing",
			sender: "irc.test",
			cmd:    "001",
			target: "alice",
			params: []string{"Welcome alice!"},
			want:   ":irc.test 001 alice :Welcome alice!\n",
		},
		{
			name:   "last param always trailing even without spaces",
			sender: "bob",
			cmd:    "PRIVMSG",
			target: "alice",
			params: []string{"hi"},
			want:   ":bob PRIVMSG alice :hi\n",
		},
		{
			name:   "multiple params",
			sender: "irc.test",
			cmd:    "353",
			target: "alice",
			params: []string{"=", "#test", "alice bob"},
			want:   ":irc.test 353 alice = #test :alice bob\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(tt.sender, tt.cmd, tt.target, tt.params))
		})
	}
}

// Formatting then parsing must preserve parameters exactly, including
// spaces inside the trailing parameter.
func TestTrailingParamRoundTrip(t *testing.T) {
	line := formatMessage("irc.test", "PRIVMSG", "#test", []string{"a", "b c"})
	require.Equal(t, byte('\n'), line[len(line)-1])

	cmd := parseLine(line[:len(line)-1])
	assert.Equal(t, ":irc.test", cmd.Name)
	assert.Equal(t, []string{"PRIVMSG", "#test", "a", "b c"}, cmd.Params)
}
