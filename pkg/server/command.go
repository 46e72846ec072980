// Package server implements a minimal IRC-style chat server: an
// incremental command parser, a per-connection registration state machine,
// a registry of users and rooms, and a router that fans messages out to
// rooms or single recipients.
package server

import (
	"bytes"
	"strings"
)

// Command is one parsed protocol line: a command name and its parameters.
// The trailing parameter (marked by a leading ':') has the marker stripped
// and may contain spaces.
type Command struct {
	Name   string
	Params []string
}

// Parser reassembles protocol commands from an arbitrarily chunked byte
// stream. The buffer carries partial lines across Feed calls, so a chunk
// boundary may fall anywhere, including inside a token.
type Parser struct {
	buf []byte
}

// Feed appends a chunk of received bytes to the parse buffer.
func (p *Parser) Feed(chunk []byte) {
	p.buf = append(p.buf, chunk...)
}

// Next pops the next complete command off the buffer. It returns false
// while no full line is buffered.
func (p *Parser) Next() (Command, bool) {
	nl := bytes.IndexByte(p.buf, '\n')
	if nl < 0 {
		return Command{}, false
	}
	line := string(p.buf[:nl])
	p.buf = p.buf[nl+1:]
	return parseLine(line), true
}

// parseLine tokenizes one raw line. Validation is the session's job: an
// empty line yields a command with an empty name and no parameters.
func parseLine(line string) Command {
	var cmd Command

	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		cmd.Name = line
		return cmd
	}
	cmd.Name = line[:sp]
	line = line[sp+1:]

	for len(line) > 0 && line[0] != ':' {
		sp = strings.IndexByte(line, ' ')
		if sp < 0 {
			break
		}
		cmd.Params = append(cmd.Params, line[:sp])
		line = line[sp+1:]
	}

	if len(line) > 0 {
		if line[0] == ':' {
			cmd.Params = append(cmd.Params, line[1:])
		} else {
			cmd.Params = append(cmd.Params, line)
		}
	}
	return cmd
}
