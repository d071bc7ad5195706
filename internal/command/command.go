package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

type Kind uint8

const (
	Noop Kind = iota
	Open
	Flag
	Chord
	Forfeit
	Quit
)

func (k Kind) String() string {
	switch k {
	case Noop:
		return "noop"
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case Forfeit:
		return "forfeit"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

type Command struct {
	Kind Kind
	Pos  mines.Position
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrBadCoordinate  = errors.New("coordinates must be integers")
)

// Maps short commands to number of arguments
var shortNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
}

var shortKinds = map[string]Kind{
	"g": Noop,
	"o": Open,
	"f": Flag,
	"c": Chord,
	"r": Forfeit,
}

// Parse reads one command line. Both the console and the short forms are
// understood:
//
//	<x> <y> [flag]   open, or flag with a trailing "flag"
//	o|f|c <x> <y>    open, flag, chord
//	r | g | quit     forfeit, no-op, quit
//
// Coordinates in line count from origin and are returned zero-based.
func Parse(line string, origin int) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	head := strings.ToLower(fields[0])
	if head == "quit" {
		if len(fields) != 1 {
			return Command{}, ErrBadArgs
		}
		return Command{Kind: Quit}, nil
	}

	if nargs, ok := shortNargs[head]; ok {
		if len(fields)-1 != nargs {
			return Command{}, fmt.Errorf("%w for %q", ErrBadArgs, head)
		}
		cmd := Command{Kind: shortKinds[head]}
		if nargs == 0 {
			return cmd, nil
		}
		p, err := parseXY(fields[1:], origin)
		if err != nil {
			return Command{}, err
		}
		cmd.Pos = p
		return cmd, nil
	}

	if _, err := strconv.Atoi(head); err != nil {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, fields[0])
	}

	switch len(fields) {
	case 2:
		p, err := parseXY(fields, origin)
		return Command{Kind: Open, Pos: p}, err
	case 3:
		if !strings.EqualFold(fields[2], "flag") {
			return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, fields[2])
		}
		p, err := parseXY(fields[:2], origin)
		return Command{Kind: Flag, Pos: p}, err
	default:
		return Command{}, ErrBadArgs
	}
}

func parseXY(args []string, origin int) (p mines.Position, err error) {
	if p.X, err = strconv.Atoi(args[0]); err != nil {
		return mines.Position{}, fmt.Errorf("%w: invalid x %q", ErrBadCoordinate, args[0])
	}
	if p.Y, err = strconv.Atoi(args[1]); err != nil {
		return mines.Position{}, fmt.Errorf("%w: invalid y %q", ErrBadCoordinate, args[1])
	}
	p.X -= origin
	p.Y -= origin
	return p, nil
}

// Apply runs cmd against g. Quit is left to the caller.
func Apply(g *game.Game, cmd Command) error {
	switch cmd.Kind {
	case Noop, Quit:
		return nil
	case Open:
		return g.Open(cmd.Pos)
	case Flag:
		return g.Flag(cmd.Pos)
	case Chord:
		return g.Chord(cmd.Pos)
	case Forfeit:
		g.Forfeit()
		return nil
	default:
		return fmt.Errorf("%w %s", ErrUnknownCommand, cmd.Kind)
	}
}
