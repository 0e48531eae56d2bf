package recording

import (
	"fmt"

	"github.com/gogpu/ornament"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdPenUp   CommandType = iota // Lift the pen
	CmdPenDown                    // Lower the pen
	CmdMoveTo                     // Move (and draw if the pen is down)
	CmdRefresh                    // Flush to the visible surface
)

var commandTypeNames = [...]string{
	CmdPenUp:   "PenUp",
	CmdPenDown: "PenDown",
	CmdMoveTo:  "MoveTo",
	CmdRefresh: "Refresh",
}

// String returns the name of the command type.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is a single recorded canvas operation.
type Command interface {
	Type() CommandType
}

// PenUpCommand lifts the pen.
type PenUpCommand struct{}

// Type implements Command.
func (PenUpCommand) Type() CommandType { return CmdPenUp }

// PenDownCommand lowers the pen.
type PenDownCommand struct{}

// Type implements Command.
func (PenDownCommand) Type() CommandType { return CmdPenDown }

// MoveToCommand moves the pen to Point.
type MoveToCommand struct {
	Point ornament.Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// RefreshCommand marks a refresh request.
type RefreshCommand struct{}

// Type implements Command.
func (RefreshCommand) Type() CommandType { return CmdRefresh }
