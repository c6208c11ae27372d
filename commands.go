package vlist

// Command is a side effect requested by an event handler and carried out by
// the Application after the handler returned. A nil Command does nothing.
type Command any

// BatchCommand runs its commands in order. A redraw follows if any of them
// asks for one.
type BatchCommand []Command

// AppendCommand returns a command running current, then next. Nil commands
// are dropped and batches are flattened, so repeated appends stay one level
// deep.
func AppendCommand(current Command, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(flatten(current), flatten(next)...)
}

func flatten(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{cmd}
}

// SetFocusCommand moves the focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand asks for a new frame once the event is handled.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// ConsumeEventCommand marks the event as handled without redrawing.
type ConsumeEventCommand struct{}
