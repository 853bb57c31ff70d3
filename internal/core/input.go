package core

// Command is an abstract instruction for the runner simulation, decoupled
// from whatever physical input (keys, swipes, network) produced it.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandPause
	CommandResume
	CommandRestart
	CommandJump
	CommandSlide
	CommandHome
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandRestart:
		return "restart"
	case CommandJump:
		return "jump"
	case CommandSlide:
		return "slide"
	case CommandHome:
		return "home"
	default:
		return "unknown"
	}
}

// InputFrame collects the commands issued between two ticks, in arrival order.
type InputFrame struct {
	commands []Command
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends a command. CommandNone is dropped.
func (f *InputFrame) Push(c Command) {
	if c == CommandNone {
		return
	}
	f.commands = append(f.commands, c)
}

// Has returns true if the given command was issued this frame.
func (f InputFrame) Has(c Command) bool {
	for _, got := range f.commands {
		if got == c {
			return true
		}
	}
	return false
}

// Drain returns the queued commands and leaves the frame empty.
func (f *InputFrame) Drain() []Command {
	out := f.commands
	f.commands = nil
	return out
}
