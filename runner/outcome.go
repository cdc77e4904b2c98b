package runner

// State is a stage in the module lifecycle.
type State int

const (
	StateLoaded State = iota
	StateParsed
	StateInstantiated
	StateRunning
	StateCompleted
	StateTrapped
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateParsed:
		return "parsed"
	case StateInstantiated:
		return "instantiated"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateTrapped:
		return "trapped"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// OutcomeKind distinguishes the three ways a run can terminate.
type OutcomeKind int

const (
	// OutcomeCompleted means the entry function returned normally.
	OutcomeCompleted OutcomeKind = iota

	// OutcomeExited means the guest requested termination via proc_exit.
	// The exit code is the program's own termination signal, even when
	// non-zero.
	OutcomeExited

	// OutcomeTrapped means the interpreter aborted execution abnormally.
	OutcomeTrapped
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeCompleted:
		return "completed"
	case OutcomeExited:
		return "exited"
	case OutcomeTrapped:
		return "trapped"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a run.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode uint32 // valid when Kind == OutcomeExited
	Trap     error  // valid when Kind == OutcomeTrapped
}

// ExitStatus maps the outcome to a process exit status: the guest's own code
// for a requested exit, 0 for normal completion, 1 for a trap.
func (o Outcome) ExitStatus() int {
	switch o.Kind {
	case OutcomeExited:
		return int(o.ExitCode)
	case OutcomeTrapped:
		return 1
	default:
		return 0
	}
}
