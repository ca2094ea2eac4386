package keys

type (
	// ProgressFollower is notified while GenerateKeyPair runs. A step has
	// the given number of intermediate ticks.
	ProgressFollower interface {
		StepStart(desc string, intermediates int)
		Tick()
		StepDone()
	}

	EmptyFollower struct{}
)

func (*EmptyFollower) StepStart(_ string, _ int) {}
func (*EmptyFollower) Tick()                     {}
func (*EmptyFollower) StepDone()                 {}

// Follower receives the progress of key generation.
var Follower ProgressFollower = &EmptyFollower{}
