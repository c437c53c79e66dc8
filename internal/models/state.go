package models

// Mode is the per-user conversation state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAwaitingAnswer
	ModeAwaitingAirdropAnswer
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAwaitingAnswer:
		return "awaiting_answer"
	case ModeAwaitingAirdropAnswer:
		return "awaiting_airdrop_answer"
	}
	return "unknown"
}
