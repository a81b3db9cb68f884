package cosmos

import "fmt"

type ChainStatusKind int

const (
	// Moving means the node produces blocks and is caught up.
	Moving ChainStatusKind = iota
	Syncing
	// WaitingToStart means the chain has no blocks yet.
	WaitingToStart
)

func (k ChainStatusKind) String() string {
	switch k {
	case Moving:
		return "Moving"
	case Syncing:
		return "Syncing"
	case WaitingToStart:
		return "WaitingToStart"
	default:
		return fmt.Sprintf("ChainStatusKind(%d)", int(k))
	}
}

type ChainStatus struct {
	Kind ChainStatusKind
	// BlockHeight is set only for Moving.
	BlockHeight uint64
}

// Ready reports whether the node is caught up.
func (s ChainStatus) Ready() bool {
	return s.Kind == Moving
}
