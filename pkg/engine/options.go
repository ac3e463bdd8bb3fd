package engine

import "fmt"

type Options struct {
	// Depth is the search depth in plies outside the endgame.
	Depth int
	// EndgameDepth is used once the tablebase classifies the position.
	EndgameDepth int
	// FrontierFilter skips captures one ply above the horizon.
	FrontierFilter bool
}

func NewOptions() Options {
	return Options{
		Depth:          7,
		EndgameDepth:   1,
		FrontierFilter: true,
	}
}

func (o *Options) Validate() error {
	if o.Depth < 1 {
		return fmt.Errorf("bad search depth %v", o.Depth)
	}
	if o.EndgameDepth < 1 {
		return fmt.Errorf("bad endgame depth %v", o.EndgameDepth)
	}
	return nil
}

// depthLoss is the number of plies a child at index in the ordered move list
// gives up. Later children are searched shallower.
func depthLoss(index, depth int) int {
	if index < 3 || depth < 2 {
		return 1
	}
	if index < 5 || depth < 3 {
		return 2
	}
	return 3
}
