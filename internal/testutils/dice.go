package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that returns queued results in order and
// repeats the last one once the queue is exhausted. Results larger than the
// die size are clamped to it.
type ScriptedRoller struct {
	results []int
	next    int
	Calls   int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns results in order
func NewScriptedRoller(results ...int) *ScriptedRoller {
	if len(results) == 0 {
		results = []int{1}
	}
	return &ScriptedRoller{results: results}
}

// MaxRoller returns a roller that always rolls the highest face
func MaxRoller() *ScriptedRoller {
	return NewScriptedRoller(1 << 30)
}

// Roll returns the next scripted result
func (r *ScriptedRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("invalid die size %d", size)
	}
	r.Calls++
	v := r.results[min(r.next, len(r.results)-1)]
	r.next++
	return max(1, min(v, size)), nil
}

// RollN returns count scripted results
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
