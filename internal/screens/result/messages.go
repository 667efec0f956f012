package result

import (
	tea "charm.land/bubbletea/v2"

	"github.com/madboat/madboat/internal/refine"
)

// OpinionMsg carries an LLM second opinion back into the UI loop.
type OpinionMsg struct {
	Opinion *refine.Opinion
}

// WaitOpinion blocks on ch and delivers the first opinion. Whichever screen
// is active when it arrives receives the message.
func WaitOpinion(ch <-chan *refine.Opinion) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		op, ok := <-ch
		if !ok {
			return nil
		}
		return OpinionMsg{Opinion: op}
	}
}
