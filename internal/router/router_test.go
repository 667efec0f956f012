package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/madboat/madboat/internal/screen"
)

type stubScreen struct {
	title string
	inits int
	got   []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPushPop(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)

	quiz := &stubScreen{title: "quiz"}
	r.Update(PushScreenMsg{Screen: quiz})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "quiz", r.Active().Title())
	assert.Equal(t, 1, quiz.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, "home", r.Active().Title())

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth(), "root is never popped")
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	result := &stubScreen{title: "result"}
	r.Update(ReplaceScreenMsg{Screen: result})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "result", r.View(80, 24))
	assert.Equal(t, 1, result.inits)
}

func TestPopToRoot(t *testing.T) {
	root := &stubScreen{title: "home"}
	r := New(root)
	r.Push(&stubScreen{title: "a"})
	r.Push(&stubScreen{title: "b"})

	r.Update(PopToRootMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, 1, root.inits, "root refreshes")
}

func TestForwardsToActive(t *testing.T) {
	root := &stubScreen{title: "home"}
	top := &stubScreen{title: "top"}
	r := New(root)
	r.Push(top)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Len(t, top.got, 1)
	assert.Empty(t, root.got)
}
