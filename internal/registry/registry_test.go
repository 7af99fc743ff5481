package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

type stubGame struct {
	id    string
	title string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", func() Game { return &stubGame{id: "stub-create", title: "Stub"} })

	if !Exists("stub-create") {
		t.Fatal("Exists() = false after Register")
	}

	a, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	b, _ := Create("stub-create")
	a.Step(core.NewInputFrame())
	if b.State().Score != 0 {
		t.Error("Create() should return independent instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if _, err := FactoryFor("no-such-game"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("FactoryFor() error = %v, expected ErrUnknownGame", err)
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-z", func() Game { return &stubGame{id: "stub-z", title: "Zed"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Ay"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("List() not sorted: %v", list)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Ay" {
				t.Errorf("title = %q, expected %q", info.Title, "Ay")
			}
		}
	}
	if !found {
		t.Error("List() missing stub-a")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "stub-dup", func() Game { return &stubGame{} }},
		{"empty id", "", func() Game { return &stubGame{} }},
		{"nil factory", "stub-nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tt.id, tt.f)
		})
	}
}
