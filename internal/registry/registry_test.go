package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Attach(core.Services) {}
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_test_b", func() Game { return &stubGame{id: "zz_test_b"} })
	Register("zz_test_a", func() Game { return &stubGame{id: "zz_test_a"} })

	if !Exists("zz_test_a") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_test_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_test_a" || ids[1] != "zz_test_b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
