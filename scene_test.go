package sortable

import "testing"

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" || s.root.Tag != "body" {
		t.Errorf("root = %q <%s>, want root <body>", s.root.Name, s.root.Tag)
	}
	if s.Viewport() == nil || s.Viewport().ScrollStep != 40 {
		t.Error("viewport should be created with the default scroll step")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene()
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene()
	s.SetEntityStore(nil)
	s.emit(InteractionEvent{Type: EventPointerDown})
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneSetLogger(t *testing.T) {
	s := NewScene()
	l := quietLogger
	s.SetLogger(l)
	if s.Logger() != l {
		t.Error("Logger() should return the configured logger")
	}
	s.SetLogger(nil)
	if s.Logger() != defaultLogger {
		t.Error("nil logger should restore the default")
	}
}

func TestAdvanceOrder(t *testing.T) {
	s, _, items := newListScene(t, 2)
	items[1].Transition = 0.1
	items[1].SetTranslateY(10)

	var seen float64
	s.OnUpdate(func(float32) { seen = items[1].TranslateY })
	s.Advance(0.2)
	if seen != 10 {
		t.Errorf("update hook saw TranslateY %v, want transitions advanced first", seen)
	}
}
