package manicotti

import (
	"testing"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
)

func testButton() *Button {
	b := &Button{}
	b.SetButtonDef(&ButtonDef{ID: testButtonA, X: 0, Y: 0, W: 100, H: 100})
	b.SetCanonicalWindowHeight(600)
	b.SetVisible(true)
	b.SetActive(true)
	return b
}

func TestButton_TriggerLatchLastsOneFrame(t *testing.T) {
	b := testButton()
	frame := 16 * time.Millisecond

	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	if b.IsTriggered() {
		t.Error("press alone must not trigger")
	}

	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, released: true}, 800, 600)
	if !b.IsTriggered() {
		t.Error("release over the button must trigger")
	}

	b.AdvanceFrame(frame, &fakeInput{}, 800, 600)
	if b.IsTriggered() {
		t.Error("trigger latch must clear on the next advance")
	}
}

func TestButton_ReleaseOutsideDoesNotTrigger(t *testing.T) {
	b := testButton()
	frame := 16 * time.Millisecond

	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	// Drag off the button, then release.
	b.AdvanceFrame(frame, &fakeInput{x: 500, y: 500, down: true}, 800, 600)
	b.AdvanceFrame(frame, &fakeInput{x: 500, y: 500, released: true}, 800, 600)

	if b.IsTriggered() {
		t.Error("release off the button must not trigger")
	}
}

func TestButton_InvisibleDoesNotHitTest(t *testing.T) {
	b := testButton()
	b.SetVisible(false)
	frame := 16 * time.Millisecond

	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, released: true}, 800, 600)

	if b.IsTriggered() {
		t.Error("invisible button must not trigger")
	}
}

func TestButton_VisibleWhenOverridesVisible(t *testing.T) {
	b := testButton()
	b.SetVisible(false)

	toggle := atomic.NewBool(true)
	b.SetVisibleWhen(toggle)

	if !b.IsVisible() {
		t.Error("VisibleWhen(true) must override visible=false")
	}

	toggle.Store(false)
	if b.IsVisible() {
		t.Error("VisibleWhen(false) must override visible=true")
	}

	b.SetVisibleWhen(nil)
	if b.IsVisible() {
		t.Error("removing the override must restore the plain flag")
	}
}

func TestButton_ScreenRectScalesWithWindowHeight(t *testing.T) {
	b := &Button{}
	b.SetButtonDef(&ButtonDef{ID: testButtonA, X: 10, Y: 20, W: 100, H: 50})
	b.SetCanonicalWindowHeight(600)

	rect := b.ScreenRect(1600, 1200) // 2x canonical height
	if rect.X != 20 || rect.Y != 40 || rect.W != 200 || rect.H != 100 {
		t.Errorf("rect = %+v, want {20 40 200 100}", rect)
	}
}

func TestButton_CurrentMaterialPrefersPressed(t *testing.T) {
	b := testButton()
	up := &Material{Name: "up"}
	down := &Material{Name: "down"}
	b.SetUpMaterial(0, up)
	b.SetDownMaterial(down)

	if got := b.CurrentMaterial(); got != up {
		t.Errorf("unpressed material = %v, want up", got.Name)
	}

	b.AdvanceFrame(16*time.Millisecond, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	if got := b.CurrentMaterial(); got != down {
		t.Errorf("pressed material = %v, want down", got.Name)
	}
}

func TestButton_CurrentMaterialSkipsFailedSlots(t *testing.T) {
	b := testButton()
	resolved := &Material{Name: "second"}
	b.SetUpMaterial(0, nil) // failed resolution keeps its slot
	b.SetUpMaterial(1, resolved)

	if got := b.CurrentMaterial(); got != resolved {
		t.Errorf("material = %v, want first resolved slot", got)
	}
}

func TestButton_PressDepthAnimates(t *testing.T) {
	b := testButton()
	frame := 20 * time.Millisecond

	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)

	depth := b.PressDepth()
	if depth <= 0 || depth > 1 {
		t.Errorf("press depth = %v, want within (0, 1]", depth)
	}

	// Hold long enough to saturate.
	for i := 0; i < 20; i++ {
		b.AdvanceFrame(frame, &fakeInput{x: 50, y: 50, down: true}, 800, 600)
	}
	if got := b.PressDepth(); got != 1 {
		t.Errorf("saturated press depth = %v, want 1", got)
	}

	for i := 0; i < 20; i++ {
		b.AdvanceFrame(frame, &fakeInput{}, 800, 600)
	}
	if got := b.PressDepth(); got != 0 {
		t.Errorf("released press depth = %v, want 0", got)
	}
}

func TestButton_ZeroValueIDIsUndefined(t *testing.T) {
	var b Button
	if got := b.ID(); got != constants.ButtonIDUndefined {
		t.Errorf("zero-value button id = %v, want Undefined", got)
	}
}
