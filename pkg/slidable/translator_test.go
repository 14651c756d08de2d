package slidable_test

import (
	"math"
	"testing"
	"time"

	sderr "github.com/go-drift/slidable/pkg/errors"
	"github.com/go-drift/slidable/pkg/gestures"
	"github.com/go-drift/slidable/pkg/slidable"
	sltest "github.com/go-drift/slidable/pkg/testing"
)

const itemExtent = 200.0

// endPaneController returns a controller whose end pane occupies half the
// item, so a content displacement of -100px is a fully open ratio of 1.
func endPaneController(dismiss *slidable.DismissConfig) *slidable.Controller {
	return slidable.NewController(slidable.Config{
		EndPane: &slidable.ActionPane{
			Actions:      []slidable.Action{{}},
			ExtentFactor: 0.5,
			Dismiss:      dismiss,
		},
	})
}

func TestDragAccumulatesRatio(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-60, 100*time.Millisecond, 5)

	if got := c.Ratio(); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("ratio = %v, want 0.6 after -60px over a 100px pane", got)
	}
}

func TestDragEndPastDistanceThresholdOpens(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	// Released with a slow closing-direction velocity: distance still wins.
	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-60, 100*time.Millisecond, 5).
		End(400)

	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 1 {
		t.Errorf("ratio = %v, want fully open", c.Ratio())
	}
	if c.Status() != slidable.StatusOpen {
		t.Errorf("status = %v, want open", c.Status())
	}
}

func TestDragEndOpeningFlingOpens(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-30, 100*time.Millisecond, 5).
		End(-3000)

	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 1 {
		t.Errorf("ratio = %v, want fully open after an opening fling", c.Ratio())
	}
}

func TestDragEndBelowThresholdCloses(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-30, 100*time.Millisecond, 5).
		End(0)

	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want closed", c.Ratio())
	}
	if c.Status() != slidable.StatusClosed {
		t.Errorf("status = %v, want closed", c.Status())
	}
}

func TestDragEndClosingFlingCloses(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	// A fast fling toward closed never opens, regardless of magnitude.
	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-30, 100*time.Millisecond, 5).
		End(3000)

	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want closed after a closing fling", c.Ratio())
	}
}

func TestDragEndPastDismissThresholdDismisses(t *testing.T) {
	h := sltest.NewHarness(t)
	dismissed := 0
	c := endPaneController(&slidable.DismissConfig{
		Threshold:   0.75,
		OnDismissed: func() { dismissed++ },
	})
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-80, 100*time.Millisecond, 5).
		End(0)

	if !c.Dismissing() {
		t.Fatal("expected a dismissal past the threshold")
	}
	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if dismissed != 1 {
		t.Errorf("OnDismissed fired %d times, want 1", dismissed)
	}
}

func TestDragEndBelowDismissThresholdOpens(t *testing.T) {
	h := sltest.NewHarness(t)
	dismissed := 0
	c := endPaneController(&slidable.DismissConfig{
		Threshold:   0.75,
		OnDismissed: func() { dismissed++ },
	})
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-60, 100*time.Millisecond, 5).
		End(0)

	if c.Dismissing() {
		t.Fatal("dismissal triggered below the threshold")
	}
	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if dismissed != 0 {
		t.Errorf("OnDismissed fired %d times, want 0", dismissed)
	}
	if c.Ratio() != 1 {
		t.Errorf("ratio = %v, want open", c.Ratio())
	}
}

func TestDragTowardMissingPaneProducesNoChange(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	// Positive deltas push the content toward the end, revealing the start
	// pane, which is not configured.
	h.StartDrag(tr, gestures.Offset{X: 20}).
		MoveSteps(50, 100*time.Millisecond, 5)

	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want 0 when dragging toward a missing pane", c.Ratio())
	}
}

func TestDragAcrossZeroStopsAtMissingSide(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	d := h.StartDrag(tr, gestures.Offset{X: 180})
	d.MoveBy(-40, 16*time.Millisecond)
	if got := c.Ratio(); math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("ratio = %v, want 0.4", got)
	}
	d.MoveBy(100, 16*time.Millisecond)
	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want 0 after crossing into the missing side", c.Ratio())
	}
}

func TestDisabledTranslatorIgnoresDrags(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)
	tr.SetEnabled(false)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-80, 100*time.Millisecond, 5).
		End(0)

	if tr.Dragging() {
		t.Error("disabled translator reported an active drag")
	}
	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want 0 while disabled", c.Ratio())
	}
}

func TestDragIgnoredWhileDismissing(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(&slidable.DismissConfig{})
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	c.SetRatio(0.8)
	c.Dismiss(nil)

	h.StartDrag(tr, gestures.Offset{X: 100})
	if tr.Dragging() {
		t.Error("drag accepted while a dismissal is committed")
	}
	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
}

func TestDragUpdateAfterDismissCommitIsDropped(t *testing.T) {
	h := sltest.NewHarness(t)
	dismissed := 0
	c := endPaneController(&slidable.DismissConfig{OnDismissed: func() { dismissed++ }})
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	d := h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-80, 100*time.Millisecond, 5)
	c.Dismiss(nil)

	// The pointer is still down; its stray updates and release must not
	// cancel the committed dismissal.
	d.MoveBy(-5, 16*time.Millisecond)
	d.MoveBy(12, 16*time.Millisecond)
	d.End(0)

	if tr.Dragging() {
		t.Error("expected the drag to be dropped once the dismissal committed")
	}
	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if dismissed != 1 {
		t.Errorf("OnDismissed fired %d times, want exactly 1", dismissed)
	}
	if !c.ResizeRequested() {
		t.Error("the resize phase never began")
	}
	if c.Status() != slidable.StatusDismissed {
		t.Errorf("status = %v, want dismissed", c.Status())
	}
}

func TestDragUpdateWhileClosingIsDropped(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	d := h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-60, 100*time.Millisecond, 5)
	c.Close(true) // a programmatic close grabs the item mid-drag

	d.MoveBy(-20, 16*time.Millisecond)
	d.End(-3000)

	if tr.Dragging() {
		t.Error("expected the drag to be dropped once the close began")
	}
	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 0 {
		t.Errorf("ratio = %v, want 0; the dropped drag must not reopen the item", c.Ratio())
	}
	if c.Status() != slidable.StatusClosed {
		t.Errorf("status = %v, want closed", c.Status())
	}
}

func TestSecondDragStartIsReportedAndAccepted(t *testing.T) {
	h := sltest.NewHarness(t)
	rec := &recordingHandler{}
	sderr.SetHandler(rec)
	t.Cleanup(func() { sderr.SetHandler(nil) })

	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	h.StartDrag(tr, gestures.Offset{X: 180})
	h.StartDrag(tr, gestures.Offset{X: 170}) // the host skipped a drag-end

	if len(rec.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(rec.errs))
	}
	if rec.errs[0].Kind != sderr.KindGesture {
		t.Errorf("error kind = %v, want gesture", rec.errs[0].Kind)
	}
	if !tr.Dragging() {
		t.Error("the restarted drag should still be accepted")
	}
}

func TestNewTranslatorRejectsDisposedController(t *testing.T) {
	c := endPaneController(nil)
	c.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a lifecycle panic")
		}
		err, ok := r.(*sderr.SlidableError)
		if !ok || err.Kind != sderr.KindLifecycle {
			t.Fatalf("panic = %v, want a lifecycle error", r)
		}
	}()
	slidable.NewTranslator(c, itemExtent)
}

type recordingHandler struct {
	errs []*sderr.SlidableError
}

func (h *recordingHandler) HandleError(err *sderr.SlidableError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*sderr.PanicError)        {}

func TestDragGrabsInFlightAnimation(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)

	c.Open(slidable.DirectionEnd, true)
	h.PumpFrames(3)
	grabbed := c.Ratio()
	if grabbed <= 0 || grabbed >= 1 {
		t.Fatalf("expected an in-flight ratio, got %v", grabbed)
	}

	h.StartDrag(tr, gestures.Offset{X: 100})
	h.PumpFrames(5)
	if c.Ratio() != grabbed {
		t.Errorf("ratio kept animating after the drag grabbed it: %v -> %v", grabbed, c.Ratio())
	}
}

func TestSetOpenThresholdChangesDecision(t *testing.T) {
	h := sltest.NewHarness(t)
	c := endPaneController(nil)
	defer c.Dispose()
	tr := slidable.NewTranslator(c, itemExtent)
	tr.SetOpenThreshold(0.4)

	h.StartDrag(tr, gestures.Offset{X: 180}).
		MoveSteps(-45, 100*time.Millisecond, 5).
		End(0)

	if err := h.Settle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if c.Ratio() != 1 {
		t.Errorf("ratio = %v, want open with a 0.4 threshold at 0.45", c.Ratio())
	}
}
