package supervise

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/garaekz/brld/internal/display"
)

type fakeDriver struct {
	mu         sync.Mutex
	openErr    map[string]error
	closeErr   error
	opened     []string
	closeCalls int
}

func (d *fakeDriver) Open(parameters map[string]string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	label := parameters["label"]
	d.opened = append(d.opened, label)
	return d.openErr[label]
}

func (d *fakeDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeCalls++
	return d.closeErr
}

func (d *fakeDriver) ReadCommand() (int, bool)                                         { return 0, false }
func (d *fakeDriver) WriteWindow(brl *display.BrailleDisplay, text []byte) error        { return nil }
func (d *fakeDriver) WriteStatus(brl *display.BrailleDisplay, cells []byte) error       { return nil }
func (d *fakeDriver) SetFirmness(level int) error                                       { return nil }

func TestRestartSucceedsOnSecondCandidate(t *testing.T) {
	drv := &fakeDriver{openErr: map[string]error{
		"usb":    fmt.Errorf("no device"),
		"serial": nil,
	}}
	brl := &display.BrailleDisplay{HasFailed: true}
	reloaded := false
	sup := New(drv, brl, func() error { reloaded = true; return nil })

	err := sup.Restart(context.Background(), []Candidate{
		{Label: "usb", Parameters: map[string]string{"label": "usb"}},
		{Label: "serial", Parameters: map[string]string{"label": "serial"}},
	})
	if err != nil {
		t.Fatalf("Restart() = %v, want nil", err)
	}
	if brl.HasFailed {
		t.Fatalf("HasFailed still set after successful restart")
	}
	if !reloaded {
		t.Fatalf("reload hook was not invoked")
	}
}

func TestRestartFailsWhenNoCandidateOpens(t *testing.T) {
	drv := &fakeDriver{openErr: map[string]error{
		"usb":    fmt.Errorf("no device"),
		"serial": fmt.Errorf("port busy"),
	}}
	brl := &display.BrailleDisplay{}
	sup := New(drv, brl, nil)

	err := sup.Restart(context.Background(), []Candidate{
		{Label: "usb", Parameters: map[string]string{"label": "usb"}},
		{Label: "serial", Parameters: map[string]string{"label": "serial"}},
	})
	if err == nil {
		t.Fatalf("Restart() = nil, want error")
	}
	if !brl.HasFailed {
		t.Fatalf("HasFailed should be set after a failed restart")
	}
}

func TestRestartNoCandidates(t *testing.T) {
	drv := &fakeDriver{}
	brl := &display.BrailleDisplay{}
	sup := New(drv, brl, nil)

	if err := sup.Restart(context.Background(), nil); err == nil {
		t.Fatalf("Restart() with no candidates = nil, want error")
	}
}

func TestRestartStepHook(t *testing.T) {
	drv := &fakeDriver{openErr: map[string]error{"only": nil}}
	brl := &display.BrailleDisplay{HasFailed: true}
	sup := New(drv, brl, nil)

	var steps []string
	sup.OnStep(func(label string, err error) {
		steps = append(steps, label)
	})

	if err := sup.Restart(context.Background(), []Candidate{
		{Label: "only", Parameters: map[string]string{"label": "only"}},
	}); err != nil {
		t.Fatalf("Restart() = %v, want nil", err)
	}

	want := []string{"close", "probe", "open"}
	if len(steps) < len(want) {
		t.Fatalf("steps = %v, want at least %v", steps, want)
	}
	for i, w := range want {
		if steps[i] != w {
			t.Fatalf("steps[%d] = %q, want %q", i, steps[i], w)
		}
	}
}
