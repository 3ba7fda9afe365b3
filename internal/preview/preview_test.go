package preview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim
}

// screenLine reads one visible row from the simulation screen.
func screenLine(t *testing.T, sim tcell.SimulationScreen, row int) string {
	t.Helper()
	cells, width, height := sim.GetContents()
	if row >= height {
		t.Fatalf("row %d out of range (screen height %d)", row, height)
	}
	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[row*width+x]
		if len(cell.Runes) > 0 {
			sb.WriteString(string(cell.Runes))
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func numberedLines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "line%02d\n", i)
	}
	return sb.String()
}

func TestNewNormalizesLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"crlf", "a\r\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline dropped", "a\n", []string{"a"}},
		{"empty text", "", []string{""}},
		{"tab expanded", "x\ty", []string{"x   y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New("t", tt.text)
			if diff := cmp.Diff(tt.want, m.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\tx", "    x"},
		{"ab\tc", "ab  c"},
		{"no tabs", "no tabs"},
	}

	for _, tt := range tests {
		if got := expandTabs(tt.in, 4); got != tt.want {
			t.Errorf("expandTabs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDrawShowsTitleAndContent(t *testing.T) {
	sim := newSimScreen(t, 40, 10)
	m := New("result: demo.txt", "alpha\nbeta\ngamma")

	draw(sim, m)

	if got := screenLine(t, sim, 0); got != "result: demo.txt" {
		t.Errorf("title row = %q", got)
	}
	for i, want := range []string{"alpha", "beta", "gamma"} {
		if got := screenLine(t, sim, i+1); got != want {
			t.Errorf("content row %d = %q, want %q", i+1, got, want)
		}
	}
	if got := screenLine(t, sim, 9); !strings.Contains(got, "1-3/3") {
		t.Errorf("status row = %q, want scroll position 1-3/3", got)
	}
}

func TestDrawScrollsToOffset(t *testing.T) {
	sim := newSimScreen(t, 40, 10)
	m := New("scroll", numberedLines(30))
	m.offset = 5

	draw(sim, m)

	if got := screenLine(t, sim, 1); got != "line05" {
		t.Errorf("first content row = %q, want %q", got, "line05")
	}
	if got := screenLine(t, sim, 9); !strings.Contains(got, "6-13/30") {
		t.Errorf("status row = %q, want scroll position 6-13/30", got)
	}
}

func TestDrawClampsOffset(t *testing.T) {
	sim := newSimScreen(t, 40, 10)
	m := New("clamp", numberedLines(30))
	m.offset = 999

	draw(sim, m)

	// 30 lines with 8 visible rows leaves a maximum offset of 22.
	if m.offset != 22 {
		t.Errorf("offset = %d, want 22", m.offset)
	}
	if got := screenLine(t, sim, 1); got != "line22" {
		t.Errorf("first content row = %q, want %q", got, "line22")
	}
}

func TestRunQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := newSimScreen(t, 40, 10)
			m := New("quit", "some text")

			done := make(chan error, 1)
			go func() {
				done <- Run(sim, m)
			}()

			sim.InjectKey(tt.key, tt.ch, tcell.ModNone)

			select {
			case err := <-done:
				if err != nil {
					t.Errorf("Run() error = %v", err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("Run() did not exit")
			}
		})
	}
}

func TestRunScrollKeys(t *testing.T) {
	sim := newSimScreen(t, 80, 10)
	m := New("scroll", numberedLines(30))

	done := make(chan error, 1)
	go func() {
		done <- Run(sim, m)
	}()

	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEnd, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not exit")
	}

	// End jumps past the last line and clamps to 30-8.
	if m.offset != 22 {
		t.Errorf("offset after scrolling = %d, want 22", m.offset)
	}
}
