package repl

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/calc/calc"
	"github.com/ardnew/calc/log"
)

func testModel(t *testing.T, lines ...HistoryEntry) model {
	t.Helper()

	h := NewHistory("")
	for _, e := range lines {
		if err := h.Write(e.Line, e.Mode); err != nil {
			t.Fatal(err)
		}
	}

	return newModel(context.Background(), h, log.Logger{}, calc.WithStepLimit(64))
}

func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd

	for _, msg := range msgs {
		var next tea.Model

		next, cmd = m.Update(msg)
		m = next.(model)
	}

	return m, cmd
}

func typed(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestModelPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"3+4x2", "= 11"},
		{"10/3", "= 3"},
		{"2^0.5", "= 1.4142135623730951"},
		{"5/0", "DivideByZero"},
		{"1+", "TrailingOperator"},
		{"q", "press Enter to exit"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			m, _ := send(t, testModel(t), typed(tt.input))

			if !strings.Contains(m.preview, tt.want) {
				t.Errorf("preview = %q, want %q", m.preview, tt.want)
			}

			if !strings.Contains(m.View(), tt.want) {
				t.Errorf("View() = %q, want %q", m.View(), tt.want)
			}
		})
	}
}

func TestModelEvaluate(t *testing.T) {
	t.Parallel()

	m, cmd := send(t, testModel(t), typed("(1+2)x3"), key(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("Enter returned no command")
	}

	if m.quitting {
		t.Error("model quit after evaluation")
	}

	if v := m.input.Value(); v != "" {
		t.Errorf("input = %q, want cleared", v)
	}

	if e, err := m.history.GetEntry(0); err != nil || e != (HistoryEntry{"(1+2)x3", modeEval}) {
		t.Errorf("history[0] = %v, %v", e, err)
	}

	if m.historyIdx != m.history.Len() {
		t.Errorf("historyIdx = %d, want %d", m.historyIdx, m.history.Len())
	}
}

func TestModelEvaluateError(t *testing.T) {
	t.Parallel()

	m, cmd := send(t, testModel(t), typed("1++2"), key(tea.KeyEnter))

	if cmd == nil || m.quitting {
		t.Errorf("error evaluation: cmd = %v, quitting = %v", cmd, m.quitting)
	}

	if m.history.Len() != 1 {
		t.Errorf("failed expression not recorded in history")
	}
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msgs []tea.Msg
		quit bool
	}{
		{"exit request", []tea.Msg{typed("q"), key(tea.KeyEnter)}, true},
		{"ctrl+c empty", []tea.Msg{key(tea.KeyCtrlC)}, true},
		{"ctrl+d empty", []tea.Msg{key(tea.KeyCtrlD)}, true},
		{"ctrl+c clears", []tea.Msg{typed("1+"), key(tea.KeyCtrlC)}, false},
		{"ctrl+d ignored", []tea.Msg{typed("1+"), key(tea.KeyCtrlD)}, false},
		{"quit command", []tea.Msg{key(tea.KeyEsc), typed("quit"), key(tea.KeyEnter)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := send(t, testModel(t), tt.msgs...)

			if m.quitting != tt.quit {
				t.Errorf("quitting = %v, want %v", m.quitting, tt.quit)
			}

			if tt.quit && m.View() != "" {
				t.Errorf("View() after quit = %q, want empty", m.View())
			}
		})
	}
}

func TestModelCtrlCClearsInput(t *testing.T) {
	t.Parallel()

	m, _ := send(t, testModel(t), typed("1+2"), key(tea.KeyCtrlC))

	if v := m.input.Value(); v != "" {
		t.Errorf("input = %q, want cleared", v)
	}
}

func TestModelToggleMode(t *testing.T) {
	t.Parallel()

	m, _ := send(t, testModel(t), typed("1+2"), key(tea.KeyEsc))

	if m.mode != modeCtrl || m.input.Value() != "" {
		t.Fatalf("after Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}

	m, _ = send(t, m, typed("he"), key(tea.KeyEsc))

	if m.mode != modeEval || m.input.Value() != "1+2" {
		t.Fatalf("after second Esc: mode = %v, input = %q", m.mode, m.input.Value())
	}

	m, _ = send(t, m, key(tea.KeyEsc))

	if m.input.Value() != "he" {
		t.Errorf("ctrl input = %q, want %q", m.input.Value(), "he")
	}
}

func TestModelTabCompletion(t *testing.T) {
	t.Parallel()

	m, _ := send(t, testModel(t), key(tea.KeyEsc), typed("hi"))

	if len(m.matches) != 1 {
		t.Fatalf("matches = %v, want one", m.matches)
	}

	m, _ = send(t, m, key(tea.KeyTab))

	if v := m.input.Value(); v != "history" {
		t.Errorf("after Tab: input = %q, want %q", v, "history")
	}

	m, _ = send(t, m, key(tea.KeyCtrlC), typed("h"))

	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want two", m.matches)
	}

	m, _ = send(t, m, key(tea.KeyTab), key(tea.KeyTab))

	if v := m.input.Value(); v != m.matches[1].Str || !m.tabActive {
		t.Errorf("after cycling: input = %q, tabActive = %v", v, m.tabActive)
	}

	m, _ = send(t, m, key(tea.KeyEsc))

	if v := m.input.Value(); v != "h" || m.tabActive {
		t.Errorf("after Esc: input = %q, tabActive = %v", v, m.tabActive)
	}
}

func TestModelHistoryNavigation(t *testing.T) {
	t.Parallel()

	m := testModel(t,
		HistoryEntry{"1+1", modeEval},
		HistoryEntry{"help", modeCtrl},
		HistoryEntry{"2x2", modeEval},
	)

	steps := []struct {
		key   tea.KeyType
		input string
		mode  inputMode
	}{
		{tea.KeyUp, "2x2", modeEval},
		{tea.KeyUp, "help", modeCtrl},
		{tea.KeyUp, "1+1", modeEval},
		{tea.KeyUp, "1+1", modeEval},
		{tea.KeyDown, "help", modeCtrl},
		{tea.KeyShiftDown, "", modeCtrl},
		{tea.KeyShiftUp, "help", modeCtrl},
		{tea.KeyDown, "2x2", modeEval},
		{tea.KeyDown, "", modeEval},
	}

	for i, s := range steps {
		m, _ = send(t, m, key(s.key))

		if m.input.Value() != s.input || m.mode != s.mode {
			t.Fatalf("step %d (%v): input = %q mode = %v, want %q mode %v",
				i, s.key, m.input.Value(), m.mode, s.input, s.mode)
		}
	}

	if m.historyIdx != m.history.Len() {
		t.Errorf("historyIdx = %d, want %d", m.historyIdx, m.history.Len())
	}
}

func TestModelListHistory(t *testing.T) {
	t.Parallel()

	m := testModel(t,
		HistoryEntry{"10/3", modeEval},
		HistoryEntry{"1+", modeEval},
		HistoryEntry{"help", modeCtrl},
	)

	out := m.listHistory("")

	if !strings.Contains(out, "10/3") || !strings.Contains(out, "= 3") {
		t.Errorf("listHistory() = %q", out)
	}

	if strings.Contains(out, "help") {
		t.Errorf("listHistory() includes commands: %q", out)
	}

	if out := m.listHistory("zzz"); !strings.Contains(out, "no matching history") {
		t.Errorf("listHistory(zzz) = %q", out)
	}
}

func TestModelInit(t *testing.T) {
	t.Parallel()

	if cmd := testModel(t).Init(); cmd == nil {
		t.Error("Init() returned no command")
	}

	if b := banner(); !strings.Contains(b, "calc") || !strings.Contains(b, "q to quit") {
		t.Errorf("banner() = %q", b)
	}
}
