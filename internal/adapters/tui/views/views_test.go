package views

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// exec runs cmd and returns its message, or nil
func exec(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestMenu_SelectsHighlightedOperation(t *testing.T) {
	m := NewMenuModel("wem_mapping.json")

	m.Update(keyDown)
	m.Update(runes("j"))
	_, cmd := m.Update(keyEnter)

	msg, ok := exec(cmd).(SelectOperationMsg)
	if !ok {
		t.Fatalf("expected SelectOperationMsg, got %T", exec(cmd))
	}
	if msg.Op != OpObfuscate {
		t.Errorf("Op = %v, want %v", msg.Op.Title(), OpObfuscate.Title())
	}
}

func TestMenu_CursorStaysInRange(t *testing.T) {
	m := NewMenuModel("")
	m.Update(runes("k"))
	if m.Selected() != MenuOrder[0] {
		t.Errorf("cursor moved above the first item")
	}
	for range MenuOrder {
		m.Update(keyDown)
	}
	if m.Selected() != MenuOrder[len(MenuOrder)-1] {
		t.Errorf("cursor moved past the last item")
	}
}

func TestForm_RequiresEveryField(t *testing.T) {
	m := NewFormModel()
	m.SetOperation(OpUnobfuscate)
	m.form.Fields[0].Input.SetValue("Content/Media")

	_, cmd := m.Update(keyEnter)
	if cmd != nil {
		t.Fatalf("expected no command, got %T", exec(cmd))
	}
	if !m.MessageErr || m.Message != "Output directory is required" {
		t.Errorf("Message = %q (err=%v)", m.Message, m.MessageErr)
	}
	if m.form.Focused != 1 {
		t.Errorf("Focused = %d, want 1", m.form.Focused)
	}
}

func TestForm_SubmitRemembersValues(t *testing.T) {
	m := NewFormModel()
	m.SetOperation(OpOrganizeDialogue)
	m.form.Fields[0].Input.SetValue(" Exports/Dialogue ")
	m.Update(keyTab)
	m.form.Fields[1].Input.SetValue("Dialogue")

	_, cmd := m.Update(keyEnter)
	msg, ok := exec(cmd).(StartRunMsg)
	if !ok {
		t.Fatalf("expected StartRunMsg, got %T", exec(cmd))
	}
	if msg.Op != OpOrganizeDialogue || msg.Values[0] != "Exports/Dialogue" || msg.Values[1] != "Dialogue" {
		t.Errorf("unexpected run request: %+v", msg)
	}

	m.SetOperation(OpScan)
	m.SetOperation(OpOrganizeDialogue)
	if got := m.form.Values(); got[0] != "Exports/Dialogue" {
		t.Errorf("form not prefilled, got %v", got)
	}
}

func TestForm_EscReturnsToMenu(t *testing.T) {
	m := NewFormModel()
	m.SetOperation(OpScan)

	_, cmd := m.Update(keyEsc)
	if _, ok := exec(cmd).(SwitchToMenuMsg); !ok {
		t.Errorf("expected SwitchToMenuMsg, got %T", exec(cmd))
	}
}

func TestRun_CollectsLogAndSummary(t *testing.T) {
	m := NewRunModel()
	m.Start(OpUnobfuscate)

	m.Update(LogLinesMsg{Lines: []string{"relocation started", "WARN source file missing"}})
	m.Update(LogLinesMsg{Lines: []string{"relocation complete"}})
	if got := len(m.Lines()); got != 3 {
		t.Fatalf("Lines() = %d, want 3", got)
	}

	_, cmd := m.Update(keyEsc)
	if _, ok := exec(cmd).(CancelRunMsg); !ok {
		t.Errorf("esc while running should cancel, got %T", exec(cmd))
	}

	m.Update(RunFinishedMsg{Op: OpUnobfuscate, Message: "unobfuscate: 9/10 files copied, 1 failed", ErrorLog: "/out/unobfuscate_errors.log"})
	if m.Running() {
		t.Fatal("still running after RunFinishedMsg")
	}
	if m.Message != "unobfuscate: 9/10 files copied, 1 failed" || m.MessageErr {
		t.Errorf("Message = %q (err=%v)", m.Message, m.MessageErr)
	}

	_, cmd = m.Update(runes("e"))
	open, ok := exec(cmd).(OpenEditorMsg)
	if !ok || open.Path != "/out/unobfuscate_errors.log" {
		t.Errorf("expected OpenEditorMsg for the error log, got %#v", exec(cmd))
	}

	_, cmd = m.Update(keyEsc)
	if _, ok := exec(cmd).(SwitchToMenuMsg); !ok {
		t.Errorf("esc after finishing should go back, got %T", exec(cmd))
	}
}

func TestRun_ErrorResult(t *testing.T) {
	m := NewRunModel()
	m.Start(OpScan)
	m.Update(RunFinishedMsg{Op: OpScan, Err: errors.New("root Exports: does not exist")})

	if !m.MessageErr {
		t.Error("expected an error message")
	}
	_, cmd := m.Update(runes("e"))
	if cmd != nil {
		t.Errorf("no error log to open, got %T", exec(cmd))
	}
}

func TestRun_LogIsBounded(t *testing.T) {
	m := NewRunModel()
	m.Start(OpObfuscate)

	lines := make([]string, maxLogLines+50)
	for i := range lines {
		lines[i] = "copied"
	}
	lines[len(lines)-1] = "last"
	m.Update(LogLinesMsg{Lines: lines})

	got := m.Lines()
	if len(got) != maxLogLines || got[len(got)-1] != "last" {
		t.Errorf("expected the newest %d lines, got %d ending in %q", maxLogLines, len(got), got[len(got)-1])
	}
}

func TestPaginator(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(25)

	for i := 0; i < 12; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 12 || p.CurrentPage() != 2 {
		t.Errorf("cursor %d page %d, want 12 and 2", p.Cursor(), p.CurrentPage())
	}
	if start, end := p.VisibleRange(); start != 10 || end != 20 {
		t.Errorf("VisibleRange() = %d, %d", start, end)
	}

	p.NextPage()
	if start, end := p.VisibleRange(); start != 20 || end != 25 {
		t.Errorf("VisibleRange() = %d, %d on the last page", start, end)
	}
	if p.NextPage() {
		t.Error("NextPage() moved past the last page")
	}
	if p.TotalPages() != 3 {
		t.Errorf("TotalPages() = %d", p.TotalPages())
	}

	p.SetTotal(3)
	if p.Cursor() != 2 {
		t.Errorf("cursor not clamped, got %d", p.Cursor())
	}
}
