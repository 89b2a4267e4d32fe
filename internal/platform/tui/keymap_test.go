package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rafaelantao/tui-archery/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{runeKey('a'), core.ActionYawLeft, false},
		{runeKey('d'), core.ActionYawRight, false},
		{runeKey('w'), core.ActionPitchUp, false},
		{runeKey('s'), core.ActionPitchDown, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionYawLeft, false},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionPitchUp, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionCharge, false},
		{runeKey('r'), core.ActionReload, false},
		{runeKey('1'), core.ActionDiffEasy, false},
		{runeKey('2'), core.ActionDiffNormal, false},
		{runeKey('3'), core.ActionDiffHard, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('x'), core.ActionNone, false},
	}

	for _, tc := range tests {
		action, isQuit := km.MapKey(tc.msg)
		if action != tc.want || isQuit != tc.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tc.msg.String(), action, isQuit, tc.want, tc.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(runeKey('a'), &frame); quit {
		t.Error("'a' should not be a quit request")
	}
	if !frame.Has(core.ActionYawLeft) {
		t.Error("frame should record ActionYawLeft")
	}

	if quit := km.MapKeyToFrame(runeKey('q'), &frame); !quit {
		t.Error("'q' should be a quit request")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('w'), MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('h'), MenuActionLeft},
		{runeKey('l'), MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
