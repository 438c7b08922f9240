package tui

import (
	"strings"
	"testing"
)

func TestToastPresentImmediatelyHiddenUntilShown(t *testing.T) {
	var m toastModel
	m, cmd := m.Push(toastSuccess, "status set to Applied")
	if cmd == nil {
		t.Fatal("Push should schedule show + expiry commands")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 immediately after Push", m.Len())
	}
	if strings.Contains(m.View(), "status set to Applied") {
		t.Error("toast rendered before its show transition")
	}

	m = m.Update(toastShownMsg{id: 0})
	if !strings.Contains(m.View(), "status set to Applied") {
		t.Error("toast not rendered after show transition")
	}
}

func TestToastRemovedOnExpiry(t *testing.T) {
	var m toastModel
	m, _ = m.Push(toastError, "update failed")
	m = m.Update(toastShownMsg{id: 0})
	m = m.Update(toastExpiredMsg{id: 0})
	if m.Len() != 0 {
		t.Errorf("Len() = %d after expiry, want 0", m.Len())
	}
	if m.View() != "" {
		t.Errorf("View() = %q after expiry, want empty", m.View())
	}
}

func TestToastStackInsertionOrder(t *testing.T) {
	var m toastModel
	m, _ = m.Push(toastSuccess, "first")
	m, _ = m.Push(toastInfo, "second")
	m = m.Update(toastShownMsg{id: 0})
	m = m.Update(toastShownMsg{id: 1})

	view := m.View()
	first := strings.Index(view, "first")
	second := strings.Index(view, "second")
	if first == -1 || second == -1 {
		t.Fatalf("both toasts should render, got %q", view)
	}
	if first > second {
		t.Error("toasts rendered out of insertion order")
	}
}

func TestToastExpiryOnlyRemovesItsOwn(t *testing.T) {
	var m toastModel
	m, _ = m.Push(toastSuccess, "first")
	m, _ = m.Push(toastError, "second")
	m = m.Update(toastExpiredMsg{id: 0})
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	if m.items[0].text != "second" {
		t.Errorf("remaining toast = %q, want second", m.items[0].text)
	}
}
