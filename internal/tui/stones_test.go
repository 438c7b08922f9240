package tui

import (
	"strings"
	"testing"

	"github.com/kshetty/huntboard/pkg/domain"
)

func newTestStonesModel() stonesModel {
	m := newStonesModel(nil)
	m.loading = false
	m.width = 80
	m.height = 30
	return m
}

func makeTestStone(number int, title string, minutes int) domain.Stone {
	return domain.Stone{
		StoneNumber:      number,
		StoneTitle:       title,
		TimeSpentMinutes: minutes,
		WhatBuilt:        "something real",
		Date:             "2026-08-27",
	}
}

func TestStonesRendersLog(t *testing.T) {
	m := newTestStonesModel()
	m, _ = m.Update(sacredProgressLoadedMsg{stones: []domain.Stone{
		makeTestStone(2, "resync layer", 90),
		makeTestStone(1, "api client", 120),
	}})

	view := m.View()
	for _, want := range []string{"resync layer", "api client", "#2", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in stones view, got:\n%s", want, view)
		}
	}
}

func TestStonesEmptyLog(t *testing.T) {
	m := newTestStonesModel()
	m, _ = m.Update(sacredProgressLoadedMsg{stones: nil})

	if !strings.Contains(m.View(), "no stones placed yet") {
		t.Error("expected empty-log notice")
	}
}

func TestStonesFormSuggestsNextNumber(t *testing.T) {
	m := newTestStonesModel()
	m, _ = m.Update(sacredProgressLoadedMsg{stones: []domain.Stone{
		makeTestStone(3, "third", 30),
		makeTestStone(1, "first", 30),
	}})

	m, _ = m.Update(keyMsg("n"))
	if !m.adding {
		t.Fatal("expected form open after 'n'")
	}
	if got := m.fields[stoneFieldNumber]; got != "4" {
		t.Errorf("expected suggested stone number 4, got %q", got)
	}
}

func TestStonesSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*stonesModel)
		wantMsg string
	}{
		{
			name:    "missing number",
			mutate:  func(m *stonesModel) { m.fields[stoneFieldNumber] = "" },
			wantMsg: "stone number is required",
		},
		{
			name:    "missing title",
			mutate:  func(m *stonesModel) { m.fields[stoneFieldTitle] = "  " },
			wantMsg: "title is required",
		},
		{
			name:    "missing minutes",
			mutate:  func(m *stonesModel) { m.fields[stoneFieldMinutes] = "0" },
			wantMsg: "minutes is required",
		},
		{
			name:    "missing built",
			mutate:  func(m *stonesModel) { m.fields[stoneFieldBuilt] = "" },
			wantMsg: "built is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestStonesModel()
			m.adding = true
			m.fields[stoneFieldNumber] = "5"
			m.fields[stoneFieldTitle] = "worker pool"
			m.fields[stoneFieldMinutes] = "45"
			m.fields[stoneFieldBuilt] = "the pool"
			tc.mutate(&m)

			m, cmd := m.submit()
			if cmd != nil {
				t.Fatal("expected invalid form to stay off the wire")
			}
			if m.statusMsg != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, m.statusMsg)
			}
		})
	}
}

func TestStonesValidSubmitProducesCommand(t *testing.T) {
	m := newTestStonesModel()
	m.adding = true
	m.fields[stoneFieldNumber] = "5"
	m.fields[stoneFieldTitle] = "worker pool"
	m.fields[stoneFieldMinutes] = "45"
	m.fields[stoneFieldBuilt] = "the pool"

	_, cmd := m.submit()
	if cmd == nil {
		t.Fatal("expected a mutation command for a valid stone")
	}
}

func TestStonesDigitFieldsRejectLetters(t *testing.T) {
	m := newTestStonesModel()
	m.adding = true
	m.focus = stoneFieldMinutes

	m, _ = m.updateForm(keyMsg("a"))
	m, _ = m.updateForm(keyMsg("4"))
	m, _ = m.updateForm(keyMsg("5"))
	if got := m.fields[stoneFieldMinutes]; got != "45" {
		t.Errorf("expected minutes %q, got %q", "45", got)
	}
}

func TestStonesEscCancelsForm(t *testing.T) {
	m := newTestStonesModel()
	m.adding = true
	m, _ = m.updateForm(keyMsg("esc"))
	if m.adding {
		t.Error("expected esc to close the form")
	}
}

func TestStonesStatsStrip(t *testing.T) {
	m := newTestStonesModel()
	m, _ = m.Update(sacredStatsLoadedMsg{stats: &domain.SacredWorkStats{
		TotalStones:        12,
		TotalMinutes:       1530,
		AvgMinutesPerStone: 127.5,
	}})
	m, _ = m.Update(sacredProgressLoadedMsg{stones: []domain.Stone{makeTestStone(1, "first", 30)}})

	view := m.View()
	if !strings.Contains(view, "1,530") {
		t.Errorf("expected comma-grouped minutes in stats strip, got:\n%s", view)
	}
	if !strings.Contains(view, "12") {
		t.Errorf("expected stone count in stats strip, got:\n%s", view)
	}
}
