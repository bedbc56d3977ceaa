package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelProgressUpdates(t *testing.T) {
	var model tea.Model = NewModel([]string{"a.wav", "b.wav"})

	model, cmd := model.Update(FileStartMsg{FileIndex: 0, FileName: "a.wav"})
	if cmd != nil {
		t.Error("FileStartMsg should not schedule a command")
	}

	model, _ = model.Update(ProgressMsg{Percent: 40, Status: "Analyzing audio..."})
	m := model.(Model)
	if m.Files[0].Percent != 40 {
		t.Errorf("Percent = %d, want 40", m.Files[0].Percent)
	}
	if m.Files[0].StatusText != "Analyzing audio..." {
		t.Errorf("StatusText = %q", m.Files[0].StatusText)
	}

	// A stale lower percent must not move the bar backwards
	model, _ = model.Update(ProgressMsg{Percent: 10})
	if m := model.(Model); m.Files[0].Percent != 40 {
		t.Errorf("Percent = %d after stale update, want 40", m.Files[0].Percent)
	}
}

func TestModelFileCompletion(t *testing.T) {
	var model tea.Model = NewModel([]string{"a.wav", "b.wav"})

	model, _ = model.Update(FileStartMsg{FileIndex: 0, FileName: "a.wav"})
	model, _ = model.Update(FileCompleteMsg{
		FileIndex:      0,
		OutputPath:     "a_no_silence.wav",
		InputDuration:  120,
		OutputDuration: 90,
	})

	m := model.(Model)
	if m.Files[0].Status != StatusComplete {
		t.Errorf("Status = %v, want StatusComplete", m.Files[0].Status)
	}
	if m.CompletedFiles != 1 || m.FailedFiles != 0 {
		t.Errorf("CompletedFiles = %d, FailedFiles = %d", m.CompletedFiles, m.FailedFiles)
	}

	model, _ = model.Update(FileStartMsg{FileIndex: 1, FileName: "b.wav"})
	model, _ = model.Update(FileCompleteMsg{
		FileIndex: 1,
		Error:     errors.New("decode failed"),
	})

	m = model.(Model)
	if m.Files[1].Status != StatusError {
		t.Errorf("Status = %v, want StatusError", m.Files[1].Status)
	}
	if m.CompletedFiles != 1 || m.FailedFiles != 1 {
		t.Errorf("CompletedFiles = %d, FailedFiles = %d", m.CompletedFiles, m.FailedFiles)
	}
}

func TestModelQuitsOnAllComplete(t *testing.T) {
	var model tea.Model = NewModel([]string{"a.wav"})

	model, cmd := model.Update(AllCompleteMsg{})
	if !model.(Model).Done {
		t.Error("Done = false after AllCompleteMsg")
	}
	if cmd == nil {
		t.Fatal("AllCompleteMsg should schedule quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("scheduled command is not tea.Quit")
	}
}
