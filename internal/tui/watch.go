package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

type fileChangedMsg struct{ path string }

type watchErrMsg struct{ err error }

// watch follows the directory of path, so editors that replace the file
// on save are still seen.
func (m *Model) watch(path string) {
	if m.watcher == nil {
		return
	}
	dir := filepath.Dir(path)
	if dir == m.watched {
		return
	}
	if m.watched != "" {
		_ = m.watcher.Remove(m.watched)
		m.watched = ""
	}
	if err := m.watcher.Add(dir); err != nil {
		m.status = "watch error: " + err.Error()
		return
	}
	m.watched = dir
}

// waitForChange blocks until a file in the watched directory is written
// or created.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					return fileChangedMsg{path: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
