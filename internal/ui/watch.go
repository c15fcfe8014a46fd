package ui

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

func (m *Model) startWatching(dirs []string) tea.Cmd {
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}
	for _, dir := range dirs {
		m.watchDir(dir)
	}
	return m.waitForFileEvent()
}

func (m *Model) watchDir(dir string) {
	dir = filepath.Clean(dir)
	if m.watched[dir] {
		return
	}
	if err := m.watcher.Add(dir); err != nil {
		m.err = err
		return
	}
	m.watched[dir] = true
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watched = make(map[string]bool)
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop(watcher, m.watchChan)
	return nil
}

// Close stops the file watcher.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}

func (m *Model) watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			out <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			out <- fileWatchErrMsg{err: err}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.affects != nil && !m.affects(msg.path) {
		return m.waitForFileEvent()
	}
	if msg.op&fsnotify.Create != 0 && m.watcher != nil {
		if info, err := os.Stat(msg.path); err == nil && info.IsDir() {
			m.watchDir(msg.path)
		}
	}
	m.reloadEvents()
	return m.waitForFileEvent()
}

// reloadEvents keeps the previous events when the source cannot be read.
func (m *Model) reloadEvents() {
	if m.reload == nil {
		return
	}
	tl, err := m.reload()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.replaceTimeline(tl)
}
