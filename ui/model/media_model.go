package model

import (
	"path/filepath"

	"github.com/soocke/frametrack/domain/capture"
)

const maxRecent = 8

// MediaModel remembers the open media path and recently opened files.
// Updates occur on the UI thread; no synchronization needed.
type MediaModel struct {
	path   string
	dir    string
	recent []string
}

func NewMediaModel(lastDir string) *MediaModel { return &MediaModel{dir: lastDir} }

// SetPath records path as the open media. Empty clears it. Screen paths
// leave the directory untouched.
func (m *MediaModel) SetPath(path string) {
	if m == nil {
		return
	}
	m.path = path
	if path == "" {
		return
	}
	if !capture.IsScreenPath(path) {
		m.dir = filepath.Dir(path)
	}
	for i, p := range m.recent {
		if p == path {
			m.recent = append(m.recent[:i], m.recent[i+1:]...)
			break
		}
	}
	m.recent = append([]string{path}, m.recent...)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[:maxRecent]
	}
}

// Path is the open media, or "" when none.
func (m *MediaModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Name is the base name of the open media.
func (m *MediaModel) Name() string {
	if m == nil || m.path == "" {
		return ""
	}
	return filepath.Base(m.path)
}

// Dir is the directory of the last opened file.
func (m *MediaModel) Dir() string {
	if m == nil {
		return ""
	}
	return m.dir
}

// Recent returns recently opened paths, newest first.
func (m *MediaModel) Recent() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.recent...)
}
