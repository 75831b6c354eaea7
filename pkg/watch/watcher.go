// Package watch discovers input files arriving in session watch directories.
//
// Each watched session runs one goroutine combining fsnotify change events
// with a periodic rescan (fsnotify alone is unreliable on NFS, where most
// microscope deposits land). Newly seen files are held as candidates until
// their size stops changing, then accumulated behind a debounce timer so a
// burst of deposits produces a single files-added event.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cryoflow/cryoflow/pkg/config"
	"github.com/cryoflow/cryoflow/pkg/models"
)

// EventType discriminates watcher emissions.
type EventType string

// Watcher event types.
const (
	FilesAdded EventType = "files-added"
	NoFiles    EventType = "no-files"
)

// Event is one watcher emission. Count is the cumulative size of the
// session's known set at emission time, not the batch size.
type Event struct {
	SessionID string
	Type      EventType
	Directory string
	Files     []string
	Count     int
}

// StartParams configures watching for one session.
type StartParams struct {
	SessionID string
	Directory string
	Pattern   string // extension-style glob, e.g. "*.tiff"
	InputMode models.InputMode
}

// Service watches directories for all live sessions and emits events on a
// single shared channel consumed by the orchestrator.
type Service struct {
	cfg    *config.WatcherConfig
	events chan Event

	mu       sync.Mutex
	sessions map[string]*watchSession
}

type watchSession struct {
	params StartParams
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	known map[string]struct{}
}

type candidate struct {
	size        int64
	stableSince time.Time
}

// NewService creates a watcher service.
func NewService(cfg *config.WatcherConfig) *Service {
	return &Service{
		cfg:      cfg,
		events:   make(chan Event, 64),
		sessions: make(map[string]*watchSession),
	}
}

// Events returns the shared emission channel.
func (s *Service) Events() <-chan Event {
	return s.events
}

// Active reports whether the session currently has a live watch goroutine.
func (s *Service) Active(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.sessions[sessionID]
	if !ok {
		return false
	}
	select {
	case <-ws.done:
		return false
	default:
		return true
	}
}

// FileCount returns the cumulative known-set size for a session. The
// orchestrator uses it to raise movies_found with MAX semantics.
func (s *Service) FileCount(sessionID string) int {
	s.mu.Lock()
	ws, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.known)
}

// Start begins watching for a session. The directory must exist. Starting a
// session that is already watched is an error; callers stop first.
func (s *Service) Start(ctx context.Context, p StartParams) error {
	info, err := os.Stat(p.Directory)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch path %s is not a directory", p.Directory)
	}

	s.mu.Lock()
	known := make(map[string]struct{})
	if prev, ok := s.sessions[p.SessionID]; ok {
		select {
		case <-prev.done:
			// Previous goroutine exited (existing-mode scan finished);
			// replace the entry but keep the known set.
			prev.mu.Lock()
			for path := range prev.known {
				known[path] = struct{}{}
			}
			prev.mu.Unlock()
		default:
			s.mu.Unlock()
			return fmt.Errorf("session %s is already being watched", p.SessionID)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	ws := &watchSession{
		params: p,
		cancel: cancel,
		done:   make(chan struct{}),
		known:  known,
	}
	s.sessions[p.SessionID] = ws
	s.mu.Unlock()

	go s.run(runCtx, ws)
	return nil
}

// Stop cancels the session's watch goroutine and releases its state.
func (s *Service) Stop(sessionID string) {
	s.mu.Lock()
	ws, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	ws.cancel()
	<-ws.done
}

// StopAll stops every watched session. Used during shutdown.
func (s *Service) StopAll() {
	s.mu.Lock()
	all := make([]*watchSession, 0, len(s.sessions))
	for _, ws := range s.sessions {
		all = append(all, ws)
	}
	s.sessions = make(map[string]*watchSession)
	s.mu.Unlock()

	for _, ws := range all {
		ws.cancel()
		<-ws.done
	}
}

// run is the per-session watch loop.
func (s *Service) run(ctx context.Context, ws *watchSession) {
	defer close(ws.done)

	p := ws.params
	log := slog.With("session_id", p.SessionID, "directory", p.Directory)

	stableFor, stablePoll := s.cfg.WatchStableFor, s.cfg.WatchStablePoll
	debounce := s.cfg.WatchDebounce
	if p.InputMode == models.InputModeExisting {
		stableFor, stablePoll = s.cfg.ExistingStableFor, s.cfg.ExistingStablePoll
		debounce = s.cfg.ExistingDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("Failed to create filesystem watcher", "error", err)
		return
	}
	defer fsw.Close()

	if err := fsw.Add(p.Directory); err != nil {
		log.Error("Failed to watch directory", "error", err)
		return
	}
	// One level deep: also watch existing subdirectories.
	if entries, err := os.ReadDir(p.Directory); err == nil {
		for _, e := range entries {
			if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
				_ = fsw.Add(filepath.Join(p.Directory, e.Name()))
			}
		}
	}

	candidates := make(map[string]candidate)
	pending := make(map[string]struct{})

	s.scan(ws, candidates)

	// Existing mode with an empty directory: exactly one no-files, then done.
	if p.InputMode == models.InputModeExisting && len(candidates) == 0 {
		log.Info("Existing-mode scan found no matching files")
		s.emit(ctx, Event{
			SessionID: p.SessionID,
			Type:      NoFiles,
			Directory: p.Directory,
		})
		return
	}

	pollTicker := time.NewTicker(stablePoll)
	defer pollTicker.Stop()
	rescanTicker := time.NewTicker(s.cfg.RescanInterval)
	defer rescanTicker.Stop()

	// Debounce timer, armed on the first promotion.
	debounceTimer := time.NewTimer(debounce)
	if !debounceTimer.Stop() {
		<-debounceTimer.C
	}
	defer debounceTimer.Stop()
	debounceArmed := false

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			base := filepath.Base(ev.Name)
			if strings.HasPrefix(base, ".") {
				continue
			}
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				if filepath.Dir(ev.Name) == p.Directory {
					_ = fsw.Add(ev.Name)
				}
				continue
			}
			if matchesPattern(base, p.Pattern) && !ws.isKnown(ev.Name) {
				if _, tracked := candidates[ev.Name]; !tracked {
					candidates[ev.Name] = candidate{size: -1, stableSince: time.Now()}
				}
			}

		case <-rescanTicker.C:
			s.scan(ws, candidates)

		case <-pollTicker.C:
			now := time.Now()
			for path, c := range candidates {
				info, err := os.Stat(path)
				if err != nil {
					delete(candidates, path)
					continue
				}
				if info.Size() != c.size {
					candidates[path] = candidate{size: info.Size(), stableSince: now}
					continue
				}
				if now.Sub(c.stableSince) >= stableFor {
					delete(candidates, path)
					ws.addKnown(path)
					pending[path] = struct{}{}
					// Restart the debounce window after every addition so a
					// burst coalesces into one emission.
					if debounceArmed && !debounceTimer.Stop() {
						select {
						case <-debounceTimer.C:
						default:
						}
					}
					debounceTimer.Reset(debounce)
					debounceArmed = true
				}
			}

		case <-debounceTimer.C:
			debounceArmed = false
			if len(pending) == 0 {
				continue
			}
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			sort.Strings(files)
			pending = make(map[string]struct{})

			s.emit(ctx, Event{
				SessionID: p.SessionID,
				Type:      FilesAdded,
				Directory: p.Directory,
				Files:     files,
				Count:     s.FileCount(p.SessionID),
			})

			// Existing mode is one-shot: emit the snapshot and stop watching.
			if p.InputMode == models.InputModeExisting {
				return
			}
		}
	}
}

// scan walks the directory one level deep and registers unknown matching
// files as candidates.
func (s *Service) scan(ws *watchSession, candidates map[string]candidate) {
	p := ws.params
	entries, err := os.ReadDir(p.Directory)
	if err != nil {
		return
	}

	consider := func(path, base string) {
		if strings.HasPrefix(base, ".") || !matchesPattern(base, p.Pattern) {
			return
		}
		if ws.isKnown(path) {
			return
		}
		if _, tracked := candidates[path]; tracked {
			return
		}
		candidates[path] = candidate{size: -1, stableSince: time.Now()}
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(p.Directory, name)
		if e.IsDir() {
			subEntries, err := os.ReadDir(path)
			if err != nil {
				continue
			}
			for _, se := range subEntries {
				if se.IsDir() {
					continue
				}
				consider(filepath.Join(path, se.Name()), se.Name())
			}
			continue
		}
		consider(path, name)
	}
}

func (s *Service) emit(ctx context.Context, ev Event) {
	select {
	case s.events <- ev:
	case <-ctx.Done():
	}
}

func (ws *watchSession) isKnown(path string) bool {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	_, ok := ws.known[path]
	return ok
}

func (ws *watchSession) addKnown(path string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.known[path] = struct{}{}
}

// matchesPattern matches a file name against an extension-style glob,
// case-insensitively. Accepted pattern forms: "*.tiff", ".tiff", "tiff".
func matchesPattern(name, pattern string) bool {
	ext := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(pattern, "*"), "."))
	if ext == "" {
		return true
	}
	return strings.ToLower(filepath.Ext(name)) == "."+ext
}
