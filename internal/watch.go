package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/BigDonRob/RA-Modular-Logic-Generator/internal/types"
)

// Watcher recompiles logic files whenever they change on disk.
type Watcher struct {
	watcher    *fsnotify.Watcher
	dirs       []string
	passCfg    types.PassConfig
	isWatching bool
}

// NewWatcher prepares a watcher over the given directories.
func NewWatcher(dirs []string, passCfg types.PassConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	return &Watcher{watcher: fsw, dirs: dirs, passCfg: passCfg}, nil
}

func (w *Watcher) Start() error {
	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.isWatching = true
	go w.watchLoop()
	return nil
}

func (w *Watcher) Stop() error {
	if !w.isWatching {
		log.Println("not watching")
	}

	w.isWatching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("error: %v", err)
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".ralogic") && !strings.HasSuffix(event.Name, ".txt") {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	content, err := os.ReadFile(event.Name)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	engine := NewEngine(0)
	engine.LoadText(strings.TrimSpace(string(content)))
	engine.AutoLink()
	blob := engine.Generate()

	var reports []types.PassStats
	if w.passCfg.BitCompression {
		var stats types.PassStats
		blob, stats = CompressBits(blob)
		reports = append(reports, stats)
	}
	if w.passCfg.RememberRecall {
		var stats types.PassStats
		blob, stats = OptimizeRecall(blob)
		reports = append(reports, stats)
	}

	log.Printf("recompiled %s: %d conditions, %d generated lines",
		event.Name, len(engine.Conditions()), len(splitBlob(blob)))
	for _, stats := range reports {
		log.Printf("- %s: %d -> %d lines (%d saved)",
			stats.Pass, stats.LinesBefore, stats.LinesAfter, stats.LinesSaved())
	}
}
