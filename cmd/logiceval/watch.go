package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"

	"github.com/logic-horizon/logiceval/config"
)

// watchFile runs a script and re-runs it whenever the file changes. Change
// bursts (editors often write several events per save) are debounced. Every
// run uses a fresh session, like the plain file mode.
func watchFile(filename string, cfg *config.Config) {
	runFile(filename)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer watcher.Close()
	// watch the directory: editors replace files on save, which would drop
	// a watch on the file itself
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().Infof("watching %s, quit with <ctrl>C", filename)

	reload := make(chan struct{}, 1)
	var debounce *time.Timer
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(filename) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(cfg.WatchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			tracer().Errorf("watch error: %v", err)
		case <-reload:
			pterm.Info.Printf("re-running %s\n", filename)
			runFile(filename)
		}
	}
}
