// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch re-solves every time the input file is written or replaced and prints
// each answer. Solve errors are logged and watching continues. It returns nil
// when ctx ends.
//
// The parent directory is watched rather than the file so that editors which
// save by rename are still picked up.
func (s *solver) watch(ctx context.Context, stdout io.Writer) error {
	target, err := filepath.Abs(s.opts.path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	s.debug.Printf("watching %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.debug.Printf("%s: %v", event.Name, event.Op)
			answer, err := s.solve(ctx)
			if err != nil {
				s.log.Printf("%s: %v", s.opts.path, err)
				continue
			}
			fmt.Fprintln(stdout, answer)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Printf("watcher: %v", err)
		}
	}
}
