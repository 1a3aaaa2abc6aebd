package ingest

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/nxadm/tail"

	"loglens/internal/util/logx"
)

// DefaultMaxLineBytes bounds a single line; longer lines are cut to it.
const DefaultMaxLineBytes = 1024 * 1024

// ReadLines returns every line of the file at path, in file order, without
// line terminators. Lines longer than maxLineBytes are truncated, never
// dropped, so one oversized line cannot hide the rest of the file.
func ReadLines(path string, maxLineBytes int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	lines, err := readFromReader(f, maxLineBytes)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

func readFromReader(r io.Reader, maxLine int) ([]string, error) {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	br := bufio.NewReaderSize(r, 64*1024)
	out := make([]string, 0, 1024)
	var (
		line []byte
		cut  bool
		long int
	)
	for {
		frag, more, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		room := maxLine - len(line)
		if len(frag) > room {
			frag, cut = frag[:max(room, 0)], true
		}
		line = append(line, frag...)
		if more {
			continue
		}
		if cut {
			line = trimPartialRune(line)
			long++
		}
		out = append(out, string(line))
		line, cut = line[:0], false
	}
	if long > 0 {
		logx.Debugf("ingest: truncated %d lines to %d bytes", long, maxLine)
	}
	return out, nil
}

// trimPartialRune drops a multi-byte character left incomplete by a cut.
func trimPartialRune(b []byte) []byte {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}

// Watch follows path by polling and signals on the returned channel whenever
// lines are appended. Signals coalesce: the channel holds at most one pending
// notification and the consumer is expected to re-read the whole file. The
// channel is closed once ctx is done or the tail stops.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	t, err := tail.TailFile(path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Logger:    tail.DiscardingLogger,
		Poll:      true,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
	})
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer t.Cleanup()
		logx.Infof("watch: following %s", path)
		for {
			select {
			case <-ctx.Done():
				_ = t.Stop()
				logx.Infof("watch: stopped %s", path)
				return
			case l, ok := <-t.Lines:
				if !ok {
					if err := t.Err(); err != nil {
						logx.Warnf("watch: tail ended: %v", err)
					}
					return
				}
				if l.Err != nil {
					logx.Warnf("watch: %v", l.Err)
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}
