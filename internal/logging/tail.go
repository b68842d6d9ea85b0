package logging

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// followInterval is how often TailLog polls for new data when following.
var followInterval = 200 * time.Millisecond

// TailLog writes the last n lines of the file at path to w (all lines when
// n <= 0). With follow it keeps copying appended data until ctx is done.
func TailLog(ctx context.Context, w io.Writer, path string, n int, follow bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if err := writeLastLines(w, file, n); err != nil {
		return err
	}
	if !follow {
		return nil
	}

	ticker := time.NewTicker(followInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := io.Copy(w, file); err != nil {
				return err
			}
		}
	}
}

// writeLastLines keeps a ring of the last n lines and writes them out once
// the reader is exhausted.
func writeLastLines(w io.Writer, r io.Reader, n int) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if n <= 0 {
		for scanner.Scan() {
			if _, err := fmt.Fprintln(w, scanner.Text()); err != nil {
				return err
			}
		}
		return scanner.Err()
	}

	ring := make([]string, 0, n)
	start := 0
	for scanner.Scan() {
		if len(ring) < n {
			ring = append(ring, scanner.Text())
			continue
		}
		ring[start] = scanner.Text()
		start = (start + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	for i := range ring {
		if _, err := fmt.Fprintln(w, ring[(start+i)%len(ring)]); err != nil {
			return err
		}
	}
	return nil
}
