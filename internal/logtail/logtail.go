package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Level is a coarse severity inferred from a log line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Line is one log line with its inferred level.
type Line struct {
	Text  string
	Level Level
}

// Tail returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Tail(path string, maxLines int) ([]Line, error) {
	raw, err := readTail(path, maxLines)
	if err != nil {
		return nil, err
	}
	out := make([]Line, len(raw))
	for i, text := range raw {
		out[i] = Line{Text: text, Level: Classify(text)}
	}
	return out, nil
}

// Classify infers a level from keywords in line.
func Classify(line string) Level {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "failed"):
		return LevelError
	case strings.Contains(lower, "resolve cover"), strings.Contains(lower, "warn"):
		return LevelWarn
	default:
		return LevelInfo
	}
}

func readTail(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return all, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	return append(ring[next:], ring[:next]...), nil
}
