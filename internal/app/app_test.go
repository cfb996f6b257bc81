package app

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_WritesToFile(t *testing.T) {
	prevOut, prevPrefix, prevFlags := log.Writer(), log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
		log.SetFlags(prevFlags)
	})

	path := filepath.Join(t.TempDir(), "nested", "shelf.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	log.Printf("catalog: loaded %d books", 3)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "shelf ") || !strings.Contains(got, "catalog: loaded 3 books") {
		t.Fatalf("log content = %q, want prefixed catalog line", got)
	}
}

func TestSetupLogging_EmptyPathDiscards(t *testing.T) {
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	closeLog, err := setupLogging("  ")
	if err != nil {
		t.Fatalf("setupLogging returned error: %v", err)
	}
	defer closeLog()
	log.Print("dropped")
}
