package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-pwa/internal/config"
	"github.com/vovakirdan/snake-pwa/internal/scores"
	"github.com/vovakirdan/snake-pwa/internal/storage"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDBPath, flagDifficulty, flagLogLevel = "", "", "", ""
	})
}

func TestLoadConfigFlags(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  initial_ms: 180\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	flagConfig = path
	flagDBPath = "/tmp/other.db"
	flagDifficulty = "fixed"
	flagLogLevel = "debug"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Speed.InitialMS != 180 || cfg.Speed.StepMS != 0 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
	if cfg.Storage.Path != "/tmp/other.db" || cfg.Log.Level != "debug" {
		t.Errorf("flags not applied: %+v %+v", cfg.Storage, cfg.Log)
	}
}

func TestLoadConfigBadDifficulty(t *testing.T) {
	resetFlags(t)
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := loadConfig(); err == nil {
		t.Error("missing explicit config accepted")
	}

	flagConfig = ""
	flagDifficulty = "insane"
	if _, err := loadConfig(); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	history := scores.Load(store, scores.DefaultKey, scores.DefaultSize, nil)
	var out strings.Builder
	if err := printScores(&out, history, store, ""); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	for _, want := range []string{"No games played yet.", "No games recorded yet."} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	if err := history.Append(30); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordPlay(storage.Play{Score: 30, Length: 4}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := printScores(&out, history, store, ""); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	for _, want := range []string{"Game 1: 30", "local", "Games: 1  Best: 30"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSiteFS(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "snake.wasm"), []byte("wasm"), 0o644); err != nil {
		t.Fatal(err)
	}

	site := siteFS(root, false)
	if _, err := fs.Stat(site, "snake.wasm"); err != nil {
		t.Errorf("disk file not served: %v", err)
	}
	if _, err := fs.Stat(site, "index.html"); err != nil {
		t.Errorf("embedded page not served: %v", err)
	}

	if _, err := fs.Stat(siteFS(root, true), "snake.wasm"); err == nil {
		t.Error("embedded-only site served a disk file")
	}
}

func TestPrintPlayerScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, p := range []storage.Play{{Player: "alice", Score: 40}, {Player: "bob", Score: 90}} {
		if _, err := store.RecordPlay(p); err != nil {
			t.Fatal(err)
		}
	}

	history := scores.Load(store.Namespace("ssh:alice"), scores.DefaultKey, scores.DefaultSize, nil)
	var out strings.Builder
	if err := printScores(&out, history, store, "alice"); err != nil {
		t.Fatalf("printScores: %v", err)
	}
	if !strings.Contains(out.String(), "Latest games of alice") || !strings.Contains(out.String(), "40") {
		t.Errorf("player plays missing:\n%s", out.String())
	}
	if strings.Contains(out.String(), "bob") {
		t.Errorf("other player listed:\n%s", out.String())
	}
}

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "snake.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	local := scores.Load(store, scores.DefaultKey, scores.DefaultSize, nil)
	alice := scores.Load(store.Namespace("ssh:alice"), scores.DefaultKey, scores.DefaultSize, nil)
	if err := local.Append(10); err != nil {
		t.Fatal(err)
	}
	if err := alice.Append(20); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordPlay(storage.Play{Score: 10}); err != nil {
		t.Fatal(err)
	}

	if err := clearScores(store, "alice", scores.DefaultKey); err != nil {
		t.Fatalf("clearScores(alice): %v", err)
	}
	if _, ok, _ := store.Namespace("ssh:alice").Get(scores.DefaultKey); ok {
		t.Error("alice's history survived")
	}
	if _, ok, _ := store.Get(scores.DefaultKey); !ok {
		t.Error("local history removed by a player clear")
	}
	stats, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games != 0 {
		t.Errorf("play log has %d games after clear", stats.Games)
	}

	if err := clearScores(store, "", scores.DefaultKey); err != nil {
		t.Fatalf("clearScores(local): %v", err)
	}
	if _, ok, _ := store.Get(scores.DefaultKey); ok {
		t.Error("local history survived")
	}
}
