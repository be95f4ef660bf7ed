package cli

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"studytasks/app/config"
	"studytasks/app/models"

	"github.com/spf13/cobra"
)

func TestNewStoreSeeds(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(seedPath, []byte("tasks:\n  - text: Sketchbook\n    category: Art\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		seed string
		want int
	}{
		{config.SeedDefault, 4},
		{config.SeedNone, 0},
		{seedPath, 1},
	}
	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			store, err := newStore(&config.Config{Seed: tt.seed}, discardLogger())
			if err != nil {
				t.Fatalf("newStore: %v", err)
			}
			if store.Len() != tt.want {
				t.Errorf("len = %d, want %d", store.Len(), tt.want)
			}
		})
	}

	if _, err := newStore(&config.Config{Seed: filepath.Join(t.TempDir(), "missing.yaml")}, discardLogger()); err == nil {
		t.Error("missing seed file should fail")
	}
}

func TestNewStoreVerboseLogs(t *testing.T) {
	var buf bytes.Buffer
	store, err := newStore(&config.Config{Seed: config.SeedNone, Verbose: true}, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	task, err := store.AddTask("Read chapter 4", models.CategoryEnglish, models.PriorityLow, "")
	if err != nil {
		t.Fatal(err)
	}
	store.ToggleTask(task.ID)

	out := buf.String()
	if !strings.Contains(out, "add "+task.ID) || !strings.Contains(out, "toggle "+task.ID) {
		t.Errorf("log = %q", out)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	t.Setenv("STUDYTASKS_ADDR", "")
	t.Setenv("STUDYTASKS_SEED", "")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&seedFlag, "seed", "", "")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "")
	cmd.Flags().String("addr", "", "")
	for name, value := range map[string]string{"seed": "none", "verbose": "true", "addr": "127.0.0.1:9999"} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Seed != config.SeedNone || !cfg.Verbose || cfg.Addr != "127.0.0.1:9999" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := versionCmd("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "studytasks 1.2.3\n" {
		t.Errorf("output = %q", got)
	}
}
