package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"PORT", "DB_DRIVER", "DATABASE_URL", "DB_TIMEOUT_SECONDS", "DB_RESET_ON_START"} {
		t.Setenv(name, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("port: want=%q got=%q", "8080", cfg.Port)
	}
	if cfg.DBDriver != "sqlite3" {
		t.Fatalf("driver: want=%q got=%q", "sqlite3", cfg.DBDriver)
	}
	if cfg.DBTimeout != 5*time.Second {
		t.Fatalf("timeout: want=%v got=%v", 5*time.Second, cfg.DBTimeout)
	}
	if !cfg.ResetOnStart {
		t.Fatalf("reset on start should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_TIMEOUT_SECONDS", "2")
	t.Setenv("DB_RESET_ON_START", "false")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("port: want=%q got=%q", "9090", cfg.Port)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("driver: want=%q got=%q", "postgres", cfg.DBDriver)
	}
	if cfg.DBTimeout != 2*time.Second {
		t.Fatalf("timeout: want=%v got=%v", 2*time.Second, cfg.DBTimeout)
	}
	if cfg.ResetOnStart {
		t.Fatalf("reset on start should be false")
	}
}

func TestIntAndBoolFallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "twelve")
	t.Setenv("SOME_BOOL", "perhaps")

	if got := Int("SOME_INT", 12); got != 12 {
		t.Fatalf("int: want=%d got=%d", 12, got)
	}
	if got := Bool("SOME_BOOL", true); !got {
		t.Fatalf("bool: want=true got=%t", got)
	}
}

func TestTimeoutsRejectNonPositiveValues(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_TIMEOUT_SECONDS", tt.value)
			t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", tt.value)

			cfg := Load()
			if cfg.DBTimeout != 5*time.Second {
				t.Fatalf("db timeout: want=%v got=%v", 5*time.Second, cfg.DBTimeout)
			}
			if cfg.ShutdownTimeout != 10*time.Second {
				t.Fatalf("shutdown timeout: want=%v got=%v", 10*time.Second, cfg.ShutdownTimeout)
			}
		})
	}
}
