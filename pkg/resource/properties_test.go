package resource

import (
	"strings"
	"testing"
)

func TestLoadResolvesPlaceholders(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	if err := Load(strings.NewReader("app:\n  db:\n    driver: ${DB_DRIVER:postgres}\n    path: ${TODO_TEST_UNSET_PATH:todolist.db}\n  name: plain\n  server:\n    port: 8000\n")); err != nil {
		t.Fatalf("Failed to load properties: %v", err)
	}

	if got := GetString("app.db.driver"); got != "sqlite" {
		t.Errorf("Expected env value 'sqlite', got %q", got)
	}
	if got := GetString("app.db.path"); got != "todolist.db" {
		t.Errorf("Expected default 'todolist.db', got %q", got)
	}
	if got := GetString("app.name"); got != "plain" {
		t.Errorf("Expected plain value to be kept, got %q", got)
	}
	if got := GetInt("app.server.port"); got != 8000 {
		t.Errorf("Expected port 8000, got %d", got)
	}
}

func TestResolveEnvVariable(t *testing.T) {
	t.Setenv("TODO_TEST_ORIGIN", "http://example.test")

	cases := []struct {
		name  string
		value string
		want  string
	}{
		{"env wins over default", "${TODO_TEST_ORIGIN:http://localhost:3000}", "http://example.test"},
		{"default when unset", "${TODO_TEST_UNSET:fallback}", "fallback"},
		{"empty when unset without default", "${TODO_TEST_UNSET}", ""},
		{"plain value untouched", "todolist.db", "todolist.db"},
		{"embedded pattern untouched", "prefix-${TODO_TEST_ORIGIN}", "prefix-${TODO_TEST_ORIGIN}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveEnvVariable(tc.value); got != tc.want {
				t.Errorf("resolveEnvVariable(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}
