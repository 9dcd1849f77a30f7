package command

import "testing"

func TestApp(t *testing.T) {
	app := App()
	if app == nil {
		t.Fatal("App returned nil")
	}

	if app.Name != "uacore-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "uacore-cli")
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}

	required := []string{"init", "validate", "show", "watch", "version"}
	for _, name := range required {
		if !names[name] {
			t.Errorf("missing command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	app := App()

	flagNames := make(map[string]bool)
	for _, f := range app.Flags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	required := []string{"config", "c", "output", "o", "log-level", "log-format"}
	for _, name := range required {
		if !flagNames[name] {
			t.Errorf("missing global flag: %s", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out == "" {
		t.Error("version printed nothing")
	}
}
