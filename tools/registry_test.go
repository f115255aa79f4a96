package tools

import (
	"strings"
	"testing"
)

func TestRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(NewCodeGeneratorTool()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tool, ok := registry.Get(NameCodeGenerator)
	if !ok {
		t.Fatal("expected tool to be registered")
	}
	if tool.Metadata().Name != NameCodeGenerator {
		t.Errorf("unexpected tool name: %s", tool.Metadata().Name)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(NewCodeGeneratorTool()); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := registry.Register(NewCodeGeneratorTool()); err == nil {
		t.Fatal("expected error on duplicate registration")
	}
}

func TestGetMissing(t *testing.T) {
	registry := NewRegistry()

	if _, ok := registry.Get("nonexistent"); ok {
		t.Fatal("expected lookup of unknown tool to fail")
	}
	if registry.Has("nonexistent") {
		t.Fatal("Has should be false for unknown tool")
	}
}

func TestWithDefaults(t *testing.T) {
	registry, err := WithDefaults([]string{"ls", "pwd"})
	if err != nil {
		t.Fatalf("WithDefaults failed: %v", err)
	}

	expected := []string{
		NameCodeGenerator,
		NameReadFromFile,
		NameRunShell,
		NameWebSearch,
		NameWriteToFile,
	}
	names := registry.Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d tools, got %d: %v", len(expected), len(names), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("names[%d] = %s, want %s", i, names[i], name)
		}
	}
}

func TestRegistryDescription(t *testing.T) {
	registry, err := WithDefaults(nil)
	if err != nil {
		t.Fatalf("WithDefaults failed: %v", err)
	}

	desc := registry.Description()
	for _, name := range registry.Names() {
		if !strings.Contains(desc, "Tool: "+name) {
			t.Errorf("description missing tool %s", name)
		}
	}
}
