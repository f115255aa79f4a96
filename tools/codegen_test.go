package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseCodeSpecDefaults(t *testing.T) {
	spec := ParseCodeSpec("create a sorting helper")

	if spec.Kind != "function" {
		t.Errorf("kind = %s, want function", spec.Kind)
	}
	if spec.Language != "python" {
		t.Errorf("language = %s, want python", spec.Language)
	}
	if spec.Name != "generated_function" {
		t.Errorf("name = %s", spec.Name)
	}
}

func TestParseCodeSpecClassDetection(t *testing.T) {
	cases := []string{
		"write a class for user management",
		"اكتب كلاس لإدارة المستخدمين",
		"انشئ صنف جديد",
	}
	for _, task := range cases {
		spec := ParseCodeSpec(task)
		if spec.Kind != "class" {
			t.Errorf("task %q: kind = %s, want class", task, spec.Kind)
		}
		if spec.Name != "GeneratedClass" {
			t.Errorf("task %q: name = %s, want GeneratedClass", task, spec.Name)
		}
	}
}

func TestParseCodeSpecLanguageDetection(t *testing.T) {
	cases := []struct {
		task string
		lang string
	}{
		{"write a javascript function", "javascript"},
		{"write a go function", "go"},
		{"اكتب دالة بايثون", "python"},
		{"اكتب دالة جافا سكريبت", "javascript"},
		{"write something", "python"},
	}
	for _, tc := range cases {
		if got := ParseCodeSpec(tc.task).Language; got != tc.lang {
			t.Errorf("task %q: language = %s, want %s", tc.task, got, tc.lang)
		}
	}
}

func TestGeneratePythonFunction(t *testing.T) {
	out := Generate(CodeSpec{
		Name: "generated_function", Description: "sort a list",
		Kind: "function", Language: "python",
	})

	if !strings.Contains(out.Code, "def generated_function():") {
		t.Errorf("missing function definition:\n%s", out.Code)
	}
	if !strings.Contains(out.Code, "sort a list") {
		t.Error("docstring missing description")
	}
	if !strings.Contains(out.Tests, "unittest") {
		t.Error("tests missing unittest import")
	}
	if out.FileName != "generated_function.py" {
		t.Errorf("file name = %s", out.FileName)
	}
}

func TestGeneratePythonClass(t *testing.T) {
	out := Generate(CodeSpec{
		Name: "GeneratedClass", Description: "manage users",
		Kind: "class", Language: "python",
	})

	if !strings.Contains(out.Code, "class GeneratedClass:") {
		t.Errorf("missing class definition:\n%s", out.Code)
	}
	if !strings.Contains(out.Code, "def __init__(self):") {
		t.Error("missing constructor")
	}
}

func TestGenerateDocumentation(t *testing.T) {
	out := Generate(CodeSpec{
		Name: "generated_function", Description: "parse a file",
		Kind: "function", Language: "python",
	})

	if !strings.Contains(out.Documentation, "# generated_function") {
		t.Error("documentation missing title")
	}
	if !strings.Contains(out.Documentation, "parse a file") {
		t.Error("documentation missing description")
	}
}

func TestGenerateUnknownLanguageExtension(t *testing.T) {
	out := Generate(CodeSpec{Name: "x", Language: "cobol", Kind: "function"})

	if out.FileName != "x.txt" {
		t.Errorf("file name = %s, want x.txt", out.FileName)
	}
}

func TestCodeGeneratorToolExecute(t *testing.T) {
	tool := NewCodeGeneratorTool()

	args, _ := json.Marshal(map[string]string{"task": "write a javascript class for caching"})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Success() {
		t.Fatalf("expected success, got: %v", result.Error)
	}

	var generated GeneratedCode
	if err := json.Unmarshal([]byte(result.Output), &generated); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if generated.Language != "javascript" {
		t.Errorf("language = %s, want javascript", generated.Language)
	}
	if !strings.Contains(generated.Code, "class GeneratedClass") {
		t.Errorf("unexpected code:\n%s", generated.Code)
	}
}

func TestCodeGeneratorToolEmptyTask(t *testing.T) {
	tool := NewCodeGeneratorTool()

	args, _ := json.Marshal(map[string]string{"task": ""})
	result, err := tool.Execute(context.Background(), args)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result.Success() {
		t.Fatal("expected failure for empty task")
	}
}
