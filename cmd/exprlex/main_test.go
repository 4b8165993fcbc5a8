package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/mgomes/exprlex/exprlex"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	runErr := fn()
	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("read captured stdout: %v", err)
	}
	return buf.String(), runErr
}

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"exprlex", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"exprlex", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCLIWithoutCommand(t *testing.T) {
	err := runCLI([]string{"exprlex"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
}

func TestTokensCommandRequiresExpression(t *testing.T) {
	err := tokensCommand(nil)
	if err == nil {
		t.Fatalf("expected expression required error")
	}
	if !strings.Contains(err.Error(), "expression required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandJSONOutput(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{"-json", "1", "+", "2"})
	})
	if err != nil {
		t.Fatalf("tokensCommand failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSON lines, got %d:\n%s", len(lines), out)
	}

	var tok exprlex.Token
	if err := json.Unmarshal([]byte(lines[1]), &tok); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if tok.Type != exprlex.TokenOperator || tok.Lexeme != "+" || tok.Pos != 3 {
		t.Fatalf("unexpected middle token: %+v", tok)
	}
}

func TestTokensCommandReportsLexicalErrors(t *testing.T) {
	err := tokensCommand([]string{"0x"})
	if err == nil {
		t.Fatalf("expected lexical error")
	}
	if !strings.Contains(err.Error(), "after 'x'") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandCustomOperators(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return tokensCommand([]string{"-ops", "==,<=", "a", "==", "b"})
	})
	if err != nil {
		t.Fatalf("tokensCommand failed: %v", err)
	}
	if !strings.Contains(out, "==") {
		t.Fatalf("expected == in output, got:\n%s", out)
	}
}

func TestSplitOperators(t *testing.T) {
	ops := splitOperators(" ==, <= ,,+ ")
	want := []string{"==", "<=", "+"}
	if len(ops) != len(want) {
		t.Fatalf("expected %v, got %v", want, ops)
	}
	for i, w := range want {
		if ops[i] != w {
			t.Fatalf("expected %v, got %v", want, ops)
		}
	}
}
