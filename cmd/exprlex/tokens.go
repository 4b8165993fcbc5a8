package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/exprlex/exprlex"
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	asJSON := fs.Bool("json", false, "print tokens as JSON instead of a table")
	ops := fs.String("ops", "", "comma-separated operator set overriding the default")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("exprlex tokens: expression required")
	}
	expr := strings.Join(remaining, " ")

	lexer := exprlex.New(exprlex.Config{
		Source:    expr,
		Operators: splitOperators(*ops),
	})
	tokens, err := lexer.Run()
	if err != nil {
		return err
	}

	if *asJSON {
		return writeTokensJSON(os.Stdout, tokens)
	}
	fmt.Println(renderTokenTable(tokens))
	return nil
}

func splitOperators(list string) []string {
	if list == "" {
		return nil
	}
	var ops []string
	for _, op := range strings.Split(list, ",") {
		op = strings.TrimSpace(op)
		if op != "" {
			ops = append(ops, op)
		}
	}
	return ops
}

func writeTokensJSON(w io.Writer, tokens []exprlex.Token) error {
	enc := json.NewEncoder(w)
	for _, tok := range tokens {
		if err := enc.Encode(tok); err != nil {
			return err
		}
	}
	return nil
}

var (
	kindStyles = map[exprlex.TokenType]lipgloss.Style{
		exprlex.TokenConstant: lipgloss.NewStyle().Foreground(successColor),
		exprlex.TokenVariable: lipgloss.NewStyle().Foreground(accentColor),
		exprlex.TokenOperator: lipgloss.NewStyle().Foreground(highlightColor),
	}
	defaultKindStyle = lipgloss.NewStyle().Foreground(mutedColor)
	posStyle         = lipgloss.NewStyle().Foreground(mutedColor)
)

func kindStyle(kind exprlex.TokenType) lipgloss.Style {
	if style, ok := kindStyles[kind]; ok {
		return style
	}
	return defaultKindStyle
}

func kindLabel(kind exprlex.TokenType) string {
	switch kind {
	case exprlex.TokenLParen:
		return "LPAREN"
	case exprlex.TokenRParen:
		return "RPAREN"
	case exprlex.TokenComma:
		return "COMMA"
	default:
		return string(kind)
	}
}

func renderTokenTable(tokens []exprlex.Token) string {
	if len(tokens) == 0 {
		return mutedStyle.Render("(no tokens)")
	}

	var lines []string
	for _, tok := range tokens {
		line := fmt.Sprintf("%s  %s  %s",
			posStyle.Render(fmt.Sprintf("%4d", tok.Pos)),
			kindStyle(tok.Type).Render(fmt.Sprintf("%-10s", kindLabel(tok.Type))),
			tok.Lexeme)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
