package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iportilla/agents/llm"
)

// Calculator evaluates arithmetic expressions: + - * / %, parentheses,
// unary minus, decimal numbers.
type Calculator struct{}

type calculatorArgs struct {
	Expression string `json:"expression"`
}

func (Calculator) Name() string { return "calculator" }

func (Calculator) Describe() llm.ToolSchema {
	return llm.ToolSchema{
		Name:        "calculator",
		Description: "Evaluate an arithmetic expression with +, -, *, /, %, and parentheses",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"expression": map[string]any{
					"type":        "string",
					"description": "The expression to evaluate, e.g. '(3 + 4) * 2'",
				},
			},
			"required": []string{"expression"},
		},
	}
}

func (c Calculator) Invoke(_ context.Context, raw json.RawMessage) (string, error) {
	var args calculatorArgs
	if err := DecodeArgs(c.Name(), raw, &args); err != nil {
		return "", err
	}
	if strings.TrimSpace(args.Expression) == "" {
		return "", &InvalidArgumentsError{Tool: c.Name(), Reason: "requires an 'expression' parameter"}
	}

	p := &exprParser{input: args.Expression}
	value, err := p.parseExpr()
	if err != nil {
		return "", &InvalidArgumentsError{Tool: c.Name(), Reason: err.Error()}
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return "", &InvalidArgumentsError{
			Tool:   c.Name(),
			Reason: fmt.Sprintf("unexpected %q at position %d", p.input[p.pos], p.pos),
		}
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return "", &InvalidArgumentsError{Tool: c.Name(), Reason: "expression has no finite value"}
	}
	return FormatNumber(value), nil
}

// exprParser is a recursive-descent evaluator over a byte cursor.
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles + and -.
func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case '-':
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

// parseTerm handles *, /, and %.
func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case '/':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		case '%':
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			left = math.Mod(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	c := p.peek()
	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
			continue
		}
		break
	}
	if p.pos == start {
		if start >= len(p.input) {
			return 0, fmt.Errorf("unexpected end of expression")
		}
		return 0, fmt.Errorf("unexpected %q at position %d", p.input[start], start)
	}
	v, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", p.input[start:p.pos])
	}
	return v, nil
}
