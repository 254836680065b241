// SPDX-FileCopyrightText: © 2026 The crswkt authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"fmt"
	"strconv"
	"strings"
)

type ErrDetail struct {
	Node    Node
	Message string
}

func NewErrDetail(node Node, msg string) ErrDetail {
	return ErrDetail{
		Node:    node,
		Message: msg,
	}
}

// PosError represents a positional error within a WKT document. Use Explain
// for a multi-line rendering suited for the console.
type PosError struct {
	Details []ErrDetail
	Cause   error
	Hint    string
}

// NewPosError creates a new PosError with the given root cause and optional details.
func NewPosError(node Node, msg string, details ...ErrDetail) *PosError {
	tmp := append([]ErrDetail{}, ErrDetail{
		Node:    node,
		Message: msg,
	})
	tmp = append(tmp, details...)

	return &PosError{
		Details: tmp,
	}
}

func (p *PosError) SetCause(err error) *PosError {
	p.Cause = err
	return p
}

func (p *PosError) SetHint(str string) *PosError {
	p.Hint = str
	return p
}

func (p *PosError) Unwrap() error {
	return p.Cause
}

func (p *PosError) firstDetail() ErrDetail {
	if len(p.Details) > 0 {
		return p.Details[0]
	}

	return ErrDetail{}
}

// Begin returns the position where the first detail starts.
func (p *PosError) Begin() Pos {
	d := p.firstDetail()
	if d.Node == nil {
		return Pos{}
	}

	return d.Node.Begin()
}

func (p *PosError) Error() string {
	d := p.firstDetail()

	msg := d.Message
	if d.Node != nil {
		msg += " at " + posString(d.Node.Begin())
	}

	if p.Cause == nil {
		return msg
	}

	return msg + ": " + p.Cause.Error()
}

// posString renders a position without a leading colon for in-memory documents.
func posString(pos Pos) string {
	if pos.File == "" {
		return strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Col)
	}

	return pos.String()
}

// Explain returns a multi-line text suited to be printed into the console.
// When the source document is given, the offending lines are quoted and the
// error span is underlined.
func (p *PosError) Explain(source string) string {
	lines := strings.Split(source, "\n")

	// grab the required indent for the line numbers
	indent := 0

	for _, detail := range p.Details {
		if detail.Node == nil {
			continue
		}

		l := len(strconv.Itoa(detail.Node.Begin().Line))
		if l > indent {
			indent = l
		}
	}

	sb := &strings.Builder{}

	for i, detail := range p.Details {
		if detail.Node == nil {
			continue
		}

		begin := detail.Node.Begin()
		end := detail.Node.End()

		if i == 0 {
			sb.WriteString(posString(begin))
			sb.WriteString("\n")
		}

		line := ""
		if begin.Line-1 >= 0 && begin.Line-1 < len(lines) {
			line = lines[begin.Line-1]
		}

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"d |", begin.Line))
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(begin.Col-1)+"s", ""))

		span := end.Col - begin.Col
		if span <= 1 || end.Line != begin.Line {
			sb.WriteString("^~~~ ")
		} else {
			for i := 0; i < span; i++ {
				sb.WriteRune('^')
			}
			sb.WriteRune(' ')
		}

		sb.WriteString(detail.Message)
		sb.WriteString("\n")
	}

	if p.Hint != "" {
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s |\n", ""))
		sb.WriteString(fmt.Sprintf("%"+strconv.Itoa(indent)+"s = hint: %s\n", "", p.Hint))
	}

	return sb.String()
}
