package types

import "strings"

// Severity classifies a conflict.
type Severity uint8

const (
	// Warning conflicts are reported but do not prevent resolution.
	Warning Severity = iota
	// Blocking conflicts prevent ResolvedConfig construction.
	Blocking
)

func (s Severity) String() string {
	if s == Blocking {
		return "blocking"
	}
	return "warning"
}

// Conflict is one validation finding. Code is an errcode.Code value kept as a
// string here so types stays dependency-free.
type Conflict struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Signals  []Signal `json:"signals,omitempty"`
	Pin      int      `json:"pin,omitempty"`
	Msg      string   `json:"msg"`
}

func (c Conflict) String() string {
	var b strings.Builder
	b.WriteString(c.Severity.String())
	b.WriteByte(' ')
	b.WriteString(c.Code)
	if len(c.Signals) > 0 {
		b.WriteString(" [")
		for i, s := range c.Signals {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(s))
		}
		b.WriteByte(']')
	}
	b.WriteString(": ")
	b.WriteString(c.Msg)
	return b.String()
}

// ConflictList collects every finding from one validation pass. It implements
// error so a failed validation can be returned directly to the caller.
type ConflictList []Conflict

func (l ConflictList) Error() string {
	switch len(l) {
	case 0:
		return "no conflicts"
	case 1:
		return l[0].String()
	}
	parts := make([]string, len(l))
	for i, c := range l {
		parts[i] = c.String()
	}
	return strings.Join(parts, "; ")
}

// HasBlocking reports whether any conflict prevents resolution.
func (l ConflictList) HasBlocking() bool {
	for _, c := range l {
		if c.Severity == Blocking {
			return true
		}
	}
	return false
}

// Blocking returns only the blocking-class conflicts.
func (l ConflictList) Blocking() ConflictList { return l.filter(Blocking) }

// Warnings returns only the warning-class conflicts.
func (l ConflictList) Warnings() ConflictList { return l.filter(Warning) }

func (l ConflictList) filter(sev Severity) ConflictList {
	var out ConflictList
	for _, c := range l {
		if c.Severity == sev {
			out = append(out, c)
		}
	}
	return out
}
