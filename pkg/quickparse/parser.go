package quickparse

import (
	"time"

	"quick-entry/pkg/datemath"
)

// Parser turns one quick-entry line into a Result. It is stateless between
// calls and safe for concurrent use once configured.
type Parser struct {
	dates  *datemath.Parser
	stages []Stage
	now    func() time.Time
}

// NewParser creates a parser resolving dates in the given IANA timezone.
func NewParser(timezone string) (*Parser, error) {
	dates, err := datemath.NewParser(timezone)
	if err != nil {
		return nil, err
	}
	return &Parser{
		dates:  dates,
		stages: DefaultStages(),
		now:    time.Now,
	}, nil
}

// SetClock replaces the reference clock used by Parse. Not safe to call
// concurrently with Parse.
func (p *Parser) SetClock(now func() time.Time) {
	p.now = now
}

// Location returns the timezone dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.dates.Location()
}

// Stages returns the stage names in execution order.
func (p *Parser) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}

// Parse interprets input relative to the parser's clock.
func (p *Parser) Parse(input string) Result {
	return p.ParseAt(input, p.now())
}

// ParseAt interprets input relative to now. It never fails: text that no
// stage recognises ends up in the title.
func (p *Parser) ParseAt(input string, now time.Time) Result {
	res := newResult()
	ctx := Context{Now: now.In(p.dates.Location()), Dates: p.dates}

	residual := ExpandShortcuts(input)
	for _, stage := range p.stages {
		m, ok := stage.Extract(ctx, residual)
		if !ok {
			continue
		}
		residual = m.Residual
		if m.Apply != nil {
			m.Apply(&res)
		}
		res.MatchedTokens = append(res.MatchedTokens, m.Labels...)
	}

	res.Title = resolveTitle(residual, input)
	return res
}
