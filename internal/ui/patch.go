package ui

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
)

const (
	OpReplace  = "replace"
	OpActivate = "activate"
	OpDisplay  = "display"
)

type Op struct {
	Op       string `json:"op"`
	Target   string `json:"target,omitempty"`
	HTML     string `json:"html,omitempty"`
	Scope    string `json:"scope,omitempty"`
	Group    string `json:"group,omitempty"`
	Key      string `json:"key,omitempty"`
	Selector string `json:"selector,omitempty"`
	Visible  bool   `json:"visible"`
}

// Patch is a Surface that records operations for the browser to apply.
type Patch struct {
	ctx    context.Context
	mounts map[string]bool
	Ops    []Op `json:"ops"`
}

// NewPatch returns a Patch that accepts replacements for the given mounts
// only.
func NewPatch(ctx context.Context, mounts ...string) *Patch {
	m := make(map[string]bool, len(mounts))
	for _, id := range mounts {
		m[id] = true
	}
	return &Patch{ctx: ctx, mounts: m, Ops: []Op{}}
}

// DefaultMounts are the mount points the page shell provides.
func DefaultMounts() []string {
	return []string{MountYearButtons, MountWeekNav, MountMatchupNav, MountContent}
}

func (p *Patch) Replace(mount string, c templ.Component) error {
	if !p.mounts[mount] {
		return fmt.Errorf("%w: %s", ErrNoMount, mount)
	}

	var buf bytes.Buffer
	if err := c.Render(p.ctx, &buf); err != nil {
		return fmt.Errorf("rendering %s: %w", mount, err)
	}

	p.Ops = append(p.Ops, Op{Op: OpReplace, Target: mount, HTML: buf.String()})
	return nil
}

func (p *Patch) Activate(scope, group, key string) error {
	p.Ops = append(p.Ops, Op{Op: OpActivate, Scope: scope, Group: group, Key: key})
	return nil
}

func (p *Patch) Display(selector string, visible bool) error {
	p.Ops = append(p.Ops, Op{Op: OpDisplay, Selector: selector, Visible: visible})
	return nil
}

// Last returns the most recent operation touching target, or false.
func (p *Patch) Last(target string) (Op, bool) {
	for i := len(p.Ops) - 1; i >= 0; i-- {
		op := p.Ops[i]
		if op.Target == target || op.Selector == target || op.Group == target {
			return op, true
		}
	}
	return Op{}, false
}
