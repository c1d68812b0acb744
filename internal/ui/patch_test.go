package ui

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestPatch_Replace(t *testing.T) {
	p := NewPatch(context.Background(), DefaultMounts()...)

	if err := p.Replace(MountContent, text("<p>hi</p>")); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}

	op, ok := p.Last(MountContent)
	if !ok {
		t.Fatal("no op recorded for content")
	}
	if op.Op != OpReplace || op.HTML != "<p>hi</p>" {
		t.Errorf("op = %+v", op)
	}
}

func TestPatch_ReplaceUnknownMount(t *testing.T) {
	p := NewPatch(context.Background(), MountContent)

	err := p.Replace(MountWeekNav, text("x"))
	if !errors.Is(err, ErrNoMount) {
		t.Fatalf("Replace() error = %v, want ErrNoMount", err)
	}
	if len(p.Ops) != 0 {
		t.Errorf("ops recorded for missing mount: %+v", p.Ops)
	}
}

func TestPatch_ReplaceRenderError(t *testing.T) {
	p := NewPatch(context.Background(), MountContent)
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return errors.New("boom")
	})

	if err := p.Replace(MountContent, failing); err == nil {
		t.Fatal("Replace() error = nil, want render error")
	}
	if len(p.Ops) != 0 {
		t.Errorf("ops recorded after render failure: %+v", p.Ops)
	}
}

func TestPatch_ActivateAndDisplay(t *testing.T) {
	p := NewPatch(context.Background())

	p.Activate("", "week-button", "Week 3")
	p.Display(PanelTeamPages.Selector(), true)

	if len(p.Ops) != 2 {
		t.Fatalf("len(Ops) = %d, want 2", len(p.Ops))
	}
	if p.Ops[0] != (Op{Op: OpActivate, Group: "week-button", Key: "Week 3"}) {
		t.Errorf("Ops[0] = %+v", p.Ops[0])
	}
	if p.Ops[1] != (Op{Op: OpDisplay, Selector: "#team-pages-content", Visible: true}) {
		t.Errorf("Ops[1] = %+v", p.Ops[1])
	}
}

func TestParsePanel(t *testing.T) {
	p, err := ParsePanel("wr-comparison")
	if err != nil || p != PanelWRComparison {
		t.Errorf("ParsePanel(wr-comparison) = %q, %v", p, err)
	}
	if _, err := ParsePanel("standings"); err == nil {
		t.Error("ParsePanel(standings) error = nil")
	}
}
