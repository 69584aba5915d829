package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

func TestNormalizeMessages(t *testing.T) {
	got := render.NormalizeMessages([]string{" Required ", "", "Too short", "Required", "   "})
	want := []string{"Required", "Too short"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if render.NormalizeMessages([]string{" ", ""}) != nil {
		t.Fatalf("expected nil for blank messages")
	}
}

func TestApplyErrors(t *testing.T) {
	view := field.View{}
	render.ApplyErrors(&view, []string{"Taken.", "Taken.", "Too short."})
	if !view.Error || view.ErrorMessage != "Taken. Too short." {
		t.Fatalf("expected joined server errors, got %+v", view)
	}

	own := field.View{Error: true, ErrorMessage: "Required"}
	render.ApplyErrors(&own, []string{"Server says no"})
	if own.ErrorMessage != "Required" {
		t.Fatalf("expected field error message to win, got %q", own.ErrorMessage)
	}
}

func TestPrepare(t *testing.T) {
	f, err := field.New(field.Config{
		ID:       "title",
		Label:    "Title",
		LabelKey: "fields.title",
		Value:    "draft",
		OnChange: func(string) {},
	})
	if err != nil {
		t.Fatalf("new field: %v", err)
	}

	view := render.Prepare(f, render.RenderOptions{
		Translator: stubTranslator{"fields.title": "Titel"},
		Errors:     []string{"Already exists"},
	})
	if view.Label != "Titel" || view.ErrorMessage != "Already exists" || view.Value != "draft" {
		t.Fatalf("unexpected prepared view: %+v", view)
	}
	if f.View().Label != "Title" {
		t.Fatalf("expected field snapshot to stay untouched")
	}
}
