package field

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/go-cmp/cmp"
)

type recorder struct {
	calls []string
}

func (r *recorder) onChange(value string) {
	r.calls = append(r.calls, value)
}

func newTestField(t *testing.T, cfg Config) (*Field, *recorder) {
	t.Helper()
	rec := &recorder{}
	if cfg.Label == "" {
		cfg.Label = "Name"
	}
	cfg.OnChange = rec.onChange
	f, err := New(cfg)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f, rec
}

func TestNewUsesExplicitID(t *testing.T) {
	f, _ := newTestField(t, Config{ID: "username", Value: "a"})
	if f.ID() != "username" {
		t.Fatalf("expected explicit id, got %q", f.ID())
	}
	if f.Value() != "a" {
		t.Fatalf("expected initial display value, got %q", f.Value())
	}
}

func TestGeneratedIDIsStableAcrossUpdates(t *testing.T) {
	f, rec := newTestField(t, Config{Value: "a"})
	id := f.ID()
	if !strings.HasPrefix(id, IDPrefix) {
		t.Fatalf("expected generated id with prefix %q, got %q", IDPrefix, id)
	}

	for _, value := range []string{"b", "c", "c"} {
		if err := f.Update(Config{Label: "Name", Value: value, OnChange: rec.onChange}); err != nil {
			t.Fatalf("update: %v", err)
		}
		if f.ID() != id {
			t.Fatalf("identifier changed from %q to %q", id, f.ID())
		}
	}
}

func TestGeneratedIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		f, _ := newTestField(t, Config{})
		if _, dup := seen[f.ID()]; dup {
			t.Fatalf("duplicate identifier %q", f.ID())
		}
		seen[f.ID()] = struct{}{}
	}
}

func TestUpdateKeepsOriginalIDWhenCallerChangesIt(t *testing.T) {
	f, rec := newTestField(t, Config{ID: "first"})
	if err := f.Update(Config{ID: "second", Label: "Name", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.ID() != "first" {
		t.Fatalf("expected first identifier to win, got %q", f.ID())
	}
	if got := f.Config().ID; got != "first" {
		t.Fatalf("expected config to report identifier in use, got %q", got)
	}
}

func TestExternalValueSync(t *testing.T) {
	f, rec := newTestField(t, Config{Value: "a"})

	if err := f.Update(Config{Label: "Name", Value: "b", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "b" {
		t.Fatalf("expected external value to replace display value, got %q", f.Value())
	}

	f.HandleChange("b-local")
	if err := f.Update(Config{Label: "Name", Value: "b", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "b-local" {
		t.Fatalf("expected unchanged external value to keep local edit, got %q", f.Value())
	}

	if err := f.Update(Config{Label: "Name", Value: "c", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "c" {
		t.Fatalf("expected changed external value to discard local edit, got %q", f.Value())
	}
}

func TestUpdateDoesNotNotify(t *testing.T) {
	f, rec := newTestField(t, Config{Value: "a"})
	if err := f.Update(Config{Label: "Name", Value: "b", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no callbacks for external updates, got %v", rec.calls)
	}
}

func TestHandleChange(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		raw  string
		want string
	}{
		{name: "no transform", raw: "xyz", want: "xyz"},
		{name: "upper case", cfg: Config{Transform: UpperCase()}, raw: "abc", want: "ABC"},
		{name: "lower case", cfg: Config{Transform: LowerCase()}, raw: "AbC", want: "abc"},
		{name: "truncate after transform", cfg: Config{Transform: UpperCase(), MaxLength: 3}, raw: "abcdef", want: "ABC"},
		{name: "truncate without transform", cfg: Config{MaxLength: 2}, raw: "héllo", want: "hé"},
		{
			name: "lengthening custom transform is truncated",
			cfg: Config{
				MaxLength: 4,
				Transform: Custom(func(newValue, _ string) string { return newValue + newValue }),
			},
			raw:  "abc",
			want: "abca",
		},
		{
			name: "custom transform trims",
			cfg:  Config{Transform: Custom(func(newValue, _ string) string { return strings.TrimSpace(newValue) })},
			raw:  "  padded  ",
			want: "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, rec := newTestField(t, tt.cfg)
			got := f.HandleChange(tt.raw)
			if got != tt.want {
				t.Fatalf("HandleChange(%q) = %q, want %q", tt.raw, got, tt.want)
			}
			if f.Value() != tt.want {
				t.Fatalf("display value = %q, want %q", f.Value(), tt.want)
			}
			if diff := cmp.Diff([]string{tt.want}, rec.calls); diff != "" {
				t.Fatalf("callback mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomTransformReceivesPreviousDisplayValue(t *testing.T) {
	var seen [][2]string
	f, _ := newTestField(t, Config{
		Value: "start",
		Transform: Custom(func(newValue, oldValue string) string {
			seen = append(seen, [2]string{newValue, oldValue})
			return newValue
		}),
	})

	f.HandleChange("first")
	f.HandleChange("second")

	want := [][2]string{{"first", "start"}, {"second", "first"}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("transform arguments mismatch (-want +got):\n%s", diff)
	}
}

func TestCallbackObservesCommittedState(t *testing.T) {
	var f *Field
	var observed string
	cfg := Config{
		Label:     "Code",
		Transform: UpperCase(),
		OnChange: func(value string) {
			observed = f.Value()
			if value != observed {
				t.Errorf("callback value %q differs from committed value %q", value, observed)
			}
		},
	}
	var err error
	f, err = New(cfg)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	f.HandleChange("abc")
	if observed != "ABC" {
		t.Fatalf("expected callback to observe committed value, got %q", observed)
	}
}

func TestMaxLengthInvariantHoldsForExternalValues(t *testing.T) {
	f, rec := newTestField(t, Config{Value: "abcdef", MaxLength: 3})
	if f.Value() != "abc" {
		t.Fatalf("expected initial value truncated, got %q", f.Value())
	}
	if err := f.Update(Config{Label: "Name", Value: "uvwxyz", MaxLength: 4, OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "uvwx" {
		t.Fatalf("expected external value truncated, got %q", f.Value())
	}
	if err := f.Update(Config{Label: "Name", Value: "uvwxyz", MaxLength: 2, OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "uv" {
		t.Fatalf("expected lowered limit to truncate display value, got %q", f.Value())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no callbacks, got %v", rec.calls)
	}
}

func TestUpdateLowerMaxLengthTruncatesLocalEditSilently(t *testing.T) {
	f, rec := newTestField(t, Config{Value: "h"})
	f.HandleChange("hello")

	if err := f.Update(Config{Label: "Name", Value: "h", MaxLength: 2, OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if f.Value() != "he" {
		t.Fatalf("expected local edit truncated, got %q", f.Value())
	}
	if diff := cmp.Diff([]string{"hello"}, rec.calls); diff != "" {
		t.Fatalf("callback mismatch (-want +got):\n%s", diff)
	}
}

func TestViewErrorState(t *testing.T) {
	f, rec := newTestField(t, Config{ID: "email", ErrorMessage: "Required"})
	view := f.View()
	if !view.Error || view.ErrorMessage != "Required" {
		t.Fatalf("expected error state with message, got %+v", view)
	}

	if err := f.Update(Config{Label: "Name", OnChange: rec.onChange}); err != nil {
		t.Fatalf("update: %v", err)
	}
	view = f.View()
	if view.Error || view.ErrorMessage != "" {
		t.Fatalf("expected no error state, got %+v", view)
	}
}

func TestViewSnapshot(t *testing.T) {
	f, _ := newTestField(t, Config{
		ID:          "code",
		Label:       "Code",
		Value:       "x",
		Kind:        KindPassword,
		Required:    true,
		Placeholder: "ABC-123",
		HelperText:  "Printed on the card",
		Transform:   UpperCase(),
		MaxLength:   7,
		Layout:      Layout{XS: Columns(12), MD: Columns(6)},
	})

	want := View{
		ID:          "code",
		Label:       "Code",
		Value:       "x",
		Kind:        KindPassword,
		Required:    true,
		MaxLength:   7,
		Placeholder: "ABC-123",
		ShrinkLabel: true,
		HelperText:  "Printed on the card",
		Transform:   "upperCase",
		Layout:      Layout{XS: 12, MD: 6},
	}
	if diff := cmp.Diff(want, f.View()); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"code-helper"}, f.View().DescribedBy()); diff != "" {
		t.Fatalf("described-by mismatch (-want +got):\n%s", diff)
	}
}

func TestViewWithoutPlaceholderFloatsLabel(t *testing.T) {
	f, _ := newTestField(t, Config{})
	if f.View().ShrinkLabel {
		t.Fatalf("expected floating label without placeholder")
	}
	if f.View().Kind != KindText {
		t.Fatalf("expected default kind text, got %q", f.View().Kind)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{name: "missing label", cfg: Config{OnChange: func(string) {}}, field: "Label"},
		{name: "missing callback", cfg: Config{Label: "Name"}, field: "OnChange"},
		{name: "negative max length", cfg: Config{Label: "Name", MaxLength: -1, OnChange: func(string) {}}, field: "MaxLength"},
		{name: "unknown kind", cfg: Config{Label: "Name", Kind: "colour", OnChange: func(string) {}}, field: "Kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if err == nil {
				t.Fatalf("expected error")
			}
			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation.Errors, got %T: %v", err, err)
			}
			if _, ok := verrs[tt.field]; !ok {
				t.Fatalf("expected error for %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestUpdateRejectsInvalidConfigAndKeepsState(t *testing.T) {
	f, _ := newTestField(t, Config{Value: "keep"})
	if err := f.Update(Config{Value: "drop"}); err == nil {
		t.Fatalf("expected error for invalid update")
	}
	if f.Value() != "keep" {
		t.Fatalf("expected state untouched after rejected update, got %q", f.Value())
	}
}
