package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-textfield/pkg/field"
	"github.com/goliatone/go-textfield/pkg/render"
)

type stubDriver struct {
	inputs       []string
	textAreas    []string
	passwords    []string
	infoMessages []string
	inputConfigs []InputConfig
	inputPos     int
	textPos      int
	passPos      int
	err          error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newField(t *testing.T, cfg field.Config, calls *[]string) *field.Field {
	t.Helper()
	if cfg.Label == "" {
		cfg.Label = "Code"
	}
	cfg.OnChange = func(value string) {
		if calls != nil {
			*calls = append(*calls, value)
		}
	}
	f, err := field.New(cfg)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	return f
}

func TestRender_CommitsThroughPipeline(t *testing.T) {
	driver := &stubDriver{inputs: []string{"abcdef"}}
	var calls []string
	f := newField(t, field.Config{ID: "code", Value: "old", Transform: field.UpperCase(), MaxLength: 3}, &calls)

	out, err := New(WithPromptDriver(driver)).Render(context.Background(), f, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(out) != `{"id":"code","label":"Code","value":"ABC"}` {
		t.Fatalf("unexpected output %s", out)
	}
	if diff := cmp.Diff([]string{"ABC"}, calls); diff != "" {
		t.Fatalf("callback mismatch (-want +got):\n%s", diff)
	}
	if driver.inputConfigs[0].Default != "old" {
		t.Fatalf("expected current display value as default, got %q", driver.inputConfigs[0].Default)
	}
}

func TestRender_RequiredRepromptsOnEmpty(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  ", "ok"}}
	f := newField(t, field.Config{ID: "name", Required: true}, nil)

	_, err := New(WithPromptDriver(driver)).Render(context.Background(), f, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.inputPos != 2 {
		t.Fatalf("expected two prompts, got %d", driver.inputPos)
	}
	if diff := cmp.Diff([]string{"! This field is required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if driver.inputConfigs[0].Message != "Code *" {
		t.Fatalf("expected required suffix, got %q", driver.inputConfigs[0].Message)
	}
	if f.View().Error {
		t.Fatalf("expected error state cleared after accepted value")
	}
}

func TestRender_ValidatorSetsErrorMessage(t *testing.T) {
	driver := &stubDriver{inputs: []string{"bad", "good"}}
	f := newField(t, field.Config{ID: "name"}, nil)

	r := New(WithPromptDriver(driver), WithValidator(func(value string) error {
		if value == "bad" {
			return errors.New("not allowed")
		}
		return nil
	}))
	out, err := r.Render(context.Background(), f, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"id":"name","label":"Code","value":"good"}` {
		t.Fatalf("unexpected output %s", out)
	}
	if diff := cmp.Diff([]string{"! not allowed"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}
	f := newField(t, field.Config{ID: "name", Required: true}, nil)

	_, err := New(WithPromptDriver(driver), WithMaxAttempts(2)).Render(context.Background(), f, render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if msg := f.View().ErrorMessage; msg != "This field is required" {
		t.Fatalf("expected field to keep error message, got %q", msg)
	}
}

func TestRender_ShowsServerErrorsOnce(t *testing.T) {
	driver := &stubDriver{inputs: []string{"fresh"}}
	f := newField(t, field.Config{ID: "slug"}, nil)

	_, err := New(WithPromptDriver(driver)).Render(context.Background(), f, render.RenderOptions{Errors: []string{"Taken"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"! Taken"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PasswordAndMultilineRouting(t *testing.T) {
	driver := &stubDriver{passwords: []string{"s3cret"}, textAreas: []string{"line one\nline two"}}

	pw := newField(t, field.Config{ID: "pw", Kind: field.KindPassword}, nil)
	r := New(WithPromptDriver(driver), WithOutputFormat(render.OutputFormatFormURLEncoded))
	out, err := r.Render(context.Background(), pw, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render password: %v", err)
	}
	if string(out) != "pw=s3cret" {
		t.Fatalf("unexpected output %q", out)
	}

	bio := newField(t, field.Config{ID: "bio", Label: "Bio", Multiline: true}, nil)
	r = New(WithPromptDriver(driver), WithOutputFormat(render.OutputFormatPrettyText))
	out, err = r.Render(context.Background(), bio, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render textarea: %v", err)
	}
	if string(out) != "Bio: line one\nline two\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if driver.inputPos != 0 {
		t.Fatalf("expected no plain input prompts")
	}
	if r.ContentType() != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}

func TestRender_DisabledSkipsPrompt(t *testing.T) {
	driver := &stubDriver{}
	f := newField(t, field.Config{ID: "locked", Value: "fixed", Disabled: true}, nil)

	out, err := New(WithPromptDriver(driver)).Render(context.Background(), f, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"id":"locked","label":"Code","value":"fixed"}` {
		t.Fatalf("unexpected output %s", out)
	}
}

func TestRender_PropagatesAbort(t *testing.T) {
	driver := &stubDriver{err: ErrAborted}
	f := newField(t, field.Config{ID: "x"}, nil)
	if _, err := New(WithPromptDriver(driver)).Render(context.Background(), f, render.RenderOptions{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRender_HelpFromHelperOrPlaceholder(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a", "b"}}
	r := New(WithPromptDriver(driver))

	withHelper := newField(t, field.Config{ID: "a", HelperText: "Use <strong>letters</strong> &amp; digits"}, nil)
	if _, err := r.Render(context.Background(), withHelper, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	withPlaceholder := newField(t, field.Config{ID: "b", Placeholder: "e.g. AB12"}, nil)
	if _, err := r.Render(context.Background(), withPlaceholder, render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := driver.inputConfigs[0].Help; got != "Use letters & digits" {
		t.Fatalf("unexpected helper help %q", got)
	}
	if got := driver.inputConfigs[1].Help; got != "e.g. AB12" {
		t.Fatalf("unexpected placeholder help %q", got)
	}
}
