package field

// View is the render snapshot of a Field. Renderers receive it by value and
// may localize or decorate their copy freely.
type View struct {
	ID       string
	Label    string
	LabelKey string
	Value    string
	Kind     InputKind

	Required  bool
	Disabled  bool
	Multiline bool
	MaxLength int

	Placeholder    string
	PlaceholderKey string
	// ShrinkLabel pins the label above the control. It is set whenever a
	// placeholder is present so the two never overlap.
	ShrinkLabel bool

	Error        bool
	ErrorMessage string

	HelperText    string
	HelperTextKey string

	// Transform is the transform name ("lowerCase", "upperCase", "custom" or
	// empty). The vanilla browser runtime replays the case transforms; custom
	// functions only run server-side.
	Transform string
	Layout    Layout
}

// DescribedBy returns the ids of the helper elements that describe the
// control, in render order.
func (v View) DescribedBy() []string {
	var ids []string
	if v.Error {
		ids = append(ids, v.ID+"-helper-text")
	}
	if v.HelperText != "" {
		ids = append(ids, v.ID+"-helper")
	}
	return ids
}
