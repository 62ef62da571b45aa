package models

// Attributes is the presentation payload a renderer attaches to a hex.
// The coordinate code never reads it; boards store it keyed by hex ID.
type Attributes struct {
	Blocked   bool   `json:"blocked,omitempty" yaml:"blocked,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Image     string `json:"image,omitempty" yaml:"image,omitempty"`
	Fill      string `json:"fill,omitempty" yaml:"fill,omitempty"`             // colour name, e.g. "lightsteelblue"
	ClassName string `json:"class_name,omitempty" yaml:"class_name,omitempty"` // CSS class for web renderers
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// State is free-form renderer state.
	State map[string]any `json:"state,omitempty" yaml:"state,omitempty"`
}

// IsBlocked reports whether paths may not enter the hex.
func (a Attributes) IsBlocked() bool {
	return a.Blocked
}

// Merge overlays the non-zero fields of o onto a copy of a.
func (a Attributes) Merge(o Attributes) Attributes {
	if o.Blocked {
		a.Blocked = true
	}
	if o.Text != "" {
		a.Text = o.Text
	}
	if o.Image != "" {
		a.Image = o.Image
	}
	if o.Fill != "" {
		a.Fill = o.Fill
	}
	if o.ClassName != "" {
		a.ClassName = o.ClassName
	}
	if o.Pattern != "" {
		a.Pattern = o.Pattern
	}
	if len(o.State) > 0 {
		merged := make(map[string]any, len(a.State)+len(o.State))
		for k, v := range a.State {
			merged[k] = v
		}
		for k, v := range o.State {
			merged[k] = v
		}
		a.State = merged
	}
	return a
}
