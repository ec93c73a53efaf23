package preset

// Preset is a named collection of component descriptions loaded from YAML.
type Preset struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description,omitempty"`
	Components  []Entry `yaml:"components" validate:"required,min=1,dive"`
}

// Entry describes one component. Styles are chain expressions such as
// "Margin.S3.FromTop.OnTablet".
type Entry struct {
	ID              string            `yaml:"id" validate:"required,component_id"`
	Tag             string            `yaml:"tag,omitempty" validate:"omitempty,tag_name"`
	Text            string            `yaml:"text,omitempty"`
	Class           string            `yaml:"class,omitempty"`
	Style           string            `yaml:"style,omitempty"`
	Title           string            `yaml:"title,omitempty"`
	Role            string            `yaml:"role,omitempty"`
	AriaLabel       string            `yaml:"aria_label,omitempty"`
	Hidden          bool              `yaml:"hidden,omitempty"`
	TabIndex        *int              `yaml:"tabindex,omitempty"`
	TextColor       string            `yaml:"text_color,omitempty"`
	BackgroundColor string            `yaml:"background_color,omitempty"`
	Attributes      map[string]string `yaml:"attributes,omitempty" validate:"omitempty,dive,keys,attr_name,endkeys"`
	Styles          []string          `yaml:"styles,omitempty" validate:"omitempty,dive,required"`
}

// TagOrDefault returns the entry's tag, or div when none is set.
func (e Entry) TagOrDefault() string {
	if e.Tag == "" {
		return "div"
	}
	return e.Tag
}

// Find returns the entry with the given id.
func (p *Preset) Find(id string) (Entry, bool) {
	if p == nil {
		return Entry{}, false
	}
	for _, e := range p.Components {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
