package menu

// Config holds the menu settings resolved once per render.
type Config struct {
	// Roots overrides the items passed to the render methods when non-empty.
	Roots []*Item

	ListTag     string `env:"LIST_TAG" envDefault:"ul"`
	ListItemTag string `env:"LIST_ITEM_TAG" envDefault:"li"`

	// MaxDepth limits rendering of nested lists. Zero means unlimited.
	MaxDepth int `env:"MAX_DEPTH" envDefault:"0"`

	ActiveCSS   string `env:"ACTIVE_CSS" envDefault:"active"`
	SelectedCSS string `env:"SELECTED_CSS" envDefault:"selected"`
	FirstCSS    string `env:"FIRST_CSS" envDefault:"first"`
	LastCSS     string `env:"LAST_CSS" envDefault:"last"`
	LinkCSS     string `env:"LINK_CSS" envDefault:""`

	MobileListID   string `env:"MOBILE_LIST_ID" envDefault:"nav-mobile"`
	MobileListCSS  string `env:"MOBILE_LIST_CSS" envDefault:"side-nav"`
	RegularListCSS string `env:"REGULAR_LIST_CSS" envDefault:"right hide-on-med-and-down"`

	DropdownListCSS  string `env:"DROPDOWN_LIST_CSS" envDefault:"dropdown-content"`
	DropdownLinkCSS  string `env:"DROPDOWN_LINK_CSS" envDefault:"dropdown-button"`
	DropdownIDPrefix string `env:"DROPDOWN_ID_PREFIX" envDefault:"dropdown"`
}

// DefaultConfig returns the configuration matching the env defaults.
func DefaultConfig() Config {
	return Config{
		ListTag:          "ul",
		ListItemTag:      "li",
		ActiveCSS:        "active",
		SelectedCSS:      "selected",
		FirstCSS:         "first",
		LastCSS:          "last",
		MobileListID:     "nav-mobile",
		MobileListCSS:    "side-nav",
		RegularListCSS:   "right hide-on-med-and-down",
		DropdownListCSS:  "dropdown-content",
		DropdownLinkCSS:  "dropdown-button",
		DropdownIDPrefix: "dropdown",
	}
}

// withDefaults fills structural fields that cannot be blank.
// CSS fields are left alone: an empty class is a valid setting.
func (c Config) withDefaults() Config {
	if c.ListTag == "" {
		c.ListTag = "ul"
	}
	if c.ListItemTag == "" {
		c.ListItemTag = "li"
	}
	if c.DropdownIDPrefix == "" {
		c.DropdownIDPrefix = "dropdown"
	}
	if c.MaxDepth < 0 {
		c.MaxDepth = 0
	}
	return c
}

// Variant selects the desktop or mobile flavour of a render pass.
type Variant int

const (
	Desktop Variant = iota
	Mobile
)

// Suffix is appended to dropdown panel ids so desktop and mobile panels
// never share an id.
func (v Variant) Suffix() string {
	if v == Mobile {
		return "1"
	}
	return "0"
}

func (v Variant) String() string {
	if v == Mobile {
		return "mobile"
	}
	return "desktop"
}

// RenderContext is the per-request input to selection.
type RenderContext struct {
	Path   string
	Locale string
}
