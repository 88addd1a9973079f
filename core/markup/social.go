package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	DefaultButtonClasses = "social-btn btn-large btn-floating waves-effect"
	defaultIconClasses   = "social-icon fa"
)

type socialOptions struct {
	buttonClasses string
	iconClasses   string
}

// SocialOption customizes SocialButton.
type SocialOption func(*socialOptions)

// WithButtonClasses replaces the classes of the button wrapper.
func WithButtonClasses(classes string) SocialOption {
	return func(o *socialOptions) { o.buttonClasses = classes }
}

// WithIconClasses replaces the classes of the icon element, icon name included.
func WithIconClasses(classes string) SocialOption {
	return func(o *socialOptions) { o.iconClasses = classes }
}

// SocialButton renders a floating link button with a Font Awesome icon:
//
//	<div class="social-padding"><div class="social-btn ..."><a href="URL"><i class="social-icon fa ICON"></i></a></div></div>
//
// The url is rendered through templ's URL sanitizer.
func SocialButton(url, icon string, opts ...SocialOption) templ.Component {
	o := socialOptions{
		buttonClasses: DefaultButtonClasses,
		iconClasses:   strings.TrimSpace(defaultIconClasses + " " + icon),
	}
	for _, opt := range opts {
		opt(&o)
	}

	href := string(templ.URL(url))
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div class="social-padding"><div class="`+templ.EscapeString(o.buttonClasses)+`">`+
				`<a href="`+templ.EscapeString(href)+`">`+
				`<i class="`+templ.EscapeString(o.iconClasses)+`"></i></a></div></div>`)
		return err
	})
}

// SocialLink is one configured social profile.
type SocialLink struct {
	Icon string
	URL  string
}

// SocialButtons renders a button per link, in order.
func SocialButtons(links []SocialLink, opts ...SocialOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, l := range links {
			if err := SocialButton(l.URL, l.Icon, opts...).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// ParseSocialLinks reads "icon=url" pairs separated by commas, such as
// "fa-github=https://github.com/x,fa-twitter=https://twitter.com/x".
// Malformed pairs are skipped.
func ParseSocialLinks(s string) []SocialLink {
	var links []SocialLink
	for pair := range strings.SplitSeq(s, ",") {
		icon, url, ok := strings.Cut(strings.TrimSpace(pair), "=")
		icon, url = strings.TrimSpace(icon), strings.TrimSpace(url)
		if !ok || icon == "" || url == "" {
			continue
		}
		links = append(links, SocialLink{Icon: icon, URL: url})
	}
	return links
}
