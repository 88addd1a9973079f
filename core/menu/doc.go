// Package menu renders navigation menus from a tree of navigable items and
// marks the path that leads to the current request.
//
// An item is "selected" when its own URL (or its MenuMatch expression) matches
// the request path, and "active" when one of its descendants is selected.
// Matching is locale-agnostic: a leading "/<locale>/" segment is stripped from
// both the request path and the item URL before comparison.
//
// # Basic Usage
//
//	roots := menu.Link([]*menu.Item{
//		{Title: "Home", URL: menu.URL{Href: "/"}, OriginalID: "1"},
//		{Title: "Services", URL: menu.URL{Path: []string{"services"}}, OriginalID: "2",
//			Children: []*menu.Item{
//				{Title: "Consulting", URL: menu.URL{Href: "/services/consulting"}, OriginalID: "3"},
//			},
//		},
//	})
//
//	r := menu.New(menu.DefaultConfig())
//	rc := menu.RenderContext{Path: "/en/services/consulting", Locale: "en"}
//
//	// Desktop list followed by the mobile list.
//	err := r.Render(rc, roots).Render(ctx, w)
//
// # Dropdown Rendering
//
// RenderDropdown emits four fragments in a fixed order: desktop dropdown
// panels, mobile dropdown panels, the mobile list and the desktop list. Every
// top-level item with children gets a panel whose id carries the variant
// suffix ("0" for desktop, "1" for mobile), and its link in the matching list
// points at that panel through data-activates:
//
//	<ul id="dropdown00" class="dropdown-content">...</ul>
//	<ul id="dropdown01" class="dropdown-content">...</ul>
//	<ul id="nav-mobile" class="side-nav">
//		<li class="active first last"><a class="dropdown-button" href="/services" data-activates="dropdown01">Services</a></li>
//	</ul>
//	<ul class="right hide-on-med-and-down">...</ul>
//
// The individual passes are available as DropdownPanels and List and take the
// variant explicitly, so they can be rendered in any order.
//
// # Depth
//
// Config.MaxDepth limits how deep nested lists are rendered; zero means
// unlimited. The active-state scan always walks the full subtree, so a parent
// stays active even when the selected child is below the render cutoff.
package menu
