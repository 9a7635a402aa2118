// Package state models the website navigation: which page is shown and
// which catalog detail, if any, is selected.
package state

import "strings"

// PageID identifies one top-level page. The set is closed; anything else
// renders the not-found page.
type PageID string

const (
	PageHome          PageID = "home"
	PageAbout         PageID = "about"
	PageServices      PageID = "services"
	PageServiceDetail PageID = "serviceDetail"
	PageGallery       PageID = "gallery"
	PageProducts      PageID = "products"
	PageProductDetail PageID = "productDetail"
	PageBooking       PageID = "booking"
	PageContact       PageID = "contact"
)

// Valid reports whether p is a known page.
func (p PageID) Valid() bool {
	switch p {
	case PageHome, PageAbout, PageServices, PageServiceDetail, PageGallery,
		PageProducts, PageProductDetail, PageBooking, PageContact:
		return true
	}
	return false
}

// NavLink is one entry in the site header.
type NavLink struct {
	Page  PageID
	Title string
	Path  string
}

// NavLinks lists the header links in display order. Detail pages are
// reached from their list pages, not the header.
func NavLinks() []NavLink {
	return []NavLink{
		{Page: PageHome, Title: "Home", Path: "/"},
		{Page: PageAbout, Title: "About", Path: "/about"},
		{Page: PageServices, Title: "Services", Path: "/services"},
		{Page: PageGallery, Title: "Gallery", Path: "/gallery"},
		{Page: PageProducts, Title: "Products", Path: "/products"},
		{Page: PageBooking, Title: "Booking", Path: "/booking"},
		{Page: PageContact, Title: "Contact", Path: "/contact"},
	}
}

// Navigation is the current position in the site.
type Navigation struct {
	Page PageID
	// Service holds the selected service title on the service detail page.
	Service string
	// Product holds the selected product name on the product detail page.
	Product string
	// MenuOpen tracks the mobile navigation drawer.
	MenuOpen bool
}

// Home returns the initial navigation state.
func Home() Navigation {
	return Navigation{Page: PageHome}
}

// Effects tells the caller what the browser must do after a transition.
// The fields marshal into the htmx trigger payload.
type Effects struct {
	CloseMenu   bool `json:"closeMenu"`
	ResetScroll bool `json:"resetScroll"`
}

// Navigate moves to a page, clearing any detail selection that does not
// belong to the target. It always closes the mobile menu and scrolls to top.
func (n Navigation) Navigate(page PageID) (Navigation, Effects) {
	if !page.Valid() || page == PageServiceDetail || page == PageProductDetail {
		// Detail pages need a selection; use NavigateService/NavigateProduct.
		page = PageHome
	}
	next := Navigation{Page: page}
	return next, Effects{CloseMenu: n.MenuOpen, ResetScroll: true}
}

// NavigateService opens the detail page for the named service.
func (n Navigation) NavigateService(title string) (Navigation, Effects) {
	next := Navigation{Page: PageServiceDetail, Service: title}
	return next, Effects{CloseMenu: n.MenuOpen, ResetScroll: true}
}

// NavigateProduct opens the detail page for the named product.
func (n Navigation) NavigateProduct(name string) (Navigation, Effects) {
	next := Navigation{Page: PageProductDetail, Product: name}
	return next, Effects{CloseMenu: n.MenuOpen, ResetScroll: true}
}

// ToggleMenu flips the mobile drawer without changing the page.
func (n Navigation) ToggleMenu() Navigation {
	n.MenuOpen = !n.MenuOpen
	return n
}

// Path returns the canonical URL for the current position.
func (n Navigation) Path() string {
	switch n.Page {
	case PageHome:
		return "/"
	case PageServiceDetail:
		return "/services/" + pathEscapeName(n.Service)
	case PageProductDetail:
		return "/products/" + pathEscapeName(n.Product)
	default:
		return "/" + string(n.Page)
	}
}

// FromPath parses a request path into a navigation state. Unknown paths
// return ok=false so the handler can render the not-found page.
func FromPath(path string) (Navigation, bool) {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return Home(), true
	}

	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	switch {
	case len(parts) == 1:
		page := PageID(parts[0])
		if page.Valid() && page != PageServiceDetail && page != PageProductDetail {
			return Navigation{Page: page}, true
		}
	case len(parts) == 2 && parts[0] == "services" && parts[1] != "":
		return Navigation{Page: PageServiceDetail, Service: unescapeName(parts[1])}, true
	case len(parts) == 2 && parts[0] == "products" && parts[1] != "":
		return Navigation{Page: PageProductDetail, Product: unescapeName(parts[1])}, true
	}
	return Navigation{}, false
}
