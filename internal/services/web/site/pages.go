package site

import (
	"net/http"

	"github.com/boyalintegrated/boyalintegrated.com/internal/catalog"
	"github.com/boyalintegrated/boyalintegrated.com/internal/services/web/state"
)

var pageTitles = map[state.PageID]string{
	state.PageHome:     "Boyal Integrated Service",
	state.PageAbout:    "About Us",
	state.PageServices: "Our Services",
	state.PageGallery:  "Gallery",
	state.PageProducts: "Products",
	state.PageBooking:  "Book an Event",
	state.PageContact:  "Contact Us",
}

var pageTemplates = map[state.PageID]string{
	state.PageHome:          "home",
	state.PageAbout:         "about",
	state.PageServices:      "services",
	state.PageServiceDetail: "service_detail",
	state.PageGallery:       "gallery",
	state.PageProducts:      "products",
	state.PageProductDetail: "product_detail",
	state.PageBooking:       "booking",
	state.PageContact:       "contact",
}

func (h Handler) page(w http.ResponseWriter, r *http.Request) {
	nav, ok := state.FromPath(r.URL.Path)
	if !ok {
		h.notFound(w, r)
		return
	}

	data, _ := h.baseData(w, r, nav)
	data.Title = pageTitles[nav.Page]

	switch nav.Page {
	case state.PageServices:
		if c := catalog.ServiceCategory(r.URL.Query().Get("category")); c.Valid() {
			data.Category = string(c)
		}
	case state.PageProducts:
		if c := catalog.ProductCategory(r.URL.Query().Get("category")); c.Valid() {
			data.Category = string(c)
		}
	case state.PageAbout:
		data.AboutMD = aboutMarkdown
		data.Values = companyValues()
		data.Stats = companyStats()
		data.Showcases = artistShowcases()
	case state.PageGallery:
		data.Gallery = galleryImages()
	case state.PageServiceDetail:
		data.Service, data.Found = data.Catalog.ServiceByTitle(nav.Service)
		data.Missing = nav.Service
		data.Title = nav.Service
		if !data.Found {
			h.rd.renderPage(w, r, http.StatusNotFound, "service_detail", data)
			return
		}
	case state.PageProductDetail:
		data.Product, data.Found = data.Catalog.ProductByName(nav.Product)
		data.Missing = nav.Product
		data.Title = nav.Product
		if !data.Found {
			h.rd.renderPage(w, r, http.StatusNotFound, "product_detail", data)
			return
		}
	}

	if isHXRequest(r) {
		writeNavigationEffects(w, state.Effects{CloseMenu: true, ResetScroll: true})
	}
	h.rd.renderPage(w, r, http.StatusOK, pageTemplates[nav.Page], data)
}

func (h Handler) notFound(w http.ResponseWriter, r *http.Request) {
	data, _ := h.baseData(w, r, state.Home())
	data.Title = "Page Not Found"
	h.rd.renderPage(w, r, http.StatusNotFound, "not_found", data)
}

// retryConnection refetches the catalog and re-renders the current page,
// letting a visitor stuck in demo mode recover without a full reload.
func (h Handler) retryConnection(w http.ResponseWriter, r *http.Request) {
	h.loader.Retry(r.Context())

	target := r.Header.Get("HX-Current-URL")
	if target == "" {
		target = r.FormValue("from")
	}
	nav, ok := state.FromPathOrURL(target)
	if !ok {
		nav = state.Home()
	}

	if isHXRequest(r) {
		r.URL.Path = nav.Path()
		h.page(w, r)
		return
	}
	http.Redirect(w, r, nav.Path(), http.StatusSeeOther)
}
