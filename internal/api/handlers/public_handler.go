// filepath: internal/api/handlers/public_handler.go
package handlers

import (
	"errors"
	"net/http"
	"studiohub/internal/logging"
	"studiohub/internal/models"
	"studiohub/internal/services"
	"studiohub/internal/web"
)

// Index renders the landing page with featured photos, services and the
// newest testimonials.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	content, err := h.Catalog.LandingContent()
	if err != nil {
		logging.Log.Errorf("Index: failed to load landing content: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "index.html", struct {
		Content *services.LandingContent
	}{content})
}

// Packages renders the package list, sorted by ascending price.
func (h *Handlers) Packages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Catalog.Packages()
	if err != nil {
		logging.Log.Errorf("Packages: failed to load packages: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "packages.html", struct {
		Packages []models.Package
	}{packages})
}

// Gallery renders the photo gallery, optionally filtered by ?category=.
func (h *Handlers) Gallery(w http.ResponseWriter, r *http.Request) {
	page, err := h.Catalog.Gallery(r.URL.Query().Get("category"))
	if err != nil {
		logging.Log.Errorf("Gallery: failed to load gallery: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "gallery.html", struct {
		Page *services.GalleryPage
	}{page})
}

// contactView is the data for the contact form template.
type contactView struct {
	Packages  []models.Package
	Submitted bool
	Error     string
}

// ContactForm renders the lead form with the package selection control.
func (h *Handlers) ContactForm(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, contactView{Submitted: r.URL.Query().Get("submitted") == "1"})
}

// ContactSubmit stores a new inquiry and redirects back with a flash flag.
func (h *Handlers) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderContact(w, contactView{Error: "Could not read the form, please try again."})
		return
	}

	form := services.InquiryForm{
		Name:              r.PostFormValue("name"),
		Email:             r.PostFormValue("email"),
		Phone:             r.PostFormValue("phone"),
		PackageInterested: r.PostFormValue("package"),
		EventDate:         r.PostFormValue("event_date"),
		Message:           r.PostFormValue("message"),
	}

	if _, err := h.Inquiries.SubmitInquiry(form); err != nil {
		if errors.Is(err, services.ErrValidation) {
			h.renderContact(w, contactView{Error: "Please fill in your name and email."})
			return
		}
		logging.Log.Errorf("ContactSubmit: failed to store inquiry: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/contact?submitted=1", http.StatusSeeOther)
}

func (h *Handlers) renderContact(w http.ResponseWriter, view contactView) {
	packages, err := h.Inquiries.PackagesForForm()
	if err != nil {
		logging.Log.Errorf("ContactForm: failed to load packages: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	view.Packages = packages
	web.Render(w, "contact.html", view)
}
