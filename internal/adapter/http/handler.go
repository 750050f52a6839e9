package http

import (
	"context"
	"errors"
	"log"
	"os"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// ResumesStore is the persistence gateway: whole-document snapshots in,
// whole-document snapshots out.
type ResumesStore interface {
	Save(ctx context.Context, doc model.Resume) (model.Resume, error)
	GetByID(ctx context.Context, id string) (model.Resume, error)
	ListSummaries(ctx context.Context) ([]model.Summary, error)
	Delete(ctx context.Context, id string) error
}

// PDFRenderer is the export collaborator turning the printable page into a
// document.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	store    ResumesStore
	renderer PDFRenderer
}

func NewHandler(store ResumesStore, renderer PDFRenderer) *Handler {
	return &Handler{store: store, renderer: renderer}
}

// response is the envelope shared by every JSON endpoint. Hints carries the
// advisory required-field markers; they never block a save.
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Hints   []string    `json:"hints,omitempty"`
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/ping", h.Ping)
	app.Get("/api/templates", h.Templates)
	app.Post("/api/resume", h.SaveResume)
	app.Post("/api/resume/render", h.RenderResume)
	app.Post("/api/resume/export", h.ExportResume)
	app.Get("/api/resume/:id", h.GetResume)
	app.Post("/api/resume/:id/sections/reorder", h.ReorderSections)
	app.Delete("/api/resume/:id", h.DeleteResume)
	app.Get("/api/resumes", h.ListResumes)
}

func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": pingMessage()})
}

func pingMessage() string {
	if m := os.Getenv("PING_MESSAGE"); m != "" {
		return m
	}
	return "ping"
}

// Templates returns the closed template catalog.
func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(response{Success: true, Data: model.Templates})
}

// SaveResume creates or updates a whole-document snapshot. A document
// carrying an id updates in place; one without is created and assigned its
// identity by the store.
func (h *Handler) SaveResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response{Success: false, Message: "Invalid resume payload"})
	}
	doc = model.Normalize(doc)

	updating := doc.ID != ""
	saved, err := h.store.Save(c.Context(), doc)
	if errors.Is(err, repository.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response{Success: false, Message: "Resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to save resume: " + err.Error()})
	}

	// advisory only; an incomplete resume saves fine
	hints, err := model.RequiredFieldHints(saved)
	if err != nil {
		log.Printf("warning: required-field hints unavailable: %v", err)
	}

	message := "Resume created successfully"
	if updating {
		message = "Resume updated successfully"
	}
	return c.JSON(response{Success: true, Data: saved, Message: message, Hints: hints})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	doc, err := h.store.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response{Success: false, Message: "Resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to fetch resume: " + err.Error()})
	}
	return c.JSON(response{Success: true, Data: doc})
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	summaries, err := h.store.ListSummaries(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to fetch resumes: " + err.Error()})
	}
	return c.JSON(response{Success: true, Data: summaries})
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	err := h.store.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response{Success: false, Message: "Resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to delete resume: " + err.Error()})
	}
	return c.JSON(response{Success: true, Message: "Resume deleted successfully"})
}

type reorderReq struct {
	MovedID  string `json:"movedId"`
	TargetID string `json:"targetId"`
}

// ReorderSections applies one drag outcome to a stored document: load,
// permute, commit, save. Unknown section ids fail loudly so the client's
// drag state cannot silently drift from the stored order.
func (h *Handler) ReorderSections(c *fiber.Ctx) error {
	var req reorderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response{Success: false, Message: "Invalid reorder payload"})
	}

	doc, err := h.store.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, repository.ErrResumeNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(response{Success: false, Message: "Resume not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to fetch resume: " + err.Error()})
	}

	order, err := usecase.ReorderSections(doc.SectionOrder, req.MovedID, req.TargetID)
	if errors.Is(err, usecase.ErrSectionNotFound) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response{Success: false, Message: "Section not found: " + err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to reorder sections: " + err.Error()})
	}

	doc, err = usecase.SetSectionOrder(doc, order)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response{Success: false, Message: "Failed to commit order: " + err.Error()})
	}

	saved, err := h.store.Save(c.Context(), doc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to save resume: " + err.Error()})
	}
	return c.JSON(response{Success: true, Data: saved, Message: "Sections reordered successfully"})
}

// RenderResume projects the posted document to its printable HTML page.
// Rendering is total: partially filled documents render with fallbacks, and
// a document with no content at all renders the empty-state placeholder.
func (h *Handler) RenderResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response{Success: false, Message: "Invalid resume payload"})
	}

	html, err := usecase.RenderPage(model.Normalize(doc))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to render resume: " + err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportResume renders the posted document and hands the page to the PDF
// collaborator.
func (h *Handler) ExportResume(c *fiber.Ctx) error {
	var doc model.Resume
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(response{Success: false, Message: "Invalid resume payload"})
	}

	html, err := usecase.RenderPage(model.Normalize(doc))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to render resume: " + err.Error()})
	}

	pdf, err := h.renderer.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(response{Success: false, Message: "Failed to export resume: " + err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}
