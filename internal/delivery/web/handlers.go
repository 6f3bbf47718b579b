package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"go-jobseeker-backend/internal/domain"
)

type handlers struct {
	noteUC      domain.NoteUsecase
	jobseekerUC domain.JobseekerUsecase
	writerRoles []string
}

// A missing or empty note field is not rejected here: the usecase owns
// the length rule and renders the canonical message for it.
type noteRequest struct {
	Note string `json:"note"`
}

func (h *handlers) listJobseekers(c *fiber.Ctx) error {
	seekers, err := h.jobseekerUC.ListJobseekers(c.Context())
	if err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusOK, "", seekers)
}

func (h *handlers) getJobseeker(c *fiber.Ctx) error {
	id, err := pathID(c, "jobseekerId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	js, err := h.jobseekerUC.GetJobseeker(c.Context(), id)
	if err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusOK, "", js)
}

func (h *handlers) listNotes(c *fiber.Ctx) error {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	notes, err := h.noteUC.ListNotes(c.Context(), jobseekerID)
	if err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusOK, "", notes)
}

func (h *handlers) createNote(c *fiber.Ctx) error {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	note, err := h.noteUC.AddNote(c.Context(), jobseekerID, req.Note, actorID(c))
	if err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusCreated, "Note added successfully", note)
}

func (h *handlers) updateNote(c *fiber.Ctx) error {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	note, err := h.noteUC.UpdateNote(c.Context(), noteID, jobseekerID, req.Note)
	if err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusOK, "Note updated successfully", note)
}

func (h *handlers) deleteNote(c *fiber.Ctx) error {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := h.noteUC.DeleteNote(c.Context(), noteID, jobseekerID); err != nil {
		return failFrom(c, err)
	}
	return success(c, fiber.StatusOK, "Note deleted successfully", nil)
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
