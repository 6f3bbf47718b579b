package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobseeker-backend/internal/delivery/http/middleware"
	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/apperror"
)

type NoteHandler struct {
	noteUC domain.NoteUsecase
}

// NewNoteHandler registers the note routes. Reads need authentication
// only; writes additionally pass the writer-role gate.
func NewNoteHandler(protected *gin.RouterGroup, noteUC domain.NoteUsecase, writerRoles []string) {
	handler := &NoteHandler{noteUC: noteUC}

	notes := protected.Group("/jobseekers/:jobseekerId/notes")
	{
		notes.GET("", handler.List)

		writers := notes.Group("")
		writers.Use(middleware.RequireRole(writerRoles))
		{
			writers.POST("", handler.Create)
			writers.PUT("/:noteId", handler.Update)
			writers.DELETE("/:noteId", handler.Delete)
		}
	}
}

type NoteRequest struct {
	Note string `json:"note"`
}

// List godoc
// @Summary      List notes for a jobseeker
// @Description  Get all notes on a jobseeker, newest first, with author names
// @Tags         notes
// @Produce      json
// @Param        jobseekerId  path      int  true  "Jobseeker ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobseekers/{jobseekerId}/notes [get]
// @Security     BearerAuth
func (h *NoteHandler) List(c *gin.Context) {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		c.Error(err)
		return
	}

	notes, err := h.noteUC.ListNotes(c.Request.Context(), jobseekerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", notes)
}

// Create godoc
// @Summary      Add a note to a jobseeker
// @Description  Create a free-text note (writer roles only, min length enforced)
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        jobseekerId  path      int          true  "Jobseeker ID"
// @Param        note         body      NoteRequest  true  "Note JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobseekers/{jobseekerId}/notes [post]
// @Security     BearerAuth
func (h *NoteHandler) Create(c *gin.Context) {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		c.Error(err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	note, err := h.noteUC.AddNote(c.Request.Context(), jobseekerID, req.Note, middleware.ActorID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Note added successfully", note)
}

// Update godoc
// @Summary      Update a note
// @Description  Overwrite a note's text; the note must belong to the jobseeker in the path
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        jobseekerId  path      int          true  "Jobseeker ID"
// @Param        noteId       path      int          true  "Note ID"
// @Param        note         body      NoteRequest  true  "Note JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobseekers/{jobseekerId}/notes/{noteId} [put]
// @Security     BearerAuth
func (h *NoteHandler) Update(c *gin.Context) {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		c.Error(err)
		return
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		c.Error(err)
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	note, err := h.noteUC.UpdateNote(c.Request.Context(), noteID, jobseekerID, req.Note)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Note updated successfully", note)
}

// Delete godoc
// @Summary      Delete a note
// @Description  Permanently delete a note belonging to the jobseeker in the path
// @Tags         notes
// @Produce      json
// @Param        jobseekerId  path      int  true  "Jobseeker ID"
// @Param        noteId       path      int  true  "Note ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobseekers/{jobseekerId}/notes/{noteId} [delete]
// @Security     BearerAuth
func (h *NoteHandler) Delete(c *gin.Context) {
	jobseekerID, err := pathID(c, "jobseekerId")
	if err != nil {
		c.Error(err)
		return
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.noteUC.DeleteNote(c.Request.Context(), noteID, jobseekerID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Note deleted successfully", nil)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
