package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
)

type JobseekerHandler struct {
	jobseekerUC domain.JobseekerUsecase
}

func NewJobseekerHandler(protected *gin.RouterGroup, jobseekerUC domain.JobseekerUsecase) {
	handler := &JobseekerHandler{jobseekerUC: jobseekerUC}

	protected.GET("/jobseekers", handler.List)
	protected.GET("/jobseekers/:jobseekerId", handler.GetDetails)
}

// List godoc
// @Summary      List jobseekers
// @Tags         jobseekers
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobseekers [get]
// @Security     BearerAuth
func (h *JobseekerHandler) List(c *gin.Context) {
	seekers, err := h.jobseekerUC.ListJobseekers(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", seekers)
}

// GetDetails godoc
// @Summary      Get jobseeker details
// @Tags         jobseekers
// @Produce      json
// @Param        jobseekerId  path      int  true  "Jobseeker ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobseekers/{jobseekerId} [get]
// @Security     BearerAuth
func (h *JobseekerHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c, "jobseekerId")
	if err != nil {
		c.Error(err)
		return
	}

	js, err := h.jobseekerUC.GetJobseeker(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "", js)
}
