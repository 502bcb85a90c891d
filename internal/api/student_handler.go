package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/service"
	"github.com/acadify/acadify-api/pkg/datatable"
	"github.com/acadify/acadify-api/pkg/utils"
)

//go:generate mockery --name StudentService --output ../mocks
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *domain.StudentFilter, usePagination bool) ([]domain.Student, error)
}

type StudentHandler struct {
	*BaseHandler
	service StudentService
}

func NewStudentHandler(base *BaseHandler, service StudentService) *StudentHandler {
	return &StudentHandler{BaseHandler: base, service: service}
}

// studentTable defines the export columns and the in-memory filter stages
// applied on top of the database filter.
func studentTable() *datatable.Table[domain.Student] {
	return &datatable.Table[domain.Student]{
		Columns: []datatable.Column[domain.Student]{
			{Key: "name", Title: "Name", Searchable: true, Sortable: true, Value: func(s domain.Student) string { return s.Name }},
			{Key: "email", Title: "Email", Searchable: true, Sortable: true, Value: func(s domain.Student) string { return s.Email }},
			{Key: "phone", Title: "Phone", Searchable: true, Value: func(s domain.Student) string { return s.Phone }},
			{Key: "status", Title: "Status", Sortable: true, Value: func(s domain.Student) string { return string(s.Status) }},
			{Key: "enrolled_at", Title: "Enrolled", Sortable: true, Value: func(s domain.Student) string { return s.EnrolledAt.Format("2006-01-02") },
				Export: func(s domain.Student) any { return s.EnrolledAt.Format(time.RFC3339) },
				Less:   func(a, b domain.Student) bool { return a.EnrolledAt.Before(b.EnrolledAt) }},
		},
		Filters: map[string]func(domain.Student, string) bool{
			"status": func(s domain.Student, v string) bool { return string(s.Status) == v },
			"branch_id": func(s domain.Student, v string) bool {
				return s.BranchID == v
			},
		},
	}
}

// CreateStudent Create a student
// @Summary Create student
// @Tags    students
// @Accept  json
// @Produce json
// @Param   body body dto.CreateStudentRequest true "Student"
// @Success 201 {object} dto.Envelope{data=domain.Student}
// @Failure 400 {object} dto.Envelope
// @Router  /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	student, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.Created(c, student)
}

// GetStudent Get a student
// @Summary Get student
// @Tags    students
// @Produce json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.Envelope{data=domain.Student}
// @Failure 404 {object} dto.Envelope
// @Router  /students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if student == nil {
		h.RespondError(c, service.ErrStudentNotFound)
		return
	}

	h.OK(c, student)
}

// UpdateStudent Update a student
// @Summary Update student
// @Tags    students
// @Accept  json
// @Produce json
// @Param   id path string true "Student ID"
// @Param   body body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=domain.Student}
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err)
		return
	}

	student, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, student)
}

// DeleteStudent Delete a student
// @Summary Delete student
// @Tags    students
// @Produce json
// @Param   id path string true "Student ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router  /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, nil)
}

// ListStudents List students with filtering and pagination
// @Summary List students
// @Tags    students
// @Produce json
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Param   q query string false "Free-text search across name, email, phone"
// @Param   status query string false "Filter by status"
// @Param   branch_id query string false "Filter by branch"
// @Param   start_time query string false "Enrolled on or after (RFC3339 or YYYY-MM-DD)"
// @Param   end_time query string false "Enrolled on or before (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.Envelope{data=[]domain.Student}
// @Failure 400 {object} dto.Envelope
// @Router  /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	filter, err := studentFilterFromQuery(c)
	if err != nil {
		h.BadRequest(c, err)
		return
	}

	students, err := h.service.List(h.RequestCtx(c), filter, true)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	h.OK(c, students)
}

// ExportStudents Export students in csv, xlsx, or pdf format
// @Summary Export students
// @Description Export applies the same filters and search as the list but
// @Description covers every matching row, not just the current page
// @Tags    students
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param   format query string false "Export format (csv, xlsx, or pdf)" default(csv)
// @Param   q query string false "Free-text search"
// @Param   status query string false "Filter by status"
// @Param   branch_id query string false "Filter by branch"
// @Param   sort query string false "Sort column key"
// @Param   dir query string false "Sort direction (asc or desc)"
// @Success 200 {file} file
// @Failure 400 {object} dto.Envelope
// @Router  /students/export [get]
func (h *StudentHandler) ExportStudents(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" && format != "pdf" {
		h.BadRequest(c, fmt.Errorf("invalid format %q, must be csv, xlsx, or pdf", format))
		return
	}

	filter, err := studentFilterFromQuery(c)
	if err != nil {
		h.BadRequest(c, err)
		return
	}
	// Search and sort run in the table pipeline so the database returns the
	// full filtered set.
	filter.Query = ""

	students, err := h.service.List(h.RequestCtx(c), filter, false)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	table := studentTable()
	state := datatable.NewState(len(students) + 1).
		WithSearch(c.Query("q")).
		WithFilter("status", c.Query("status")).
		WithFilter("branch_id", c.Query("branch_id"))
	if sortKey := c.Query("sort"); sortKey != "" {
		state.SortKey = sortKey
		state.SortDir = datatable.DirAsc
		if c.Query("dir") == "desc" {
			state.SortDir = datatable.DirDesc
		}
	}

	filename := "students_" + time.Now().Format("2006-01-02")
	switch format {
	case "csv":
		c.Header("Content-Disposition", "attachment; filename="+filename+".csv")
		c.Header("Content-Type", "text/csv")
		err = table.ExportCSV(c.Writer, students, state)
	case "xlsx":
		c.Header("Content-Disposition", "attachment; filename="+filename+".xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		err = table.ExportXLSX(c.Writer, students, state, "Students")
	case "pdf":
		c.Header("Content-Disposition", "attachment; filename="+filename+".pdf")
		c.Header("Content-Type", "application/pdf")
		err = table.ExportPDF(c.Writer, students, state, "Students")
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(http.StatusInternalServerError, "export failed", err.Error()))
	}
}

func studentFilterFromQuery(c *gin.Context) (*domain.StudentFilter, error) {
	filter := &domain.StudentFilter{
		BranchID: c.Query("branch_id"),
		Status:   c.Query("status"),
		Query:    c.Query("q"),
	}

	if page := c.Query("page"); page != "" {
		if pageNum, err := strconv.Atoi(page); err == nil {
			filter.Page = pageNum
		}
	}
	if pageSize := c.Query("page_size"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil {
			filter.PageSize = size
		}
	}

	if startTime := c.Query("start_time"); startTime != "" {
		t, err := utils.ParseUserTime(startTime, false)
		if err != nil {
			return nil, err
		}
		filter.StartTime = t
	}
	if endTime := c.Query("end_time"); endTime != "" {
		t, err := utils.ParseUserTime(endTime, true)
		if err != nil {
			return nil, err
		}
		filter.EndTime = t
	}

	return filter, nil
}
