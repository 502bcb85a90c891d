package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/acadify/acadify-api/internal/api/dto"
	"github.com/acadify/acadify-api/internal/domain"
	"github.com/acadify/acadify-api/internal/mocks"
	"github.com/acadify/acadify-api/pkg/logger"
)

type StudentServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockStudent *mocks.StudentRepository
	mockSearch  *mocks.StudentSearchRepository
	service     *StudentService
}

func (s *StudentServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockStudent = new(mocks.StudentRepository)
	s.mockSearch = new(mocks.StudentSearchRepository)

	s.mockRepo.On("Student").Return(s.mockStudent)
	s.mockRepo.On("StudentSearch").Return(s.mockSearch)

	s.service = NewStudentService(s.mockRepo, logger.NewLogger("test"))
}

func TestStudentService(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}

func (s *StudentServiceTestSuite) TestCreate_DefaultsAndIndexing() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	req := dto.CreateStudentRequest{BranchID: "branch1", Name: "Priya Nair"}

	s.mockStudent.On("Create", ctx, mock.MatchedBy(func(st *domain.Student) bool {
		return st.TenantID == "tenant1" &&
			st.Status == domain.StudentActive &&
			!st.EnrolledAt.IsZero()
	})).Return(&domain.Student{ID: "student1", TenantID: "tenant1", Name: "Priya Nair"}, nil)
	s.mockSearch.On("Index", ctx, mock.AnythingOfType("*domain.Student")).Return(nil)

	student, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.Equal("student1", student.ID)
	s.mockSearch.AssertExpectations(s.T())
}

func (s *StudentServiceTestSuite) TestCreate_IndexFailureIsNotFatal() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	req := dto.CreateStudentRequest{Name: "Priya Nair"}

	s.mockStudent.On("Create", ctx, mock.AnythingOfType("*domain.Student")).
		Return(&domain.Student{ID: "student1", TenantID: "tenant1"}, nil)
	s.mockSearch.On("Index", ctx, mock.AnythingOfType("*domain.Student")).
		Return(errors.New("index unavailable"))

	student, err := s.service.Create(ctx, req)

	s.NoError(err)
	s.NotNil(student)
}

func (s *StudentServiceTestSuite) TestCreate_NoTenantClaim() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "")

	_, err := s.service.Create(ctx, dto.CreateStudentRequest{Name: "Priya Nair"})

	s.ErrorIs(err, ErrTenantIDRequired)
	s.mockStudent.AssertNotCalled(s.T(), "Create")
}

func (s *StudentServiceTestSuite) TestList_FreeTextGoesToSearchIndex() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	filter := &domain.StudentFilter{Query: "priya"}

	s.mockSearch.On("Search", ctx, mock.MatchedBy(func(f *domain.StudentFilter) bool {
		return f.TenantID == "tenant1" && f.Query == "priya"
	})).Return([]domain.Student{{ID: "student1"}}, nil)

	students, err := s.service.List(ctx, filter, true)

	s.NoError(err)
	s.Len(students, 1)
	s.mockStudent.AssertNotCalled(s.T(), "List")
}

func (s *StudentServiceTestSuite) TestList_PlainFiltersStayRelational() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	filter := &domain.StudentFilter{Status: "ACTIVE", Page: 2, PageSize: 25}

	s.mockStudent.On("List", ctx, mock.MatchedBy(func(f domain.StudentFilter) bool {
		return f.TenantID == "tenant1" && f.Limit == 25 && f.Offset == 25
	})).Return([]domain.Student{}, nil)

	_, err := s.service.List(ctx, filter, true)

	s.NoError(err)
	s.mockSearch.AssertNotCalled(s.T(), "Search")
}

func (s *StudentServiceTestSuite) TestDelete_RemovesFromIndex() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	student := &domain.Student{ID: "student1", TenantID: "tenant1"}

	s.mockStudent.On("GetByID", ctx, "student1").Return(student, nil)
	s.mockStudent.On("Delete", ctx, "student1").Return(nil)
	s.mockSearch.On("Remove", ctx, "tenant1", "student1").Return(nil)

	s.NoError(s.service.Delete(ctx, "student1"))
	s.mockSearch.AssertExpectations(s.T())
}

func (s *StudentServiceTestSuite) TestDelete_NotFound() {
	ctx := ctxWithClaims(string(domain.RoleAdmin), "tenant1")
	s.mockStudent.On("GetByID", ctx, "missing").Return(nil, nil)

	err := s.service.Delete(ctx, "missing")
	s.ErrorIs(err, ErrStudentNotFound)
}
