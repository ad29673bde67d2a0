package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyServiceTestSuite struct {
	suite.Suite
	repo     *MockCompanyRepository
	service  portssvc.CompanySvcFacade
	ctx      context.Context
	callerID string
}

func (s *CompanyServiceTestSuite) SetupTest() {
	s.repo = new(MockCompanyRepository)
	s.service = services.NewCompanyService(s.repo)
	s.ctx = context.Background()
	s.callerID = "admin-1"
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}

func (s *CompanyServiceTestSuite) member(companyID int64, userID string, admin bool) {
	s.repo.On("FindCompanyUser", s.ctx, companyID, userID).
		Return(&domain.CompanyUser{CompanyID: companyID, UserID: userID, IsAdmin: admin}, nil)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_ChileanRUTIsCanonicalized() {
	s.repo.On("FindCompanyByTaxID", s.ctx, "11.111.111-1").Return(nil, notFound("company not found")).Once()
	s.repo.On("CreateCompanyWithAdmin", s.ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.TaxID == "11.111.111-1"
	}), s.callerID).Return(&domain.Company{ID: 1, TaxID: "11.111.111-1"}, nil).Once()

	created, err := s.service.CreateCompany(s.ctx, s.callerID, domain.Company{
		Name: "Comercial", TaxID: "111111111", Country: ptr("chile"),
	})

	s.Require().NoError(err)
	s.Equal(int64(1), created.ID)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_InvalidChileanRUT() {
	_, err := s.service.CreateCompany(s.ctx, s.callerID, domain.Company{
		Name: "Comercial", TaxID: "11111111-2", Country: ptr("Chile"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_ForeignTaxIDIsKeptVerbatim() {
	s.repo.On("FindCompanyByTaxID", s.ctx, "B12345678").Return(nil, notFound("company not found")).Once()
	s.repo.On("CreateCompanyWithAdmin", s.ctx, mock.Anything, s.callerID).Return(&domain.Company{ID: 2}, nil).Once()

	_, err := s.service.CreateCompany(s.ctx, s.callerID, domain.Company{Name: "Iberia SL", TaxID: "B12345678", Country: ptr("Spain")})

	s.NoError(err)
}

func (s *CompanyServiceTestSuite) TestCreateCompany_DuplicateTaxID() {
	s.repo.On("FindCompanyByTaxID", s.ctx, "B1").Return(&domain.Company{ID: 9}, nil).Once()
	_, err := s.service.CreateCompany(s.ctx, s.callerID, domain.Company{Name: "X", TaxID: "B1"})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CompanyServiceTestSuite) TestGetCompany_RequiresMembership() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.repo.On("FindCompanyUser", s.ctx, int64(1), "outsider").Return(nil, notFound("user is not assigned to this company")).Once()

	_, err := s.service.GetCompany(s.ctx, "outsider", 1)

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *CompanyServiceTestSuite) TestUpdateCompany_MemberIsNotAdmin() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1, TaxID: "B1"}, nil).Once()
	s.member(1, "member-1", false)

	_, err := s.service.UpdateCompany(s.ctx, "member-1", 1, domain.CompanyPatch{Name: ptr("New")})

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.repo.AssertNotCalled(s.T(), "UpdateCompany", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CompanyServiceTestSuite) TestAddUserToCompany_AlreadyAssigned() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.member(1, s.callerID, true)
	s.member(1, "user-2", false)

	err := s.service.AddUserToCompany(s.ctx, s.callerID, 1, "user-2", false)

	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *CompanyServiceTestSuite) TestAddUserToCompany_Success() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.member(1, s.callerID, true)
	s.repo.On("FindCompanyUser", s.ctx, int64(1), "user-3").Return(nil, notFound("user is not assigned to this company")).Once()
	s.repo.On("AddCompanyUser", s.ctx, domain.CompanyUser{CompanyID: 1, UserID: "user-3", IsAdmin: true}).Return(nil).Once()

	s.NoError(s.service.AddUserToCompany(s.ctx, s.callerID, 1, "user-3", true))
	s.repo.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestRemoveUserFromCompany_NotAssigned() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.member(1, s.callerID, true)
	s.repo.On("ListCompanyUsers", s.ctx, int64(1)).
		Return([]domain.CompanyUser{{CompanyID: 1, UserID: s.callerID, IsAdmin: true}}, nil).Once()
	s.repo.On("RemoveCompanyUser", s.ctx, int64(1), "ghost").Return(false, nil).Once()

	err := s.service.RemoveUserFromCompany(s.ctx, s.callerID, 1, "ghost")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CompanyServiceTestSuite) TestRemoveUserFromCompany_LastAdminStays() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.member(1, s.callerID, true)
	s.repo.On("ListCompanyUsers", s.ctx, int64(1)).Return([]domain.CompanyUser{
		{CompanyID: 1, UserID: s.callerID, IsAdmin: true},
		{CompanyID: 1, UserID: "bookkeeper"},
	}, nil).Once()

	err := s.service.RemoveUserFromCompany(s.ctx, s.callerID, 1, s.callerID)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.EqualError(err, "a company must keep at least one admin")
	s.repo.AssertNotCalled(s.T(), "RemoveCompanyUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CompanyServiceTestSuite) TestRemoveUserFromCompany_AdminLeavesWhenAnotherRemains() {
	s.repo.On("FindCompanyByID", s.ctx, int64(1)).Return(&domain.Company{ID: 1}, nil).Once()
	s.member(1, s.callerID, true)
	s.repo.On("ListCompanyUsers", s.ctx, int64(1)).Return([]domain.CompanyUser{
		{CompanyID: 1, UserID: s.callerID, IsAdmin: true},
		{CompanyID: 1, UserID: "co-owner", IsAdmin: true},
	}, nil).Once()
	s.repo.On("RemoveCompanyUser", s.ctx, int64(1), s.callerID).Return(true, nil).Once()

	s.NoError(s.service.RemoveUserFromCompany(s.ctx, s.callerID, 1, s.callerID))
	s.repo.AssertExpectations(s.T())
}

func (s *CompanyServiceTestSuite) TestAuthorizeAdmin_WithoutCaller() {
	err := s.service.AuthorizeAdmin(s.ctx, "", 1)
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}
