package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arale275/autix-sub001/internal/apperrors"
	"github.com/arale275/autix-sub001/internal/core/domain"
	"github.com/arale275/autix-sub001/internal/core/filtering"
	"github.com/arale275/autix-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockInquiryStore is a mock type for the InquiryStore interface
type MockInquiryStore struct {
	mock.Mock
}

func (m *MockInquiryStore) ListInquiries(ctx context.Context, dealerID string) ([]domain.Inquiry, error) {
	args := m.Called(ctx, dealerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Inquiry), args.Error(1)
}

func (m *MockInquiryStore) UpdateInquiryStatus(ctx context.Context, id int64, target domain.InquiryStatus) (*domain.Inquiry, error) {
	args := m.Called(ctx, id, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}

func (m *MockInquiryStore) DeleteInquiry(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite Setup ---

type InquiryServiceTestSuite struct {
	suite.Suite
	mockStore *MockInquiryStore
	service   *services.InquiryService
	dealerID  string
	now       time.Time
}

func (suite *InquiryServiceTestSuite) SetupTest() {
	suite.mockStore = new(MockInquiryStore)
	suite.dealerID = uuid.NewString()
	suite.service = services.NewInquiryService(suite.mockStore, suite.dealerID)
	suite.now = time.Now()
}

func (suite *InquiryServiceTestSuite) seed(list []domain.Inquiry) {
	ctx := context.Background()
	suite.mockStore.On("ListInquiries", ctx, suite.dealerID).Return(list, nil).Once()
	suite.Require().NoError(suite.service.Refresh(ctx))
}

func (suite *InquiryServiceTestSuite) inquiries() []domain.Inquiry {
	return []domain.Inquiry{
		{ID: 1, Status: domain.InquiryNew, BuyerName: "Noa Levi", CreatedAt: suite.now.Add(-time.Hour)},
		{ID: 2, Status: domain.InquiryNew, BuyerName: "Avi Peretz", CreatedAt: suite.now.Add(-26 * time.Hour)},
		{ID: 3, Status: domain.InquiryClosed, BuyerName: "Dana Mor", CreatedAt: suite.now.Add(-48 * time.Hour)},
		{ID: 4, Status: domain.InquiryNew, BuyerName: "Omer Katz", CreatedAt: suite.now.Add(-2 * time.Hour)},
		{ID: 5, Status: domain.InquiryResponded, BuyerName: "Gal Bar", CreatedAt: suite.now.Add(-3 * time.Hour)},
	}
}

// --- Test Cases ---

func (suite *InquiryServiceTestSuite) TestRefreshReplacesSnapshot() {
	suite.seed(suite.inquiries())
	suite.Len(suite.service.Snapshot(), 5)

	// A later refresh replaces the snapshot wholesale.
	suite.seed(suite.inquiries()[:2])
	suite.Len(suite.service.Snapshot(), 2)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *InquiryServiceTestSuite) TestRefreshError() {
	ctx := context.Background()
	suite.mockStore.On("ListInquiries", ctx, suite.dealerID).Return(nil, apperrors.ErrTransport).Once()

	err := suite.service.Refresh(ctx)

	suite.ErrorIs(err, apperrors.ErrTransport)
	suite.Empty(suite.service.Snapshot(), "failed refresh must not clobber the snapshot with partial data")
}

func (suite *InquiryServiceTestSuite) TestViewDoesNotAffectStats() {
	suite.seed(suite.inquiries())

	view := suite.service.View(filtering.Spec{Status: "new"})
	suite.Len(view, 3)

	// Stats always reflect the raw snapshot, not the filtered view.
	st := suite.service.Stats()
	suite.Equal(5, st.Total)
	suite.Equal(3, st.New)
	suite.Equal(1, st.Responded)
	suite.Equal(1, st.Closed)
	suite.Equal(1, st.Urgent)
}

func (suite *InquiryServiceTestSuite) TestRespondSuccess() {
	ctx := context.Background()
	suite.seed(suite.inquiries())

	updated := domain.Inquiry{ID: 1, Status: domain.InquiryResponded, BuyerName: "Noa Levi", CreatedAt: suite.now.Add(-time.Hour)}
	suite.mockStore.On("UpdateInquiryStatus", ctx, int64(1), domain.InquiryResponded).Return(&updated, nil).Once()

	got, err := suite.service.Respond(ctx, 1)

	suite.Require().NoError(err)
	suite.Equal(domain.InquiryResponded, got.Status)

	// The snapshot entry reflects the persisted record.
	fromSnapshot, err := suite.service.Get(1)
	suite.Require().NoError(err)
	suite.Equal(domain.InquiryResponded, fromSnapshot.Status)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *InquiryServiceTestSuite) TestRespondNotFound() {
	ctx := context.Background()
	suite.seed(suite.inquiries())

	_, err := suite.service.Respond(ctx, 999)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStore.AssertNotCalled(suite.T(), "UpdateInquiryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InquiryServiceTestSuite) TestRespondClosedInquiryRejectedBeforePersist() {
	ctx := context.Background()
	suite.seed(suite.inquiries())

	// ID 3 is closed; the illegal transition must be rejected locally,
	// before any backend call goes out.
	_, err := suite.service.Respond(ctx, 3)

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockStore.AssertNotCalled(suite.T(), "UpdateInquiryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InquiryServiceTestSuite) TestSameStatusTransitionIsNoOp() {
	ctx := context.Background()
	suite.seed(suite.inquiries())

	got, err := suite.service.Close(ctx, 3)

	suite.Require().NoError(err)
	suite.Equal(domain.InquiryClosed, got.Status)
	suite.mockStore.AssertNotCalled(suite.T(), "UpdateInquiryStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InquiryServiceTestSuite) TestDelete() {
	ctx := context.Background()
	suite.seed(suite.inquiries())
	suite.mockStore.On("DeleteInquiry", ctx, int64(4)).Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(ctx, 4))

	_, err := suite.service.Get(4)
	suite.ErrorIs(err, apperrors.ErrNotFound, "deleted record must leave the snapshot")
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *InquiryServiceTestSuite) TestBulkTransitionPartialFailure() {
	ctx := context.Background()
	list := []domain.Inquiry{
		{ID: 1, Status: domain.InquiryNew, CreatedAt: suite.now},
		{ID: 2, Status: domain.InquiryNew, CreatedAt: suite.now},
		{ID: 3, Status: domain.InquiryClosed, CreatedAt: suite.now}, // close -> responded is illegal
		{ID: 4, Status: domain.InquiryNew, CreatedAt: suite.now},
		{ID: 5, Status: domain.InquiryNew, CreatedAt: suite.now},
	}
	suite.seed(list)

	for _, id := range []int64{1, 2, 4, 5} {
		updated := domain.Inquiry{ID: id, Status: domain.InquiryResponded, CreatedAt: suite.now}
		suite.mockStore.On("UpdateInquiryStatus", ctx, id, domain.InquiryResponded).Return(&updated, nil).Once()
	}

	sel := services.NewSelection(1, 2, 3, 4, 5)
	res := suite.service.BulkTransition(ctx, sel, domain.InquiryResponded)

	suite.Equal(4, res.Succeeded)
	suite.Equal(1, res.Failed)
	suite.True(res.PartialFailure())
	suite.Len(res.Results, 5)
	suite.ErrorIs(res.Results[2].Err, apperrors.ErrInvalidTransition)

	// The four legal transitions stuck; #3 is unchanged.
	for _, id := range []int64{1, 2, 4, 5} {
		in, err := suite.service.Get(id)
		suite.Require().NoError(err)
		suite.Equal(domain.InquiryResponded, in.Status)
	}
	unchanged, err := suite.service.Get(3)
	suite.Require().NoError(err)
	suite.Equal(domain.InquiryClosed, unchanged.Status)

	suite.Equal(0, sel.Len(), "selection must be cleared after the batch")
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *InquiryServiceTestSuite) TestBulkDeleteClearsSelectionOnFullFailure() {
	ctx := context.Background()
	suite.seed(suite.inquiries())

	sel := services.NewSelection(100, 200)
	res := suite.service.BulkDelete(ctx, sel)

	suite.Equal(0, res.Succeeded)
	suite.Equal(2, res.Failed)
	suite.False(res.PartialFailure())
	suite.Equal(0, sel.Len(), "selection is cleared regardless of outcome")
}

func TestInquiryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InquiryServiceTestSuite))
}
