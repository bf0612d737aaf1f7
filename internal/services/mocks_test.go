package services

import (
	"context"
	"time"

	"campusevents/internal/domain"
)

type mockUserRepository struct {
	users     map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	assigned  map[string]string
}

func (m *mockUserRepository) Create(ctx context.Context, u *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	u.ID = "user-new"
	return nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) AssignRole(ctx context.Context, userID, roleID string) error {
	if m.assigned == nil {
		m.assigned = map[string]string{}
	}
	m.assigned[userID] = roleID
	return nil
}

type mockRoleRepository struct {
	byCode  map[string]*domain.Role
	byUser  map[string][]*domain.Role
	listErr error
}

func (m *mockRoleRepository) GetByCode(ctx context.Context, code string) (*domain.Role, error) {
	if r, ok := m.byCode[code]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockRoleRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Role, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byUser[userID], nil
}

type mockEventRepository struct {
	events    map[string]*domain.Event
	byCreator map[string][]*domain.EventDetails
	createErr error
	updateErr error
	deleteErr error
	deleted   []string
}

func (m *mockEventRepository) CreateWithReservation(ctx context.Context, e *domain.Event, res *domain.Reservation) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = "ev-new"
	res.ID = "res-new"
	res.EventID = e.ID
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]*domain.EventDetails, error) {
	return m.byCreator[creatorID], nil
}

func (m *mockEventRepository) UpdateWithReservation(ctx context.Context, e *domain.Event, res *domain.Reservation) error {
	return m.updateErr
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockReservationRepository struct {
	byEvent    map[string]*domain.Reservation
	pending    []*domain.EventDetails
	byLocation map[string][]*domain.EventDetails
	searchHits []*domain.EventDetails
	searchTot  int
	searchTerm string
	decideErr  error
	approved   []string
	denied     []string
}

func (m *mockReservationRepository) GetByEventID(ctx context.Context, eventID string) (*domain.Reservation, error) {
	if r, ok := m.byEvent[eventID]; ok {
		return r, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockReservationRepository) ListPending(ctx context.Context) ([]*domain.EventDetails, error) {
	return m.pending, nil
}

func (m *mockReservationRepository) ListApprovedByLocationID(ctx context.Context, locationID string) ([]*domain.EventDetails, error) {
	return m.byLocation[locationID], nil
}

func (m *mockReservationRepository) SearchApproved(ctx context.Context, term string, params domain.PaginationParams) ([]*domain.EventDetails, int, error) {
	m.searchTerm = term
	return m.searchHits, m.searchTot, nil
}

func (m *mockReservationRepository) Approve(ctx context.Context, eventID, approverID string, decidedAt time.Time) (*domain.Reservation, error) {
	if m.decideErr != nil {
		return nil, m.decideErr
	}
	res, ok := m.byEvent[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if res.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyDecided
	}
	res.Status = domain.StatusApproved
	m.approved = append(m.approved, eventID)
	return res, nil
}

func (m *mockReservationRepository) Deny(ctx context.Context, eventID string, decidedAt time.Time) (*domain.Reservation, error) {
	if m.decideErr != nil {
		return nil, m.decideErr
	}
	res, ok := m.byEvent[eventID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if res.Status != domain.StatusPending {
		return nil, domain.ErrAlreadyDecided
	}
	res.Status = domain.StatusDenied
	m.denied = append(m.denied, eventID)
	return res, nil
}

func (m *mockReservationRepository) GetApprovalByReservationID(ctx context.Context, reservationID string) (*domain.Approval, error) {
	return nil, domain.ErrNotFound
}

type mockAttendanceRepository struct {
	byEventAndUser map[string]*domain.Attendance
	byEvent        map[string][]*domain.AttendanceWithUser
	createErr      error
	created        []*domain.Attendance
}

func attKey(eventID, userID string) string { return eventID + ":" + userID }

func (m *mockAttendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	if m.createErr != nil {
		return m.createErr
	}
	att.ID = "att-new"
	m.created = append(m.created, att)
	return nil
}

func (m *mockAttendanceRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Attendance, error) {
	if att, ok := m.byEventAndUser[attKey(eventID, userID)]; ok {
		return att, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockAttendanceRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.AttendanceWithUser, error) {
	return m.byEvent[eventID], nil
}

type mockLocationRepository struct {
	locations map[string]*domain.Location
}

func (m *mockLocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	list := make([]*domain.Location, 0, len(m.locations))
	for _, l := range m.locations {
		list = append(list, l)
	}
	return list, nil
}

func (m *mockLocationRepository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, domain.ErrNotFound
}

type mockCategoryRepository struct {
	categories map[string]*domain.Category
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	list := make([]*domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		list = append(list, c)
	}
	return list, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrNotFound
}

type mockReportRepository struct {
	total      int
	approved   int
	attendance int
	revenue    float64
	categories []*domain.CategorySummary
	err        error
}

func (m *mockReportRepository) EventCounts(ctx context.Context, start, end time.Time) (int, int, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	return m.total, m.approved, nil
}

func (m *mockReportRepository) AttendanceStats(ctx context.Context, start, end time.Time) (int, float64, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	return m.attendance, m.revenue, nil
}

func (m *mockReportRepository) CategoryBreakdown(ctx context.Context, start, end time.Time) ([]*domain.CategorySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

type mockHasher struct {
	saltErr error
}

func (m *mockHasher) GenerateSalt() (string, error) {
	if m.saltErr != nil {
		return "", m.saltErr
	}
	return "salt", nil
}

func (m *mockHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (m *mockHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return domain.ErrForbidden
	}
	return nil
}

type mockIssuer struct {
	token string
	err   error
}

func (m *mockIssuer) Issue(userID, email string, roles []string, expiry time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

type mockEmailService struct {
	sent []*domain.ReservationDecisionEmailData
	err  error
}

func (m *mockEmailService) SendReservationDecision(ctx context.Context, data *domain.ReservationDecisionEmailData) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}
