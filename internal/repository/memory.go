package repository

import (
	"context"
	"sync"
	"time"

	"audit-service/internal/domain"
)

// MemoryRepository keeps audit requests and users in process memory.
// It is the default backend when DATABASE_URL is not configured and the
// reference backend in tests. Ids start at 1, grow strictly and are
// never reused; the counter increment and the map insert happen under a
// single mutex hold so concurrent creates cannot collide.
type MemoryRepository struct {
	mu             sync.Mutex
	auditRequests  map[int]domain.AuditRequest
	auditOrder     []int
	users          map[int]domain.User
	nextAuditReqID int
	nextUserID     int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		auditRequests:  make(map[int]domain.AuditRequest),
		users:          make(map[int]domain.User),
		nextAuditReqID: 1,
		nextUserID:     1,
	}
}

func (r *MemoryRepository) Create(_ context.Context, input domain.InsertAuditRequest) (*domain.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextAuditReqID
	r.nextAuditReqID++

	auditRequest := domain.AuditRequest{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Website:     input.Website,
		Business:    input.Business,
		Goals:       cloneGoals(input.Goals),
		CreatedAt:   time.Now(),
		IsContacted: false,
	}

	r.auditRequests[id] = auditRequest
	r.auditOrder = append(r.auditOrder, id)

	out := auditRequest
	out.Goals = cloneGoals(auditRequest.Goals)
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (*domain.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auditRequest, ok := r.auditRequests[id]
	if !ok {
		return nil, domain.ErrAuditRequestNotFound
	}

	out := auditRequest
	out.Goals = cloneGoals(auditRequest.Goals)
	return &out, nil
}

// GetAll returns every stored audit request in insertion order.
func (r *MemoryRepository) GetAll(_ context.Context) ([]domain.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auditRequests := make([]domain.AuditRequest, 0, len(r.auditOrder))
	for _, id := range r.auditOrder {
		auditRequest := r.auditRequests[id]
		auditRequest.Goals = cloneGoals(auditRequest.Goals)
		auditRequests = append(auditRequests, auditRequest)
	}
	return auditRequests, nil
}

// UpdateContactStatus flips the isContacted flag and leaves every other
// field untouched.
func (r *MemoryRepository) UpdateContactStatus(_ context.Context, id int, isContacted bool) (*domain.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auditRequest, ok := r.auditRequests[id]
	if !ok {
		return nil, domain.ErrAuditRequestNotFound
	}

	auditRequest.IsContacted = isContacted
	r.auditRequests[id] = auditRequest

	out := auditRequest
	out.Goals = cloneGoals(auditRequest.Goals)
	return &out, nil
}

func (r *MemoryRepository) CreateUser(_ context.Context, input domain.InsertUser) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextUserID
	r.nextUserID++

	user := domain.User{
		ID:       id,
		Username: input.Username,
		Password: input.Password,
	}
	r.users[id] = user

	return &user, nil
}

func (r *MemoryRepository) GetUser(_ context.Context, id int) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// cloneGoals keeps stored records isolated from caller-held slices.
func cloneGoals(goals []string) []string {
	if goals == nil {
		return nil
	}
	out := make([]string, len(goals))
	copy(out, goals)
	return out
}
