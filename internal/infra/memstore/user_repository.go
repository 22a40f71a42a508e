package memstore

import (
	"context"
	"sort"
	"strings"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface in memory.
type userRepository struct {
	db *DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*repository.StoredUser, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	r, ok := repo.db.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(r), nil
}

// FindByUsername retrieves a single user by username, ignoring case.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*repository.StoredUser, error) {
	return repo.findOne(func(r *userRecord) bool {
		return strings.EqualFold(r.Username, username)
	})
}

// FindByDni retrieves a single user by national id.
func (repo *userRepository) FindByDni(ctx context.Context, dni string) (*repository.StoredUser, error) {
	return repo.findOne(func(r *userRecord) bool {
		return r.Dni != "" && r.Dni == dni
	})
}

// List returns a page of the users of a company ordered by id.
func (repo *userRepository) List(ctx context.Context, q repository.UserQuery) (*entity.Page[entity.User], error) {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	repo.db.mu.RLock()
	users := make([]entity.User, 0, len(repo.db.users))
	for _, r := range repo.db.users {
		if q.CompanyID > 0 && r.CompanyID != q.CompanyID {
			continue
		}
		if search != "" && !matchesUser(r, search) {
			continue
		}
		users = append(users, toUserDomain(r).User)
	}
	repo.db.mu.RUnlock()

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return entity.NewPage(users, q.Page, q.Size), nil
}

// Create persists a new user and assigns its id.
func (repo *userRepository) Create(ctx context.Context, user *repository.StoredUser) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if repo.usernameTakenLocked(user.Username, 0) {
		return repository.ErrDuplicateUsername
	}

	user.ID = repo.db.nextUserID
	repo.db.nextUserID++
	repo.db.users[user.ID] = toUserRecord(user)

	return nil
}

// Update modifies an existing user. An empty PasswordHash keeps the current one.
func (repo *userRepository) Update(ctx context.Context, user *repository.StoredUser) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	current, ok := repo.db.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if repo.usernameTakenLocked(user.Username, user.ID) {
		return repository.ErrDuplicateUsername
	}

	next := toUserRecord(user)
	if next.PasswordHash == "" {
		next.PasswordHash = current.PasswordHash
	}
	repo.db.users[user.ID] = next

	return nil
}

// Delete removes a user.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(repo.db.users, id)

	return nil
}

func (repo *userRepository) findOne(match func(r *userRecord) bool) (*repository.StoredUser, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, r := range repo.db.users {
		if match(r) {
			return toUserDomain(r), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) usernameTakenLocked(username string, exceptID int64) bool {
	for id, r := range repo.db.users {
		if id != exceptID && strings.EqualFold(r.Username, username) {
			return true
		}
	}

	return false
}

func matchesUser(r *userRecord, search string) bool {
	return strings.Contains(strings.ToLower(r.Username), search) ||
		strings.Contains(strings.ToLower(r.FullName), search) ||
		strings.Contains(r.Dni, search)
}
