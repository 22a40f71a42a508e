package hooks

import (
	"context"

	"alerty/internal/domain/entity"
	"alerty/internal/domain/service"
	"alerty/internal/query"
)

// Users reads a page of a company's users. Without a company the query is disabled.
func (h *Hooks) Users(ctx context.Context, params service.UserSearchParams) (query.Result[*entity.Page[entity.User]], error) {
	params.Size = h.pageSize(params.Size)

	return query.Fetch(ctx, h.query, UsersKey(params),
		func(ctx context.Context) (*entity.Page[entity.User], error) {
			return h.users.SearchUsers(ctx, params)
		},
		query.Enabled(params.CompanyID > 0),
		query.KeepPreviousData(),
	)
}

// WatchUsers polls a page of a company's users every configured interval until ctx is done.
func (h *Hooks) WatchUsers(ctx context.Context, params service.UserSearchParams, onUpdate func(query.Result[*entity.Page[entity.User]], error)) error {
	params.Size = h.pageSize(params.Size)

	return query.Poll(ctx, h.query, UsersKey(params),
		func(ctx context.Context) (*entity.Page[entity.User], error) {
			return h.users.SearchUsers(ctx, params)
		},
		h.cfg.UserPollInterval,
		onUpdate,
		query.Enabled(params.CompanyID > 0),
		query.KeepPreviousData(),
	)
}

// User reads a single user. Without a user id the query is disabled.
func (h *Hooks) User(ctx context.Context, lookup service.UserLookup) (query.Result[*entity.User], error) {
	return query.Fetch(ctx, h.query, UserKey(lookup),
		func(ctx context.Context) (*entity.User, error) {
			return h.users.GetUser(ctx, lookup)
		},
		query.Enabled(lookup.UserID > 0),
	)
}

// UserByUsername reads a user by username.
func (h *Hooks) UserByUsername(ctx context.Context, username string) (query.Result[*entity.User], error) {
	return query.Fetch(ctx, h.query, UserByUsernameKey(username),
		func(ctx context.Context) (*entity.User, error) {
			return h.users.GetUserByUsername(ctx, username)
		},
		query.Enabled(username != ""),
	)
}

// CreateUser creates a user and refreshes the user lists.
func (h *Hooks) CreateUser(ctx context.Context, companyID int64, input service.UserInput) (*entity.User, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*entity.User, error) {
			return h.users.CreateUser(ctx, companyID, input)
		},
		func(*entity.User) {
			h.query.Invalidate(allUsersPrefix)
			h.query.Invalidate(companyUsersPrefix(companyID))
		},
	)
}

// UpdateUser updates a user and refreshes the user lists and the user itself.
func (h *Hooks) UpdateUser(ctx context.Context, companyID, userID int64, input service.UserInput) (*entity.User, error) {
	return query.Mutate(ctx,
		func(ctx context.Context) (*entity.User, error) {
			return h.users.UpdateUser(ctx, companyID, userID, input)
		},
		func(*entity.User) {
			h.invalidateUser(companyID, userID)
		},
	)
}

// DeleteUser deletes a user and refreshes the user lists and the user itself.
func (h *Hooks) DeleteUser(ctx context.Context, companyID, userID int64) error {
	_, err := query.Mutate(ctx,
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, h.users.DeleteUser(ctx, companyID, userID)
		},
		func(struct{}) {
			h.invalidateUser(companyID, userID)
		},
	)

	return err
}

func (h *Hooks) invalidateUser(companyID, userID int64) {
	h.query.Invalidate(allUsersPrefix)
	h.query.Invalidate(companyUsersPrefix(companyID))
	h.query.Invalidate(UserKey(service.UserLookup{CompanyID: companyID, UserID: userID}))
}
