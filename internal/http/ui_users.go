package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/target/storefront-admin/internal/domain/model"
	"github.com/target/storefront-admin/internal/domain/routing"
)

// registrableRoles are offered by the add-user dialog.
//
//nolint:gochecknoglobals // static form options
var registrableRoles = []string{"Admin", "Delivery", "Customer"}

// filterUsers keeps users whose name or email contains q, case-insensitively.
func filterUsers(users []model.User, q string) []model.User {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return users
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.UserName), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}

// UsersPage lists accounts, optionally filtered by ?q=.
// GET /user.
func (h *UIHandlers) UsersPage(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	page := pageParam(r)
	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Storefront Admin - Users", PageTitle: "Users", CurrentPage: PageUsers},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Query"] = q
			data["Roles"] = registrableRoles
			data["Users"] = []model.User{}
			users, err := h.People.Users(ctx)
			if err != nil {
				return err
			}
			rows, p := pageOf(filterUsers(users, q), page, usersPageSize, routing.PathUsers)
			extendTemplateData(r, data).With("Users", rows).WithPagination(p)
			return nil
		},
	})
}

// RegisterUser handles the add-user dialog.
// POST /user.
func (h *UIHandlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	age, err := formInt(r, "age", "Age")
	if err == nil {
		err = h.People.RegisterUser(r.Context(), model.UserInput{
			Email:           formString(r, "email"),
			Password:        r.FormValue("password"),
			UserName:        formString(r, "userName"),
			Age:             age,
			RoleName:        formString(r, "roleName"),
			ProfileImageURL: formString(r, "profileImageUrl"),
		})
	}
	h.respondMutation(w, r, mutation{
		Err:     err,
		Success: "User registered",
		Event:   eventUsersChanged,
		Return:  routing.PathUsers,
	})
}
