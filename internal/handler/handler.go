// Package handler implements the FrontDesk service: the intents the admin
// portal dispatches, mapped onto the in-memory store and the session.
package handler

import (
	"github.com/go-playground/validator/v10"

	"civicconnect-api/internal/auth"
	"civicconnect-api/internal/model"
	"civicconnect-api/internal/rpc"
	"civicconnect-api/internal/session"
	"civicconnect-api/internal/store"
)

type Handler struct {
	store    *store.Store
	session  *session.Manager
	admin    *auth.Admin
	secret   string
	validate *validator.Validate
}

func New(st *store.Store, sess *session.Manager, admin *auth.Admin, secret string) *Handler {
	return &Handler{
		store:    st,
		session:  sess,
		admin:    admin,
		secret:   secret,
		validate: validator.New(),
	}
}

func toProto(a model.Appointment) *rpc.Appointment {
	return &rpc.Appointment{
		Id:          a.ID,
		Date:        a.Date,
		TimeSlot:    a.TimeSlot,
		Name:        a.Name,
		Description: a.Description,
		Outcome:     a.Outcome,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

func userToProto(u model.User) *rpc.User {
	return &rpc.User{Id: u.ID, Username: u.Username, Role: u.Role}
}

func stateToProto(s session.State) *rpc.SessionState {
	st := &rpc.SessionState{
		Authenticated: s.Authenticated,
		ActiveTab:     s.ActiveTab,
		SelectedDate:  s.SelectedDate,
	}
	if s.Authenticated {
		st.User = userToProto(s.User)
	}
	return st
}
