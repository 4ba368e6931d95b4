package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"civicconnect-api/internal/auth"
	"civicconnect-api/internal/rpc"
)

func (h *Handler) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "username and password required")
	}

	// one fixed pair; never reveal which field was wrong
	u, err := h.admin.Verify(req.Username, req.Password)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid credentials")
	}

	tok, err := auth.MakeToken(u, h.secret)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	state := h.session.Login(u)
	return &rpc.LoginResponse{
		Token: tok,
		User:  userToProto(u),
		State: stateToProto(state),
	}, nil
}

// Logout closes the session and drops the portal back on the calendar tab.
func (h *Handler) Logout(ctx context.Context, req *rpc.LogoutRequest) (*rpc.LogoutResponse, error) {
	state := h.session.Logout()
	return &rpc.LogoutResponse{State: stateToProto(state)}, nil
}

func (h *Handler) SelectTab(ctx context.Context, req *rpc.SelectTabRequest) (*rpc.SelectTabResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "unknown tab")
	}
	state := h.session.SelectTab(req.Tab)
	return &rpc.SelectTabResponse{State: stateToProto(state)}, nil
}
