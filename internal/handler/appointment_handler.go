package handler

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"civicconnect-api/internal/model"
	"civicconnect-api/internal/rpc"
	"civicconnect-api/internal/slot"
	"civicconnect-api/internal/store"
)

func (h *Handler) CreateAppointment(ctx context.Context, req *rpc.CreateAppointmentRequest) (*rpc.CreateAppointmentResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "name, date and time slot required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, status.Error(codes.InvalidArgument, "constituent name required")
	}
	if !slot.Valid(req.TimeSlot) {
		return nil, status.Error(codes.InvalidArgument, "unknown time slot")
	}

	apt := h.store.Create(ctx, model.Appointment{
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Name:        req.Name,
		Description: req.Description,
	})

	return &rpc.CreateAppointmentResponse{Appointment: toProto(apt)}, nil
}

func (h *Handler) UpdateAppointment(ctx context.Context, req *rpc.UpdateAppointmentRequest) (*rpc.UpdateAppointmentResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid update")
	}
	if req.TimeSlot != nil && !slot.Valid(*req.TimeSlot) {
		return nil, status.Error(codes.InvalidArgument, "unknown time slot")
	}

	apt, found := h.store.Update(ctx, req.Id, store.Patch{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Status:      req.Status,
		Outcome:     req.Outcome,
	})

	// an id that vanished from under the client is not an error: the record
	// was simply already gone
	resp := &rpc.UpdateAppointmentResponse{Found: found}
	if found {
		resp.Appointment = toProto(apt)
	}
	return resp, nil
}

func (h *Handler) DeleteAppointment(ctx context.Context, req *rpc.DeleteAppointmentRequest) (*rpc.DeleteAppointmentResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "id required")
	}
	h.store.Delete(ctx, req.Id)
	return &rpc.DeleteAppointmentResponse{}, nil
}

// ListDay renders one row per canonical slot for the requested date, flags
// slots whose hour has passed, and carries the sidebar summary counts. The
// request also moves the session's selected date.
func (h *Handler) ListDay(ctx context.Context, req *rpc.ListDayRequest) (*rpc.ListDayResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, "date must be YYYY-MM-DD")
	}

	h.session.SelectDate(req.Date)
	now := time.Now()

	resp := &rpc.ListDayResponse{Date: req.Date}
	for _, s := range slot.Slots() {
		row := &rpc.SlotRow{
			Label:     s.Label,
			StartHour: int32(s.StartHour),
			Past:      slot.IsPast(s.Label, req.Date, now),
		}
		for _, a := range h.store.BySlotAndDate(ctx, req.Date, s.Label) {
			row.Appointments = append(row.Appointments, toProto(a))
		}
		resp.Slots = append(resp.Slots, row)
	}

	for _, a := range h.store.ByDate(ctx, req.Date) {
		resp.Total++
		if a.Status == model.StatusCompleted {
			resp.Completed++
		}
	}
	return resp, nil
}

// SearchReports filters completed meetings by the free-text query and groups
// them by date, newest day first.
func (h *Handler) SearchReports(ctx context.Context, req *rpc.SearchReportsRequest) (*rpc.SearchReportsResponse, error) {
	matched := store.Search(h.store.Completed(ctx), req.Query)

	resp := &rpc.SearchReportsResponse{Total: int32(len(matched))}
	for _, g := range store.GroupByDate(matched) {
		group := &rpc.ReportGroup{Date: g.Date}
		for _, a := range g.Appointments {
			group.Appointments = append(group.Appointments, toProto(a))
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp, nil
}
