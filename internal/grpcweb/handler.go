// Package grpcweb serves the FrontDesk service to browsers over the
// gRPC-Web HTTP/1.1 protocol. There are no generated stubs; frames are
// unpacked here and the protobuf payloads are decoded by internal/rpc.
package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"civicconnect-api/internal/handler"
	"civicconnect-api/internal/middleware"
	"civicconnect-api/internal/rpc"
	"civicconnect-api/internal/session"
)

// ServicePath prefixes every FrontDesk method.
const ServicePath = "/civicconnect.v1.FrontDesk/"

type Server struct {
	h       *handler.Handler
	session *session.Manager
	secret  string
	login   *middleware.RateLimiter
	log     *zap.Logger
}

func New(h *handler.Handler, sess *session.Manager, secret string, login *middleware.RateLimiter, log *zap.Logger) *Server {
	return &Server{h: h, session: sess, secret: secret, login: login, log: log}
}

// Handler returns the HTTP surface: CORS for the SPA origin plus one POST
// route per grpc-web method.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Grpc-Web", "X-User-Agent", "Authorization"},
		ExposedHeaders: []string{"Grpc-Status", "Grpc-Message", "Grpc-Status-Details-Bin"},
		MaxAge:         86400,
	}))
	r.Post(ServicePath+"{method}", s.dispatch)
	return r
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc-web") {
		http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, codes.Internal, "read body failed")
		return
	}
	if len(body) < 5 {
		writeError(w, codes.InvalidArgument, "body too short")
		return
	}

	// grpc-web frame: 1-byte flag + 4-byte big-endian length + protobuf
	msgLen := binary.BigEndian.Uint32(body[1:5])
	if int(msgLen)+5 > len(body) {
		writeError(w, codes.InvalidArgument, "incomplete frame")
		return
	}
	payload := body[5 : 5+msgLen]

	method := chi.URLParam(r, "method")
	s.log.Debug("grpc-web request", zap.String("method", method))

	ctx := r.Context()

	switch method {
	case "Login":
		if !s.login.Allow(clientIP(r)) {
			writeError(w, codes.ResourceExhausted, "too many requests")
			return
		}
		req := &rpc.LoginRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.Login(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })
		return
	}

	// everything below requires a live session
	ctx, err = middleware.Authenticate(ctx, r.Header.Get("Authorization"), s.secret)
	if err != nil {
		st, _ := status.FromError(err)
		writeError(w, st.Code(), st.Message())
		return
	}
	if !s.session.Active() {
		writeError(w, codes.Unauthenticated, "session closed")
		return
	}

	switch method {
	case "Logout":
		req := &rpc.LogoutRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.Logout(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "SelectTab":
		req := &rpc.SelectTabRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.SelectTab(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "CreateAppointment":
		req := &rpc.CreateAppointmentRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.CreateAppointment(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "UpdateAppointment":
		req := &rpc.UpdateAppointmentRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.UpdateAppointment(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "DeleteAppointment":
		req := &rpc.DeleteAppointmentRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.DeleteAppointment(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "ListDay":
		req := &rpc.ListDayRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.ListDay(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	case "SearchReports":
		req := &rpc.SearchReportsRequest{}
		if err := req.Unmarshal(payload); err != nil {
			writeError(w, codes.InvalidArgument, "parse error")
			return
		}
		resp, err := s.h.SearchReports(ctx, req)
		s.finish(w, method, err, func() []byte { return resp.Marshal() })

	default:
		writeError(w, codes.Unimplemented, "unknown method")
	}
}

// finish writes either the trailer-only error frame or the data+trailer
// success frames for a completed call.
func (s *Server) finish(w http.ResponseWriter, method string, err error, marshal func() []byte) {
	if err != nil {
		st, _ := status.FromError(err)
		s.log.Info("grpc-web error",
			zap.String("method", method),
			zap.String("code", st.Code().String()),
			zap.String("message", st.Message()))
		writeError(w, st.Code(), st.Message())
		return
	}
	writeSuccess(w, marshal())
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, msg)
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	// data frame
	df := make([]byte, 5+len(data))
	df[0] = 0x00
	binary.BigEndian.PutUint32(df[1:5], uint32(len(data)))
	copy(df[5:], data)
	w.Write(df)
	// trailer frame
	trailer := "grpc-status:0\r\n"
	tf := make([]byte, 5+len(trailer))
	tf[0] = 0x80
	binary.BigEndian.PutUint32(tf[1:5], uint32(len(trailer)))
	copy(tf[5:], trailer)
	w.Write(tf)
}
