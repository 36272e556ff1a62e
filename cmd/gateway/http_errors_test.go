package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatusFromGRPC(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "bad session"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ARGUMENT", wantMsg: "bad session"},
		{name: "out of range", err: status.Error(codes.OutOfRange, "page"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_ARGUMENT", wantMsg: "page"},
		{name: "not found", err: status.Error(codes.NotFound, "missing"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND", wantMsg: "missing"},
		{name: "empty cart", err: status.Error(codes.FailedPrecondition, "cart is empty"), wantStatus: http.StatusConflict, wantCode: "FAILED_PRECONDITION", wantMsg: "cart is empty"},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "dup"), wantStatus: http.StatusConflict, wantCode: "CONFLICT", wantMsg: "dup"},
		{name: "aborted", err: status.Error(codes.Aborted, "retry"), wantStatus: http.StatusConflict, wantCode: "CONFLICT", wantMsg: "retry"},
		{name: "unavailable", err: status.Error(codes.Unavailable, "down"), wantStatus: http.StatusServiceUnavailable, wantCode: "UNAVAILABLE", wantMsg: "down"},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "timeout"), wantStatus: http.StatusServiceUnavailable, wantCode: "UNAVAILABLE", wantMsg: "timeout"},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "who"), wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED", wantMsg: "who"},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "no"), wantStatus: http.StatusForbidden, wantCode: "PERMISSION_DENIED", wantMsg: "no"},
		{name: "internal hides message", err: status.Error(codes.Internal, "db password"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL", wantMsg: "internal error"},
		{name: "non-grpc error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL", wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStatus, gotCode, gotMsg := httpStatusFromGRPC(tt.err)
			if gotStatus != tt.wantStatus || gotCode != tt.wantCode || gotMsg != tt.wantMsg {
				t.Fatalf("got (%d,%s,%q), want (%d,%s,%q)", gotStatus, gotCode, gotMsg, tt.wantStatus, tt.wantCode, tt.wantMsg)
			}
		})
	}
}

func TestWriteGRPCError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeGRPCError(rec, status.Error(codes.FailedPrecondition, "cart needs review"))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body errorBody
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "FAILED_PRECONDITION" || body.Message != "cart needs review" {
		t.Fatalf("unexpected body %+v", body)
	}
}
