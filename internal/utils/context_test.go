// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "authenticated", ctx: WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "zero id is still present", ctx: WithUserID(context.Background(), 0), wantID: 0, wantOK: true},
		{name: "anonymous", ctx: context.Background()},
		// A string key with the same spelling must not collide.
		{name: "foreign key", ctx: context.WithValue(context.Background(), "userID", int64(42))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := UserIDFromContext(tt.ctx)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("UserIDFromContext() = (%d, %v), want (%d, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestWithUserID_Overrides(t *testing.T) {
	ctx := WithUserID(WithUserID(context.Background(), 1), 2)

	id, ok := UserIDFromContext(ctx)
	if !ok || id != 2 {
		t.Errorf("expected the inner id 2, got (%d, %v)", id, ok)
	}
}
