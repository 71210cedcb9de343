package repository

import (
	"strings"
	"testing"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

func TestBuildListQueryWithoutStatus(t *testing.T) {
	query, args := buildListQuery("user-1", TodoFilter{})

	if !strings.Contains(query, "WHERE owner_id = ?") {
		t.Errorf("query missing owner predicate: %s", query)
	}
	if strings.Contains(query, "status = ?") {
		t.Errorf("query should not filter by status: %s", query)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Errorf("query should order newest first: %s", query)
	}
	if len(args) != 1 || args[0] != "user-1" {
		t.Errorf("args = %v, want [user-1]", args)
	}
}

func TestBuildListQueryWithStatus(t *testing.T) {
	status := model.StatusComplete
	query, args := buildListQuery("user-1", TodoFilter{Status: &status})

	if !strings.Contains(query, "WHERE owner_id = ? AND status = ?") {
		t.Errorf("query missing owner and status predicates: %s", query)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Errorf("query should order newest first: %s", query)
	}
	if len(args) != 2 || args[0] != "user-1" || args[1] != model.StatusComplete {
		t.Errorf("args = %v, want [user-1 complete]", args)
	}
}
