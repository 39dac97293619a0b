// Package storetest holds a driver-agnostic compliance suite. Each
// driver's tests call Run with a factory returning a clean store.
package storetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/PickleRicc/deep-work-sub001/internal/model"
	"github.com/PickleRicc/deep-work-sub001/internal/store"
)

// Run exercises the persistence contract against a store.Store
// implementation.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	userID := "u-" + uuid.New().String()

	// Blocks
	title := "Write report"
	b1, err := s.Blocks().Create(ctx, &model.TimeBlock{
		UserID: userID, Date: "2025-03-10", StartTime: "09:00", EndTime: "10:30",
		BlockType: model.BlockDeepWork, TaskTitle: &title,
	})
	if err != nil {
		t.Fatalf("CreateBlock b1: %v", err)
	}
	if b1.BlockID == "" {
		t.Fatalf("CreateBlock: empty block id")
	}
	if _, err := s.Blocks().Create(ctx, &model.TimeBlock{
		UserID: userID, Date: "2025-03-10", StartTime: "08:00", EndTime: "08:30",
		BlockType: model.BlockBreak,
	}); err != nil {
		t.Fatalf("CreateBlock b2: %v", err)
	}
	if _, err := s.Blocks().Create(ctx, &model.TimeBlock{
		UserID: userID, Date: "2025-03-12", StartTime: "11:00", EndTime: "12:00",
		BlockType: model.BlockShallowWork,
	}); err != nil {
		t.Fatalf("CreateBlock b3: %v", err)
	}

	day, err := s.Blocks().ListForDate(ctx, userID, "2025-03-10")
	if err != nil || len(day) != 2 {
		t.Fatalf("ListForDate: n=%d err=%v", len(day), err)
	}
	if day[0].StartTime != "08:00" {
		t.Fatalf("ListForDate: not ordered by start time: %v", day[0].StartTime)
	}
	if day[1].TaskTitle == nil || *day[1].TaskTitle != title {
		t.Fatalf("ListForDate: task title not round-tripped: %v", day[1].TaskTitle)
	}

	rng, err := s.Blocks().ListRange(ctx, userID, "2025-03-10", "2025-03-11")
	if err != nil || len(rng) != 2 {
		t.Fatalf("ListRange: n=%d err=%v", len(rng), err)
	}
	all, err := s.Blocks().ListAll(ctx, userID)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListAll: n=%d err=%v", len(all), err)
	}

	// ReplaceDay swaps the whole date and leaves other dates alone.
	if err := s.Blocks().ReplaceDay(ctx, userID, "2025-03-10", []model.TimeBlock{
		{UserID: userID, Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00", BlockType: model.BlockDeepWork},
	}); err != nil {
		t.Fatalf("ReplaceDay: %v", err)
	}
	day, err = s.Blocks().ListForDate(ctx, userID, "2025-03-10")
	if err != nil || len(day) != 1 || day[0].StartTime != "10:00" {
		t.Fatalf("ListForDate after ReplaceDay: n=%d err=%v", len(day), err)
	}
	if other, err := s.Blocks().ListForDate(ctx, userID, "2025-03-12"); err != nil || len(other) != 1 {
		t.Fatalf("ReplaceDay touched another date: n=%d err=%v", len(other), err)
	}

	if err := s.Blocks().Delete(ctx, userID, day[0].BlockID); err != nil {
		t.Fatalf("DeleteBlock: %v", err)
	}
	if err := s.Blocks().Delete(ctx, userID, day[0].BlockID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteBlock missing: want ErrNotFound, got %v", err)
	}

	// Tasks
	task, err := s.Tasks().Create(ctx, &model.Task{
		UserID: userID, Title: "Ship migration", Tags: []string{"infra", "db"},
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.Status != model.TaskBacklog {
		t.Fatalf("CreateTask: default status = %q", task.Status)
	}
	got, err := s.Tasks().UpdateStatus(ctx, userID, task.TaskID, model.TaskCompleted)
	if err != nil || got.Status != model.TaskCompleted || got.CompletedAt == nil {
		t.Fatalf("UpdateStatus: got=%+v err=%v", got, err)
	}
	if _, err := s.Tasks().UpdateStatus(ctx, userID, "missing", model.TaskActive); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateStatus missing: want ErrNotFound, got %v", err)
	}
	lst, err := s.Tasks().List(ctx, userID)
	if err != nil || len(lst) != 1 || len(lst[0].Tags) != 2 {
		t.Fatalf("ListTasks: got=%+v err=%v", lst, err)
	}

	// Reviews
	if _, err := s.Reviews().Create(ctx, &model.TaskReview{
		UserID: userID, TaskID: task.TaskID, EnjoymentRating: 4, OverallRating: 5, EnergyRequired: "medium",
	}); err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	revs, err := s.Reviews().List(ctx, userID)
	if err != nil || len(revs) != 1 || revs[0].OverallRating != 5 {
		t.Fatalf("ListReviews: got=%+v err=%v", revs, err)
	}

	// Prefs: unsaved users get the defaults.
	pref, err := s.Prefs().Get(ctx, userID)
	if err != nil || !pref.Enabled || pref.LeadMinutes != model.DefaultLeadMinutes {
		t.Fatalf("GetPrefs default: got=%+v err=%v", pref, err)
	}
	if _, err := s.Prefs().Put(ctx, &model.NotificationPrefs{UserID: userID, Enabled: true, LeadMinutes: 10}); err != nil {
		t.Fatalf("PutPrefs: %v", err)
	}
	pref, err = s.Prefs().Get(ctx, userID)
	if err != nil || pref.LeadMinutes != 10 {
		t.Fatalf("GetPrefs saved: got=%+v err=%v", pref, err)
	}
	enabled, err := s.Prefs().ListEnabled(ctx)
	if err != nil || !containsUser(enabled, userID) {
		t.Fatalf("ListEnabled: got=%+v err=%v", enabled, err)
	}

	// Disabling removes the user from the enabled list.
	if _, err := s.Prefs().Put(ctx, &model.NotificationPrefs{UserID: userID, Enabled: false, LeadMinutes: 10}); err != nil {
		t.Fatalf("PutPrefs disable: %v", err)
	}
	enabled, err = s.Prefs().ListEnabled(ctx)
	if err != nil || containsUser(enabled, userID) {
		t.Fatalf("ListEnabled after disable: got=%+v err=%v", enabled, err)
	}
}

func containsUser(prefs []model.NotificationPrefs, userID string) bool {
	for _, p := range prefs {
		if p.UserID == userID {
			return true
		}
	}
	return false
}
