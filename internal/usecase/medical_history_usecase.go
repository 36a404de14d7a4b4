package usecase

import (
	"context"
	"sort"
	"strings"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

// HistoryFilter selects appointments of the medical history by status.
type HistoryFilter string

const (
	HistoryFilterAll       HistoryFilter = "all"
	HistoryFilterCompleted HistoryFilter = "completed"
	HistoryFilterUpcoming  HistoryFilter = "upcoming"
	HistoryFilterCancelled HistoryFilter = "cancelled"
)

// ParseHistoryFilter maps unknown values to HistoryFilterAll.
func ParseHistoryFilter(s string) HistoryFilter {
	switch f := HistoryFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case HistoryFilterCompleted, HistoryFilterUpcoming, HistoryFilterCancelled:
		return f
	default:
		return HistoryFilterAll
	}
}

func (f HistoryFilter) matches(a entity.Appointment) bool {
	if f == HistoryFilterAll {
		return true
	}
	return a.Status == entity.AppointmentStatus(f)
}

// FilterHistory keeps the appointments matching filter and orders them by
// scheduled time, newest first. The sort is stable; entries without a
// parseable time go last.
func FilterHistory(appointments []entity.Appointment, filter HistoryFilter) []entity.Appointment {
	out := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if filter.matches(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NotifyAt.Time.After(out[j].NotifyAt.Time)
	})
	return out
}

// MedicalHistory is the read-only history view over its own appointment list.
type MedicalHistory struct {
	list *ResourceListController[entity.Appointment, dto.CreateAppointmentRequest]
}

func NewMedicalHistory(list *ResourceListController[entity.Appointment, dto.CreateAppointmentRequest]) *MedicalHistory {
	return &MedicalHistory{list: list}
}

func (h *MedicalHistory) Mount(ctx context.Context) error {
	return h.list.Mount(ctx)
}

// View returns the loaded appointments selected by filter.
func (h *MedicalHistory) View(filter HistoryFilter) ([]entity.Appointment, ListState, string) {
	snapshot := h.list.Snapshot()
	return FilterHistory(snapshot.Items, filter), snapshot.State, snapshot.Error
}

func (h *MedicalHistory) Reset() {
	h.list.Reset()
}
