package triage

import (
	"medvault-client/internal/app/models"
	"medvault-client/internal/pkg/constvars"
	"medvault-client/internal/pkg/utils"
	"sort"
	"strings"
	"time"
)

// NormalizeQuery fills in the board defaults: all urgencies, all times,
// urgency descending, first page.
func NormalizeQuery(query models.TriageQuery, defaultPageSize int) models.TriageQuery {
	query.Search = strings.TrimSpace(query.Search)
	query.Urgency = strings.ToUpper(strings.TrimSpace(query.Urgency))
	if query.Urgency == "" {
		query.Urgency = constvars.TriageFilterAll
	}
	query.Time = strings.ToUpper(strings.TrimSpace(query.Time))
	if query.Time == "" {
		query.Time = constvars.TriageFilterAll
	}
	query.SortBy = strings.ToLower(strings.TrimSpace(query.SortBy))
	if query.SortBy == "" {
		query.SortBy = constvars.TriageSortUrgency
	}
	query.Order = strings.ToLower(strings.TrimSpace(query.Order))
	if query.Order != constvars.TriageOrderAsc {
		query.Order = constvars.TriageOrderDesc
	}
	if defaultPageSize <= 0 {
		defaultPageSize = constvars.TriageDefaultPageSize
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultPageSize
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	return query
}

// BuildTriagePage filters, sorts and pages items for the doctor board.
// UrgencyStat counts every item, not only the filtered ones. items is not
// modified.
func BuildTriagePage(items []models.EmergencyRequestSummary, query models.TriageQuery, now time.Time) *models.TriagePage {
	query = NormalizeQuery(query, query.PageSize)

	stats := map[models.UrgencyLevel]int{
		models.UrgencyHigh:   0,
		models.UrgencyMedium: 0,
		models.UrgencyLow:    0,
	}
	filtered := make([]models.EmergencyRequestSummary, 0, len(items))
	for _, item := range items {
		if item.UrgencyLevel.IsValid() {
			stats[item.UrgencyLevel]++
		}
		if matches(item, query, now) {
			filtered = append(filtered, item)
		}
	}

	sortSummaries(filtered, query.SortBy, query.Order)

	totalPages := (len(filtered) + query.PageSize - 1) / query.PageSize
	page := query.Page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * query.PageSize
	end := start + query.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return &models.TriagePage{
		Items:       filtered[start:end],
		Page:        page,
		PageSize:    query.PageSize,
		TotalItems:  len(filtered),
		TotalPages:  totalPages,
		UrgencyStat: stats,
	}
}

func matches(item models.EmergencyRequestSummary, query models.TriageQuery, now time.Time) bool {
	if query.Search != "" {
		if !utils.ContainsFold(item.PatientName, query.Search) &&
			!utils.ContainsFold(item.Symptoms, query.Search) &&
			!strings.Contains(item.ContactNumber, query.Search) {
			return false
		}
	}

	if query.Urgency != constvars.TriageFilterAll && string(item.UrgencyLevel) != query.Urgency {
		return false
	}

	if window, ok := utils.TriageWindow(query.Time); ok {
		if item.CreatedAt.IsZero() || now.Sub(item.CreatedAt) > window {
			return false
		}
	}
	return true
}

func sortSummaries(items []models.EmergencyRequestSummary, sortBy, order string) {
	var compare func(a, b models.EmergencyRequestSummary) int
	switch sortBy {
	case constvars.TriageSortUrgency:
		compare = func(a, b models.EmergencyRequestSummary) int {
			return a.UrgencyLevel.Rank() - b.UrgencyLevel.Rank()
		}
	case constvars.TriageSortTime:
		compare = func(a, b models.EmergencyRequestSummary) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	case constvars.TriageSortName:
		compare = func(a, b models.EmergencyRequestSummary) int {
			return strings.Compare(strings.ToLower(a.PatientName), strings.ToLower(b.PatientName))
		}
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j])
		if order == constvars.TriageOrderAsc {
			return c < 0
		}
		return c > 0
	})
}
