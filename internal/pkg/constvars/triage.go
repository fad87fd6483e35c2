package constvars

const (
	TriageFilterAll = "ALL"

	TriageTimeLastHour   = "LAST_HOUR"
	TriageTimeLast6Hours = "LAST_6_HOURS"
	TriageTimeToday      = "TODAY"
	TriageTimeLast3Days  = "LAST_3_DAYS"

	TriageSortUrgency = "urgency"
	TriageSortTime    = "time"
	TriageSortName    = "name"

	TriageOrderAsc  = "asc"
	TriageOrderDesc = "desc"

	TriageDefaultPageSize = 10
	TriageDefaultCronSpec = "@every 30s"

	SymptomsNotesSeparator = "|"
)
