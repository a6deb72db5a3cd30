package insight

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
)

const (
	spikeWindow        = 5 * time.Minute
	spikeThreshold     = 10
	spikeHighThreshold = 20

	offHoursStartHour    = 23
	offHoursEndHour      = 5
	offHoursHighCount    = 5
	failureRunThreshold  = 3
	failureRunHighCount  = 5
	destructiveThreshold = 3
	destructiveHighCount = 5
)

// destructiveActionMarkers flags actions that delete, remove, deactivate,
// lock, or reset an entity. Matched case-insensitively as substrings of the
// action label.
var destructiveActionMarkers = []string{"delete", "remove", "deactivate", "lock", "reset"}

// AnomalyFlag is one detected behavioral anomaly for a user.
type AnomalyFlag struct {
	UserID          string
	UserName        string
	Kind            domain.AnomalyKind
	Description     string
	Severity        domain.Severity
	DetectedAt      time.Time
	RelatedLogCount int
}

// DetectAnomalies runs four independent rules over the audit events of each
// user and returns every flag raised, sorted by severity (high first) then
// detection time descending. The rules never suppress one another, and the
// detector keeps no state between invocations: suppressing duplicates across
// repeated runs is the caller's responsibility.
func DetectAnomalies(events []domain.AuditEvent, now time.Time) []AnomalyFlag {
	byUser := make(map[string][]domain.AuditEvent)
	var users []string
	for _, e := range events {
		if _, ok := byUser[e.UserID]; !ok {
			users = append(users, e.UserID)
		}
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	var flags []AnomalyFlag
	for _, userID := range users {
		userEvents := byUser[userID]
		sort.SliceStable(userEvents, func(i, j int) bool {
			return userEvents[i].CreatedAt.Before(userEvents[j].CreatedAt)
		})

		if f := detectActivitySpike(userEvents); f != nil {
			flags = append(flags, *f)
		}
		if f := detectOffHours(userEvents); f != nil {
			flags = append(flags, *f)
		}
		if f := detectRepeatedFailures(userEvents, now); f != nil {
			flags = append(flags, *f)
		}
		if f := detectDestructivePattern(userEvents, now); f != nil {
			flags = append(flags, *f)
		}
	}

	sort.SliceStable(flags, func(i, j int) bool {
		ri, rj := flags[i].Severity.Rank(), flags[j].Severity.Rank()
		if ri != rj {
			return ri < rj
		}
		return flags[i].DetectedAt.After(flags[j].DetectedAt)
	})
	return flags
}

// detectActivitySpike slides a 5-minute window over the user's events and
// reports the first window holding at least spikeThreshold events. Only the
// first qualifying window is reported so overlapping windows do not produce
// duplicate flags for the same burst.
func detectActivitySpike(events []domain.AuditEvent) *AnomalyFlag {
	for i := range events {
		cutoff := events[i].CreatedAt.Add(spikeWindow)
		count := 0
		for j := i; j < len(events); j++ {
			if events[j].CreatedAt.After(cutoff) {
				break
			}
			count++
		}
		if count >= spikeThreshold {
			severity := domain.SeverityMedium
			if count >= spikeHighThreshold {
				severity = domain.SeverityHigh
			}
			return &AnomalyFlag{
				UserID:   events[i].UserID,
				UserName: events[i].UserName,
				Kind:     domain.AnomalyActivitySpike,
				Description: fmt.Sprintf(
					"%d actions within 5 minutes", count),
				Severity:        severity,
				DetectedAt:      events[i].CreatedAt,
				RelatedLogCount: count,
			}
		}
	}
	return nil
}

// detectOffHours flags any activity between 23:00 and 05:00 local time. The
// detection timestamp is the first off-hours event.
func detectOffHours(events []domain.AuditEvent) *AnomalyFlag {
	var first *domain.AuditEvent
	count := 0
	for i := range events {
		hour := events[i].CreatedAt.Hour()
		if hour >= offHoursStartHour || hour < offHoursEndHour {
			if first == nil {
				first = &events[i]
			}
			count++
		}
	}
	if first == nil {
		return nil
	}
	severity := domain.SeverityLow
	if count >= offHoursHighCount {
		severity = domain.SeverityHigh
	}
	return &AnomalyFlag{
		UserID:          first.UserID,
		UserName:        first.UserName,
		Kind:            domain.AnomalyOffHours,
		Description:     fmt.Sprintf("%d action(s) between 23:00 and 05:00", count),
		Severity:        severity,
		DetectedAt:      first.CreatedAt,
		RelatedLogCount: count,
	}
}

// detectRepeatedFailures tracks the longest run of consecutive failed
// actions, resetting on any success. The detection timestamp is the
// evaluation time, not an event timestamp.
func detectRepeatedFailures(events []domain.AuditEvent, now time.Time) *AnomalyFlag {
	var run, longest int
	for i := range events {
		if events[i].Success {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	if longest < failureRunThreshold {
		return nil
	}
	severity := domain.SeverityMedium
	if longest >= failureRunHighCount {
		severity = domain.SeverityHigh
	}
	return &AnomalyFlag{
		UserID:          events[0].UserID,
		UserName:        events[0].UserName,
		Kind:            domain.AnomalyRepeatedFailures,
		Description:     fmt.Sprintf("%d consecutive failed actions", longest),
		Severity:        severity,
		DetectedAt:      now,
		RelatedLogCount: longest,
	}
}

// detectDestructivePattern counts destructive actions (delete, remove,
// deactivate, lock, reset) regardless of spacing.
func detectDestructivePattern(events []domain.AuditEvent, now time.Time) *AnomalyFlag {
	count := 0
	for i := range events {
		if isDestructiveAction(events[i].Action) {
			count++
		}
	}
	if count < destructiveThreshold {
		return nil
	}
	severity := domain.SeverityMedium
	if count >= destructiveHighCount {
		severity = domain.SeverityHigh
	}
	return &AnomalyFlag{
		UserID:          events[0].UserID,
		UserName:        events[0].UserName,
		Kind:            domain.AnomalyDestructivePattern,
		Description:     fmt.Sprintf("%d destructive action(s) in the window", count),
		Severity:        severity,
		DetectedAt:      now,
		RelatedLogCount: count,
	}
}

func isDestructiveAction(action string) bool {
	lower := strings.ToLower(action)
	for _, marker := range destructiveActionMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
