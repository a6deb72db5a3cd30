package domain

type TaskStatus string

const (
	TaskNew        TaskStatus = "new"
	TaskInProgress TaskStatus = "in_progress"
	TaskBlocked    TaskStatus = "blocked"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	PriorityNone     TaskPriority = "none"
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectOnHold     ProjectStatus = "on_hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type LoadLabel string

const (
	LoadAvailable LoadLabel = "available"
	LoadModerate  LoadLabel = "moderate"
	LoadHeavy     LoadLabel = "heavy"
)

type ForecastStatus string

const (
	ForecastOnTrack ForecastStatus = "on_track"
	ForecastAtRisk  ForecastStatus = "at_risk"
	ForecastBehind  ForecastStatus = "behind"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthAttention HealthStatus = "needs_attention"
	HealthAtRisk    HealthStatus = "at_risk"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank orders severities for sorting, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	default:
		return 2
	}
}

type AnomalyKind string

const (
	AnomalyActivitySpike      AnomalyKind = "activity_spike"
	AnomalyOffHours           AnomalyKind = "off_hours_activity"
	AnomalyRepeatedFailures   AnomalyKind = "repeated_failures"
	AnomalyDestructivePattern AnomalyKind = "destructive_pattern"
)

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"new": true, "in_progress": true, "blocked": true,
	"completed": true, "cancelled": true,
}

// ValidTaskPriorities is the canonical set of accepted task priority strings.
var ValidTaskPriorities = map[string]bool{
	"none": true, "low": true, "medium": true, "high": true, "critical": true,
}
