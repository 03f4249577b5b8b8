package model

type StepStatus string

const (
	StepStatusCompleted  StepStatus = "completed"
	StepStatusInProgress StepStatus = "in-progress"
	StepStatusPending    StepStatus = "pending"
)

type Step struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
}

// OnboardingSteps is the automation log shown for a guest being onboarded.
func OnboardingSteps() []Step {
	return []Step{
		{Name: "Welcome message prepared", Status: StepStatusCompleted},
		{Name: "Check-in instructions sent", Status: StepStatusCompleted},
		{Name: "Calendar updated", Status: StepStatusInProgress},
		{Name: "Smart lock code generated", Status: StepStatusPending},
		{Name: "House manual sent", Status: StepStatusPending},
	}
}

type ChecklistItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

func OffboardingChecklist() []ChecklistItem {
	return []ChecklistItem{
		{ID: "checkout", Label: "Checkout confirmation received"},
		{ID: "cleaning", Label: "Trigger cleaning workflow"},
		{ID: "review", Label: "Request guest review"},
		{ID: "calendar", Label: "Reset calendar availability"},
		{ID: "message", Label: "Send thank you message"},
	}
}
