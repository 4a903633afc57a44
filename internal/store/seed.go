package store

import (
	"time"

	"traction/internal/core"
)

// Record kind names used in events, persistence rows and log fields.
const (
	KindContact     = "contact"
	KindOpportunity = "opportunity"
	KindTask        = "task"
	KindAppointment = "appointment"
)

// SeedContacts returns the fixed demo contact book.
func SeedContacts() []core.Contact {
	return []core.Contact{
		{
			ID: 1, Name: "Sarah Johnson", Email: "sarah.johnson@techcorp.com",
			Phone: "+1 (555) 123-4567", Company: "TechCorp Solutions",
			Position: "CTO", Location: "San Francisco, CA",
			Status: core.StatusHot, LastContact: core.NewDate(2024, time.January, 15),
			Avatar: "SJ", Pinned: true,
		},
		{
			ID: 2, Name: "Michael Chen", Email: "michael.chen@innovate.io",
			Phone: "+1 (555) 234-5678", Company: "Innovate.io",
			Position: "VP of Engineering", Location: "Austin, TX",
			Status: core.StatusWarm, LastContact: core.NewDate(2024, time.January, 12),
			Avatar: "MC",
		},
		{
			ID: 3, Name: "Emily Rodriguez", Email: "emily.r@digitalfuture.com",
			Phone: "+1 (555) 345-6789", Company: "Digital Future Inc",
			Position: "Product Manager", Location: "New York, NY",
			Status: core.StatusCold, LastContact: core.NewDate(2024, time.January, 8),
			Avatar: "ER",
		},
		{
			ID: 4, Name: "David Kim", Email: "david.kim@startupx.com",
			Phone: "+1 (555) 456-7890", Company: "StartupX",
			Position: "Founder & CEO", Location: "Seattle, WA",
			Status: core.StatusHot, LastContact: core.NewDate(2024, time.January, 14),
			Avatar: "DK",
		},
	}
}

// SeedOpportunities returns the fixed demo pipeline.
func SeedOpportunities() []core.Opportunity {
	return []core.Opportunity{
		{
			ID: 1, Title: "Enterprise Software License", Company: "TechCorp Solutions",
			Contact: "Sarah Johnson", Value: core.Money{Cents: 50_000_00},
			Stage: core.StageNegotiation, Probability: 80,
			CloseDate:   core.NewDate(2024, time.February, 15),
			Description: "Annual software license renewal with potential for expansion",
		},
		{
			ID: 2, Title: "Cloud Migration Services", Company: "Innovate.io",
			Contact: "Michael Chen", Value: core.Money{Cents: 120_000_00},
			Stage: core.StageProposal, Probability: 60,
			CloseDate:   core.NewDate(2024, time.February, 28),
			Description: "Complete cloud infrastructure migration and optimization",
		},
		{
			ID: 3, Title: "Digital Transformation Consulting", Company: "Digital Future Inc",
			Contact: "Emily Rodriguez", Value: core.Money{Cents: 75_000_00},
			Stage: core.StageQualification, Probability: 40,
			CloseDate:   core.NewDate(2024, time.March, 10),
			Description: "Strategic consulting for digital transformation initiative",
		},
		{
			ID: 4, Title: "Custom Development Project", Company: "StartupX",
			Contact: "David Kim", Value: core.Money{Cents: 95_000_00},
			Stage: core.StageProspecting, Probability: 25,
			CloseDate:   core.NewDate(2024, time.March, 20),
			Description: "Custom application development with ongoing support",
		},
	}
}

// SeedTasks returns the fixed demo task list.
func SeedTasks() []core.Task {
	return []core.Task{
		{
			ID: 1, Title: "Follow-up call with Sarah Johnson",
			Description: "Discuss the enterprise software license renewal terms",
			Priority:    core.PriorityHigh, Status: core.TaskPending,
			DueDate:  core.NewDate(2024, time.January, 16),
			Assignee: "John Doe", RelatedTo: "TechCorp Solutions", Type: core.TaskTypeCall,
		},
		{
			ID: 2, Title: "Send proposal to Innovate.io",
			Description: "Cloud migration services proposal with detailed timeline",
			Priority:    core.PriorityUrgent, Status: core.TaskInProgress,
			DueDate:  core.NewDate(2024, time.January, 17),
			Assignee: "Jane Smith", RelatedTo: "Innovate.io", Type: core.TaskTypeEmail,
		},
		{
			ID: 3, Title: "Schedule demo meeting",
			Description: "Product demonstration for Digital Future Inc",
			Priority:    core.PriorityMedium, Status: core.TaskCompleted,
			DueDate:  core.NewDate(2024, time.January, 15),
			Assignee: "Mike Johnson", RelatedTo: "Digital Future Inc", Type: core.TaskTypeMeeting,
		},
		{
			ID: 4, Title: "Contract review reminder",
			Description: "Review and update contract terms for StartupX deal",
			Priority:    core.PriorityMedium, Status: core.TaskPending,
			DueDate:  core.NewDate(2024, time.January, 18),
			Assignee: "Sarah Wilson", RelatedTo: "StartupX", Type: core.TaskTypeOther,
		},
		{
			ID: 5, Title: "Quarterly business review prep",
			Description: "Prepare presentation materials for QBR with key accounts",
			Priority:    core.PriorityLow, Status: core.TaskPending,
			DueDate:  core.NewDate(2024, time.January, 22),
			Assignee: "John Doe", RelatedTo: "Multiple Accounts", Type: core.TaskTypeOther,
		},
	}
}

// SeedAppointments returns the fixed demo schedule.
func SeedAppointments() []core.Appointment {
	return []core.Appointment{
		{
			ID: 1, Title: "Product Demo with TechCorp",
			Description: "Demonstrate our enterprise software solution",
			Date:        core.NewDate(2024, time.January, 16), Time: "10:00", Duration: 60,
			Type: core.AppointmentVideo, Attendees: []string{"Sarah Johnson", "Mike Wilson"},
			Location: "Zoom Meeting", Status: core.AppointmentConfirmed,
			RelatedTo: "TechCorp Solutions",
		},
		{
			ID: 2, Title: "Contract Negotiation Call",
			Description: "Discuss terms and pricing for cloud migration project",
			Date:        core.NewDate(2024, time.January, 17), Time: "14:30", Duration: 45,
			Type: core.AppointmentCall, Attendees: []string{"Michael Chen"},
			Status:    core.AppointmentScheduled,
			RelatedTo: "Innovate.io",
		},
		{
			ID: 3, Title: "Quarterly Business Review",
			Description: "Review performance and discuss future opportunities",
			Date:        core.NewDate(2024, time.January, 18), Time: "09:00", Duration: 120,
			Type: core.AppointmentMeeting, Attendees: []string{"Emily Rodriguez", "John Smith", "Lisa Brown"},
			Location: "Conference Room A", Status: core.AppointmentConfirmed,
			RelatedTo: "Digital Future Inc",
		},
		{
			ID: 4, Title: "Follow-up Meeting",
			Description: "Follow up on proposal and next steps",
			Date:        core.NewDate(2024, time.January, 19), Time: "11:00", Duration: 30,
			Type: core.AppointmentVideo, Attendees: []string{"David Kim"},
			Location: "Google Meet", Status: core.AppointmentScheduled,
			RelatedTo: "StartupX",
		},
	}
}
