package usecase

import (
	"time"

	"mailagent-backend/internal/email/domain"
)

func strp(s string) *string { return &s }

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// mockInbox is the canned starter inbox loaded for users with no email
// records yet.
var mockInbox = []domain.Email{
	{
		Sender:    "project.manager@company.com",
		Subject:   "Q4 Project Review Meeting",
		Body:      "Hi team,\n\nWe need to schedule the Q4 project review meeting for next week. Please review the attached project report and come prepared to discuss:\n\n1. Project milestones achieved\n2. Budget utilization\n3. Resource allocation for Q1\n4. Risk assessment\n\nLet me know your availability for Tuesday or Wednesday.\n\nBest regards,\nSarah Chen\nProject Manager",
		Timestamp: ts("2024-01-08T10:30:00Z"),
		Category:  "Important",
		Priority:  "high",
		ActionItems: domain.ActionItems{
			{Task: "Review project report", Deadline: strp("2024-01-12"), Priority: "high"},
			{Task: "Prepare milestone updates", Deadline: strp("2024-01-12"), Priority: "medium"},
		},
		Summary:  "Meeting request for Q4 project review with attached report",
		Metadata: domain.Metadata{"type": "meeting_request", "duration": "2 hours"},
	},
	{
		Sender:    "newsletter@techdaily.com",
		Subject:   "Tech Daily: AI Trends in 2024",
		Body:      "Welcome to this week's Tech Daily newsletter!\n\nFeatured Articles:\n- The Rise of Multimodal AI Systems\n- Quantum Computing Breakthroughs\n- Sustainable Tech Innovations\n- Developer Tools of the Year\n\nRead more: https://techdaily.com/ai-trends-2024\n\nUnsubscribe: https://techdaily.com/unsubscribe",
		Timestamp: ts("2024-01-08T08:15:00Z"),
		Category:  "Newsletter",
		Priority:  "low",
		IsRead:    true,
		Summary:   "Weekly tech newsletter featuring AI trends and developments",
		Metadata:  domain.Metadata{"type": "newsletter", "frequency": "weekly"},
	},
	{
		Sender:    "hr@company.com",
		Subject:   "ACTION REQUIRED: Benefits Enrollment Deadline",
		Body:      "Dear Employee,\n\nThis is a reminder that the benefits enrollment period closes this Friday, January 12th, 2024 at 5:00 PM.\n\nYou must:\n1. Review your benefit selections\n2. Update dependent information if needed\n3. Submit your enrollment form\n\nPlease complete this by the deadline to avoid interruption in your benefits coverage.\n\nHR Department",
		Timestamp: ts("2024-01-08T09:45:00Z"),
		Category:  "To-Do",
		Priority:  "high",
		ActionItems: domain.ActionItems{
			{Task: "Complete benefits enrollment", Deadline: strp("2024-01-12"), Priority: "high"},
		},
		Summary:  "Benefits enrollment reminder with Friday deadline",
		Metadata: domain.Metadata{"type": "task_request", "action_required": true},
	},
	{
		Sender:    "noreply@security-alert.com",
		Subject:   "URGENT: Your Account Has Been Compromised",
		Body:      "SECURITY ALERT: We detected suspicious activity on your account.\n\nClick here immediately to verify your identity and secure your account:\nhttp://fake-security-site.com/verify\n\nIf you don't act within 24 hours, your account will be suspended.\n\nThis is an automated message. Do not reply.",
		Timestamp: ts("2024-01-08T07:20:00Z"),
		Category:  "Spam",
		Priority:  "low",
		Summary:   "Suspicious security alert email - likely phishing attempt",
		Metadata:  domain.Metadata{"type": "spam", "suspicious": true},
	},
	{
		Sender:    "dev-team@project.com",
		Subject:   "Code Review Request: Feature/Auth-Integration",
		Body:      "Hello team,\n\nI've completed work on the authentication integration feature and have opened a pull request.\n\nKey changes:\n- Implemented OAuth2 flow\n- Added multi-factor authentication\n- Updated user session management\n- Enhanced security middleware\n\nPlease review the PR: https://github.com/company/repo/pull/142\n\nI need this reviewed by EOD tomorrow for the sprint deadline.\n\nThanks,\nAlex Rodriguez\nSenior Developer",
		Timestamp: ts("2024-01-07T14:20:00Z"),
		Category:  "To-Do",
		Priority:  "medium",
		ActionItems: domain.ActionItems{
			{Task: "Review authentication feature code", Deadline: strp("2024-01-09"), Priority: "medium"},
		},
		Summary:  "Code review request for authentication integration feature",
		Metadata: domain.Metadata{"type": "technical", "deadline": "2024-01-09"},
	},
	{
		Sender:    "recruiting@techcorp.com",
		Subject:   "Interview Invitation: Senior Developer Position",
		Body:      "Dear Candidate,\n\nThank you for your application for the Senior Developer position at TechCorp.\n\nWe were impressed with your background and would like to invite you for a technical interview.\n\nDate: January 15, 2024\nTime: 2:00 PM EST\nFormat: Video Call (Zoom link will be sent)\nDuration: 60 minutes\n\nPlease confirm your availability by replying to this email.\n\nBest regards,\nRecruiting Team\nTechCorp",
		Timestamp: ts("2024-01-06T15:20:00Z"),
		Category:  "Important",
		Priority:  "high",
		ActionItems: domain.ActionItems{
			{Task: "Confirm interview availability", Deadline: strp("2024-01-08"), Priority: "high"},
			{Task: "Prepare for technical interview", Deadline: strp("2024-01-15"), Priority: "medium"},
		},
		Summary:  "Interview invitation for Senior Developer position",
		Metadata: domain.Metadata{"type": "recruiting", "interview_date": "2024-01-15"},
	},
	{
		Sender:    "invoice@supplier.com",
		Subject:   "Invoice #INV-2024-001 - Payment Due",
		Body:      "INVOICE\n\nInvoice Number: INV-2024-001\nDate: January 5, 2024\nDue Date: January 19, 2024\nAmount Due: $4,250.00\n\nServices Rendered:\n- Monthly software license: $3,500.00\n- Technical support: $750.00\n\nPlease process payment by the due date.\n\nThank you for your business!\n\nAccounting Department\nGlobal Supplier Inc.",
		Timestamp: ts("2024-01-07T11:15:00Z"),
		Category:  "To-Do",
		Priority:  "medium",
		ActionItems: domain.ActionItems{
			{Task: "Process invoice payment", Deadline: strp("2024-01-19"), Priority: "medium"},
		},
		Summary:  "Invoice for software license and technical support services",
		Metadata: domain.Metadata{"type": "financial", "amount": 4250.00},
	},
	{
		Sender:    "colleague@company.com",
		Subject:   "Lunch Meeting Tomorrow?",
		Body:      "Hey!\n\nAre you free for lunch tomorrow around 12:30? I wanted to discuss the new marketing campaign and get your thoughts on the creative direction.\n\nThere's that new Italian place that just opened near the office - want to try it?\n\nLet me know!\n\nCheers,\nMike",
		Timestamp: ts("2024-01-08T11:10:00Z"),
		Category:  "Personal",
		Priority:  "low",
		IsRead:    true,
		ActionItems: domain.ActionItems{
			{Task: "Respond to lunch invitation", Deadline: strp("2024-01-09"), Priority: "low"},
		},
		Summary:  "Informal lunch invitation from colleague",
		Metadata: domain.Metadata{"type": "personal", "informal": true},
	},
}
