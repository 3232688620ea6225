package dataset

import (
	"time"

	"github.com/vendordesk/vendordesk/app/models"
)

// seedSampleData loads the demonstration dataset every fresh session starts
// from. Dates are anchored to the current day so the expiry buckets and
// dashboard alerts always have something to show.
func (s *Store) seedSampleData() {
	days := func(n int) time.Time {
		return time.Now().AddDate(0, 0, n).Truncate(24 * time.Hour)
	}

	vendors := []models.Vendor{
		{Name: "DataAnnotation Pro", ContactName: "Sarah Johnson", ContactEmail: "sarah.j@dataannotation.com", Location: "San Francisco, CA", VendorType: "Data Annotation", Status: models.VendorStatusActive, OnboardingStage: "Completed", DateAdded: days(-300), PrimaryServices: "Human feedback collection"},
		{Name: "CloudScale Solutions", ContactName: "Michael Chen", ContactEmail: "mchen@cloudscale.com", Location: "Austin, TX", VendorType: "Infrastructure", Status: models.VendorStatusActive, OnboardingStage: "Completed", DateAdded: days(-260), PrimaryServices: "Cloud infrastructure"},
		{Name: "TechVendor Inc", ContactName: "Emily Rodriguez", ContactEmail: "emily.r@techvendor.com", Location: "New York, NY", VendorType: "Software", Status: models.VendorStatusOnboarding, OnboardingStage: "Access Provisioning", DateAdded: days(-12), PrimaryServices: "Project management tools"},
		{Name: "AI Training Partners", ContactName: "David Kim", ContactEmail: "dkim@aitraining.com", Location: "Seattle, WA", VendorType: "Software", Status: models.VendorStatusActive, OnboardingStage: "Completed", DateAdded: days(-245), PrimaryServices: "Dataset labeling"},
		{Name: "Quality Data Services", ContactName: "Jessica Williams", ContactEmail: "jwilliams@qualitydata.com", Location: "Remote (US)", VendorType: "Infrastructure", Status: models.VendorStatusActive, OnboardingStage: "Completed", DateAdded: days(-180), PrimaryServices: "Quality assurance"},
		{Name: "Rapid Response Team", ContactName: "Robert Taylor", ContactEmail: "rtaylor@rapidresponse.com", Location: "Denver, CO", VendorType: "Support Services", Status: models.VendorStatusOnboarding, OnboardingStage: "Contract Review", DateAdded: days(-15), PrimaryServices: "Administrative support"},
		{Name: "Global Workforce Co", ContactName: "Amanda Martinez", ContactEmail: "amartinez@globalworkforce.com", Location: "Remote (Global)", VendorType: "Staffing", Status: models.VendorStatusActive, OnboardingStage: "Completed", DateAdded: days(-160), PrimaryServices: "Contract staffing"},
		{Name: "Precision Labels Ltd", ContactName: "Chris Anderson", ContactEmail: "canderson@precisionlabels.com", Location: "Boston, MA", VendorType: "Software", Status: models.VendorStatusInactive, OnboardingStage: "N/A", DateAdded: days(-370), PrimaryServices: "Image annotation"},
	}
	for _, v := range vendors {
		s.InsertVendor(v)
	}

	contracts := []models.Contract{
		{VendorID: 1, ContractName: "Annotation Master Agreement", ContractType: "MSA", StartDate: days(-300), EndDate: days(65), ContractValue: 250000, PONumber: "PO-2024-001", Status: models.ContractStatusActive, RenewalNoticeDays: 60},
		{VendorID: 2, ContractName: "Infrastructure SOW Phase 2", ContractType: "SOW", StartDate: days(-260), EndDate: days(51), ContractValue: 120000, PONumber: "PO-2024-015", Status: models.ContractStatusActive, RenewalNoticeDays: 30},
		{VendorID: 3, ContractName: "Tooling License Agreement", ContractType: "MSA", StartDate: days(-10), EndDate: days(355), ContractValue: 85000, PONumber: "PO-2024-089", Status: models.ContractStatusInReview, RenewalNoticeDays: 90},
		{VendorID: 4, ContractName: "Labeling Services Agreement", ContractType: "MSA", StartDate: days(-245), EndDate: days(120), ContractValue: 180000, PONumber: "PO-2024-023", Status: models.ContractStatusActive, RenewalNoticeDays: 60},
		{VendorID: 5, ContractName: "QA Statement of Work", ContractType: "SOW", StartDate: days(-180), EndDate: days(20), ContractValue: 45000, PONumber: "PO-2024-047", Status: models.ContractStatusActive, RenewalNoticeDays: 30},
		{VendorID: 7, ContractName: "Staffing Master Agreement", ContractType: "MSA", StartDate: days(-160), EndDate: days(202), ContractValue: 200000, PONumber: "PO-2024-055", Status: models.ContractStatusActive, RenewalNoticeDays: 60},
		{VendorID: 8, ContractName: "Legacy Annotation Contract", ContractType: "MSA", StartDate: days(-370), EndDate: days(-6), ContractValue: 95000, PONumber: "PO-2023-142", Status: models.ContractStatusExpired, RenewalNoticeDays: 0},
	}
	for _, c := range contracts {
		s.InsertContract(c)
	}

	projects := []models.Project{
		{Name: "Q4 Dataset Annotation", VendorID: 1, Status: models.ProjectStatusInProgress, StartDate: days(-40), TargetEndDate: days(50), CompletionPct: 65, Budget: 150000, ProjectLead: "Internal Team A", Deliverables: "10,000 labeled samples, quality report"},
		{Name: "Infrastructure Migration", VendorID: 2, Status: models.ProjectStatusCompleted, StartDate: days(-85), TargetEndDate: days(-10), CompletionPct: 100, Budget: 120000, ProjectLead: "Internal Team B", Deliverables: "Complete cloud migration, documentation"},
		{Name: "Model Feedback Collection", VendorID: 4, Status: models.ProjectStatusInProgress, StartDate: days(-50), TargetEndDate: days(20), CompletionPct: 45, Budget: 95000, ProjectLead: "Internal Team A"},
		{Name: "Quality Audit Initiative", VendorID: 5, Status: models.ProjectStatusPlanning, StartDate: days(-5), TargetEndDate: days(35), CompletionPct: 10, Budget: 35000, ProjectLead: "Internal Team C"},
		{Name: "Emergency Support Coverage", VendorID: 6, Status: models.ProjectStatusCompleted, StartDate: days(-12), TargetEndDate: days(5), CompletionPct: 80, Budget: 25000, ProjectLead: "Internal Team B"},
		{Name: "Image Classification Project", VendorID: 8, Status: models.ProjectStatusInProgress, StartDate: days(-120), TargetEndDate: days(66), CompletionPct: 25, Budget: 85000, ProjectLead: "Internal Team A"},
	}
	for _, p := range projects {
		s.InsertProject(p)
	}

	tickets := []models.Ticket{
		{VendorID: 1, TicketType: "Access Request", Priority: models.TicketPriorityHigh, Status: models.TicketStatusInProgress, CreatedDate: days(-2), Description: "Need access to annotation platform"},
		{VendorID: 3, TicketType: "Tooling Setup", Priority: models.TicketPriorityMedium, Status: models.TicketStatusOpen, CreatedDate: days(-1), Description: "Setup project management tool access"},
		{VendorID: 4, TicketType: "Admin Support", Priority: models.TicketPriorityLow, Status: models.TicketStatusResolved, CreatedDate: days(-5), Description: "Update contact information"},
		{VendorID: 2, TicketType: "Technical Issue", Priority: models.TicketPriorityHigh, Status: models.TicketStatusInProgress, CreatedDate: days(-3), Description: "API integration not working"},
		{VendorID: 5, TicketType: "Document Request", Priority: models.TicketPriorityMedium, Status: models.TicketStatusResolved, CreatedDate: days(-6), Description: "Request W9 form"},
		{VendorID: 6, TicketType: "Access Request", Priority: models.TicketPriorityHigh, Status: models.TicketStatusOpen, CreatedDate: days(-1), Description: "VPN access for remote team"},
		{VendorID: 7, TicketType: "Contract Question", Priority: models.TicketPriorityLow, Status: models.TicketStatusResolved, CreatedDate: days(-9), Description: "Question about renewal terms"},
		{VendorID: 1, TicketType: "Payment Query", Priority: models.TicketPriorityMedium, Status: models.TicketStatusInProgress, CreatedDate: days(-2), Description: "Invoice processing delay"},
		{VendorID: 2, TicketType: "Tooling Setup", Priority: models.TicketPriorityHigh, Status: models.TicketStatusOpen, CreatedDate: days(0), Description: "New tool integration needed"},
		{VendorID: 4, TicketType: "Access Request", Priority: models.TicketPriorityMedium, Status: models.TicketStatusResolved, CreatedDate: days(-4), Description: "Quality metrics documentation"},
		{VendorID: 3, TicketType: "Technical Issue", Priority: models.TicketPriorityHigh, Status: models.TicketStatusInProgress, CreatedDate: days(-1), Description: "Connection timeout issues"},
		{VendorID: 5, TicketType: "Document Request", Priority: models.TicketPriorityLow, Status: models.TicketStatusOpen, CreatedDate: days(-7), Description: "Additional contract documents needed"},
	}
	for _, t := range tickets {
		s.InsertTicket(t)
	}
}
