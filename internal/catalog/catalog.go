// Package catalog holds the fixed department, extension, and content-kind
// tables that define the generated share layout. Other tooling keys demo
// assertions off these names, so the tables are contract: do not reorder or
// rename entries without versioning the layout.
package catalog

// ExtensionRule binds a file extension to the content kinds it may carry
// within one department. Extensions are kept in slices, not maps, so that
// iteration order is stable for seeded draws.
type ExtensionRule struct {
	Ext   string
	Kinds []string
}

// Department describes one top-level share folder.
type Department struct {
	Name       string
	Weight     int
	Subdirs    []string
	Prefixes   []string
	Extensions []ExtensionRule
}

// Departments is the fixed 8-department catalog, in canonical order.
var Departments = []Department{
	{
		Name:    "Finance",
		Weight:  15,
		Subdirs: []string{"Invoices", "Reports", "Budgets", "Tax", "Payroll", "Audits"},
		Prefixes: []string{
			"Invoice", "Budget", "Expense_Report", "Financial_Statement",
			"Quarterly_Report", "Annual_Report", "Balance_Sheet", "Cash_Flow",
			"Revenue_Analysis", "Cost_Analysis", "Forecast", "Audit_Report",
			"Tax_Return", "Payroll", "AP_Report", "AR_Report", "GL_Entry",
			"Bank_Reconciliation", "Variance_Report", "PnL_Statement",
		},
		Extensions: []ExtensionRule{
			{".xlsx", []string{"financial", "invoice", "data"}},
			{".pdf", []string{"report", "invoice"}},
			{".docx", []string{"report", "memo"}},
			{".csv", []string{"invoices", "data"}},
			{".json", []string{"invoice", "config"}},
		},
	},
	{
		Name:    "Human_Resources",
		Weight:  12,
		Subdirs: []string{"Policies", "Onboarding", "Payroll", "Training", "Recruiting", "Benefits"},
		Prefixes: []string{
			"Employee_Handbook", "Onboarding_Checklist", "Performance_Review",
			"Job_Description", "Offer_Letter", "Benefits_Summary", "Policy",
			"Training_Manual", "Attendance_Record", "Leave_Request", "Exit_Interview",
			"Compensation_Plan", "Org_Chart", "Recruitment_Plan", "Interview_Notes",
			"Background_Check", "Reference_Check", "Disciplinary_Action", "Promotion_Letter",
		},
		Extensions: []ExtensionRule{
			{".xlsx", []string{"employees", "data"}},
			{".pdf", []string{"policy", "memo"}},
			{".docx", []string{"policy", "contract", "memo"}},
			{".csv", []string{"employees", "data"}},
			{".json", []string{"employee", "config"}},
		},
	},
	{
		Name:    "Marketing",
		Weight:  15,
		Subdirs: []string{"Campaigns", "Collateral", "Analytics", "Brand", "Events", "Content"},
		Prefixes: []string{
			"Campaign_Brief", "Marketing_Plan", "Brand_Guidelines", "Social_Media_Calendar",
			"Content_Strategy", "SEO_Report", "Analytics_Report", "Press_Release",
			"Email_Template", "Newsletter", "Case_Study", "Customer_Survey",
			"Market_Research", "Competitor_Analysis", "Product_Launch", "Ad_Copy",
			"Media_Kit", "Event_Plan", "ROI_Analysis", "Audience_Insights",
		},
		Extensions: []ExtensionRule{
			{".xlsx", []string{"data", "financial"}},
			{".pdf", []string{"report", "memo"}},
			{".docx", []string{"memo", "policy"}},
			{".pptx", []string{"presentation"}},
			{".csv", []string{"data"}},
			{".json", []string{"config"}},
			{".html", []string{"report"}},
		},
	},
	{
		Name:    "Sales",
		Weight:  18,
		Subdirs: []string{"Proposals", "Contracts", "Pipeline", "Presentations", "Accounts", "Quotes"},
		Prefixes: []string{
			"Proposal", "Quote", "Contract", "Sales_Report", "Pipeline_Report",
			"Account_Plan", "Territory_Plan", "Commission_Report", "Forecast",
			"RFP_Response", "Pricing_Sheet", "Product_Catalog", "Customer_Profile",
			"Sales_Deck", "Competitive_Intel", "Win_Loss_Analysis", "Deal_Summary",
			"Partnership_Agreement", "Renewal_Notice", "Upsell_Opportunity",
		},
		Extensions: []ExtensionRule{
			{".xlsx", []string{"data", "financial"}},
			{".pdf", []string{"contract", "invoice", "report"}},
			{".docx", []string{"contract", "memo", "policy"}},
			{".pptx", []string{"presentation"}},
			{".csv", []string{"data"}},
			{".json", []string{"config"}},
		},
	},
	{
		Name:    "Operations",
		Weight:  12,
		Subdirs: []string{"Procedures", "Inventory", "Logistics", "Vendors", "Quality", "Safety"},
		Prefixes: []string{
			"SOP", "Process_Document", "Workflow", "Inventory_Report", "Shipping_Log",
			"Vendor_List", "Quality_Report", "Safety_Manual", "Maintenance_Schedule",
			"Equipment_List", "Facility_Plan", "Capacity_Plan", "Supply_Chain_Report",
			"Logistics_Plan", "Compliance_Checklist", "Incident_Report", "Audit_Checklist",
			"KPI_Dashboard", "Efficiency_Report", "Resource_Allocation",
		},
		Extensions: []ExtensionRule{
			{".xlsx", []string{"data", "employees"}},
			{".pdf", []string{"policy", "report"}},
			{".docx", []string{"policy", "memo"}},
			{".csv", []string{"data"}},
			{".json", []string{"config"}},
			{".xml", []string{"config", "data"}},
		},
	},
	{
		Name:    "Legal",
		Weight:  8,
		Subdirs: []string{"Contracts", "Compliance", "Agreements", "NDAs", "Litigation", "IP"},
		Prefixes: []string{
			"Contract", "NDA", "Terms_of_Service", "Privacy_Policy", "Compliance_Report",
			"Legal_Opinion", "Trademark_Filing", "Patent_Application", "Litigation_Summary",
			"Settlement_Agreement", "Lease_Agreement", "Employment_Agreement", "License_Agreement",
			"Vendor_Agreement", "Partnership_Agreement", "Amendment", "Addendum",
			"Power_of_Attorney", "Corporate_Resolution", "Due_Diligence",
		},
		Extensions: []ExtensionRule{
			{".pdf", []string{"contract", "policy"}},
			{".docx", []string{"contract", "policy", "memo"}},
			{".xlsx", []string{"data"}},
			{".json", []string{"config"}},
		},
	},
	{
		Name:    "IT",
		Weight:  12,
		Subdirs: []string{"Documentation", "Configurations", "Logs", "Projects", "Security", "Infrastructure"},
		Prefixes: []string{
			"System_Architecture", "Network_Diagram", "Security_Policy", "Backup_Plan",
			"Disaster_Recovery", "Change_Request", "Incident_Report", "Configuration",
			"API_Documentation", "User_Guide", "Admin_Guide", "Release_Notes",
			"Test_Plan", "Bug_Report", "Feature_Spec", "Database_Schema",
			"Deployment_Guide", "Runbook", "Monitoring_Report", "Access_Log",
		},
		Extensions: []ExtensionRule{
			{".json", []string{"config", "log"}},
			{".xml", []string{"config", "data"}},
			{".csv", []string{"data"}},
			{".md", []string{"notes", "project"}},
			{".txt", []string{"log", "notes"}},
			{".pdf", []string{"policy", "report"}},
			{".docx", []string{"policy", "memo"}},
			{".xlsx", []string{"data"}},
			{".html", []string{"report"}},
		},
	},
	{
		Name:    "Executive",
		Weight:  8,
		Subdirs: []string{"Strategy", "Board_Materials", "Memos", "Reports", "Investors", "Planning"},
		Prefixes: []string{
			"Board_Presentation", "Strategic_Plan", "Executive_Summary", "Quarterly_Review",
			"Annual_Report", "Investor_Update", "M&A_Analysis", "Due_Diligence",
			"Risk_Assessment", "Succession_Plan", "Corporate_Strategy", "Market_Analysis",
			"Competitive_Landscape", "Growth_Initiative", "Transformation_Plan", "KPI_Summary",
			"Stakeholder_Report", "Vision_Statement", "Mission_Update", "Leadership_Memo",
		},
		Extensions: []ExtensionRule{
			{".pptx", []string{"presentation"}},
			{".pdf", []string{"report", "memo"}},
			{".docx", []string{"report", "memo", "policy"}},
			{".xlsx", []string{"financial", "data"}},
		},
	},
}

// ExtensionWeights is the global frequency table applied when drawing an
// extension from a department's rule set.
var ExtensionWeights = map[string]int{
	".docx": 20,
	".xlsx": 20,
	".pdf":  25,
	".txt":  5,
	".json": 5,
	".csv":  8,
	".pptx": 8,
	".xml":  3,
	".html": 3,
	".md":   3,
}

// Years is the fixed range used for depth-3 year folders. A fixed range keeps
// identical seeds producing identical plans across calendar years.
var Years = []string{"2021", "2022", "2023", "2024", "2025"}

const defaultExtensionWeight = 5

// WeightFor returns the global weight for an extension.
func WeightFor(ext string) int {
	if w, ok := ExtensionWeights[ext]; ok {
		return w
	}
	return defaultExtensionWeight
}

// ByName returns the department with the given name.
func ByName(name string) (Department, bool) {
	for _, d := range Departments {
		if d.Name == name {
			return d, true
		}
	}
	return Department{}, false
}
