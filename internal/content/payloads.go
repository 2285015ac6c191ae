package content

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/Joe-Costa/ClusterPopulator/internal/rng"
)

func textPayload(kind string, r *rand.Rand) []byte {
	var b strings.Builder
	switch kind {
	case "memo":
		fmt.Fprintf(&b, "MEMORANDUM\n\n")
		fmt.Fprintf(&b, "TO: %s\n", fullName(r))
		fmt.Fprintf(&b, "FROM: %s\n", fullName(r))
		fmt.Fprintf(&b, "DATE: %s\n", isoDate(r))
		fmt.Fprintf(&b, "SUBJECT: %s\n\n", catchphrase(r))
		b.WriteString(paragraphs(r, 3))
		b.WriteString("\n")
	case "notes":
		fmt.Fprintf(&b, "Meeting: %s\n", catchphrase(r))
		fmt.Fprintf(&b, "Date: %s\n\nAttendees:\n", isoDate(r))
		attendees := 3 + r.IntN(5)
		for i := 0; i < attendees; i++ {
			fmt.Fprintf(&b, "- %s\n", fullName(r))
		}
		b.WriteString("\nAgenda:\n")
		for i, n := 0, 3+r.IntN(3); i < n; i++ {
			fmt.Fprintf(&b, "- %s\n", sentence(r))
		}
		fmt.Fprintf(&b, "\nNotes:\n%s\n", paragraphs(r, 2))
	case "log":
		b.WriteString(logLines(r, 50))
	default:
		b.WriteString(paragraphs(r, 5))
		b.WriteString("\n")
	}
	return []byte(b.String())
}

var logLevels = []string{"INFO", "DEBUG", "WARNING", "ERROR"}
var logLevelWeights = []int{60, 20, 15, 5}
var logSources = []string{"app", "database", "network", "auth", "api"}

func logLines(r *rand.Rand, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		level := logLevels[rng.WeightedIndex(r, logLevelWeights)]
		fmt.Fprintf(&b, "[%sT%02d:%02d:%02d] [%s] [%s] %s\n",
			isoDate(r), r.IntN(24), r.IntN(60), r.IntN(60),
			level, logSources[r.IntN(len(logSources))], sentence(r))
	}
	return b.String()
}

func jsonPayload(kind string, r *rand.Rand) []byte {
	var data any
	switch kind {
	case "invoice":
		data = invoiceData(r)
	case "employee":
		data = employeeData(r)
	case "log":
		entries := make([]map[string]any, 0, 30)
		for i := 0; i < 30; i++ {
			entries = append(entries, map[string]any{
				"timestamp": isoDate(r),
				"level":     logLevels[rng.WeightedIndex(r, logLevelWeights)],
				"source":    logSources[r.IntN(len(logSources))],
				"message":   sentence(r),
			})
		}
		data = map[string]any{"entries": entries}
	case "project":
		data = projectData(r)
	default: // config
		data = map[string]any{
			"version":     "1.0.0",
			"environment": "production",
			"settings": map[string]any{
				"debug":           false,
				"log_level":       "INFO",
				"max_connections": 100,
				"timeout_seconds": 30,
			},
			"features": map[string]any{
				"enable_cache":     true,
				"enable_analytics": true,
				"maintenance_mode": false,
			},
		}
	}
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return []byte("{}")
	}
	return append(out, '\n')
}

func invoiceData(r *rand.Rand) map[string]any {
	items := make([]map[string]any, 0, 8)
	subtotal := 0.0
	for i, n := 0, 2+r.IntN(7); i < n; i++ {
		qty := 1 + r.IntN(100)
		price := money(r, 10, 500)
		total := float64(qty) * price
		subtotal += total
		items = append(items, map[string]any{
			"description": catchphrase(r),
			"quantity":    qty,
			"unit_price":  price,
			"total":       total,
		})
	}
	tax := float64(int(subtotal*8)) / 100
	return map[string]any{
		"invoice_number": "INV-" + shortID(r),
		"date":           isoDate(r),
		"due_date":       isoDate(r),
		"vendor":         map[string]any{"name": company(r), "contact": fullName(r)},
		"customer":       map[string]any{"name": company(r), "contact": fullName(r)},
		"items":          items,
		"subtotal":       subtotal,
		"tax":            tax,
		"total":          subtotal + tax,
	}
}

func employeeData(r *rand.Rand) map[string]any {
	name := fullName(r)
	return map[string]any{
		"employee_id": "EMP-" + shortID(r),
		"name":        name,
		"email":       strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		"department":  departmentLabel(r),
		"title":       jobTitle(r),
		"hire_date":   isoDate(r),
		"salary":      money(r, 45000, 180000),
	}
}

func projectData(r *rand.Rand) map[string]any {
	members := make([]string, 0, 10)
	for i, n := 0, 3+r.IntN(7); i < n; i++ {
		members = append(members, fullName(r))
	}
	return map[string]any{
		"project_id":   "PRJ-" + shortID(r),
		"name":         catchphrase(r),
		"description":  paragraphs(r, 1),
		"status":       []string{"Planning", "In Progress", "On Hold", "Completed"}[r.IntN(4)],
		"start_date":   isoDate(r),
		"target_date":  isoDate(r),
		"budget":       money(r, 10000, 500000),
		"manager":      fullName(r),
		"team_members": members,
	}
}

func csvPayload(kind string, r *rand.Rand) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	switch kind {
	case "employees":
		w.Write([]string{"Employee ID", "Name", "Email", "Department", "Title", "Hire Date", "Salary"})
		for i := 0; i < 50; i++ {
			name := fullName(r)
			w.Write([]string{
				"EMP-" + shortID(r),
				name,
				strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
				departmentLabel(r),
				jobTitle(r),
				isoDate(r),
				fmt.Sprintf("%.2f", money(r, 45000, 180000)),
			})
		}
	case "invoices":
		w.Write([]string{"Invoice", "Date", "Customer", "Amount", "Status"})
		for i := 0; i < 30; i++ {
			status := "Pending"
			if r.IntN(2) == 0 {
				status = "Paid"
			}
			w.Write([]string{
				"INV-" + shortID(r),
				isoDate(r),
				company(r),
				fmt.Sprintf("%.2f", money(r, 100, 20000)),
				status,
			})
		}
	default: // data
		cols := 6
		header := make([]string, cols)
		for i := range header {
			header[i] = fmt.Sprintf("Field_%d", i+1)
		}
		w.Write(header)
		for i := 0; i < 30; i++ {
			row := make([]string, cols)
			for j := range row {
				switch r.IntN(4) {
				case 0:
					row[j] = sentence(r)
				case 1:
					row[j] = fmt.Sprintf("%d", 1+r.IntN(1000))
				case 2:
					row[j] = isoDate(r)
				default:
					row[j] = fmt.Sprintf("%.2f", money(r, 10, 10000))
				}
			}
			w.Write(row)
		}
	}
	w.Flush()
	return buf.Bytes()
}

func markdownPayload(kind string, r *rand.Rand) []byte {
	var b strings.Builder
	switch kind {
	case "project":
		p := projectData(r)
		fmt.Fprintf(&b, "# %s\n\n", p["name"])
		fmt.Fprintf(&b, "- **Status**: %s\n", p["status"])
		fmt.Fprintf(&b, "- **Manager**: %s\n", p["manager"])
		fmt.Fprintf(&b, "- **Start**: %s\n", p["start_date"])
		fmt.Fprintf(&b, "- **Target**: %s\n\n", p["target_date"])
		fmt.Fprintf(&b, "## Overview\n\n%s\n", paragraphs(r, 2))
	default: // notes
		fmt.Fprintf(&b, "# %s\n\n", catchphrase(r))
		fmt.Fprintf(&b, "_%s_\n\n", isoDate(r))
		for i, n := 0, 3+r.IntN(3); i < n; i++ {
			fmt.Fprintf(&b, "- %s\n", sentence(r))
		}
		fmt.Fprintf(&b, "\n%s\n", paragraphs(r, 2))
	}
	return []byte(b.String())
}

func htmlPayload(_ string, r *rand.Rand) []byte {
	title := catchphrase(r)
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n</head>\n<body>\n", title)
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", title)
	fmt.Fprintf(&b, "  <p class=\"meta\">%s &mdash; %s</p>\n", company(r), isoDate(r))
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "  <p>%s</p>\n", paragraphs(r, 1))
	}
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

func xmlPayload(kind string, r *rand.Rand) []byte {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	switch kind {
	case "data":
		b.WriteString("<records>\n")
		for i := 0; i < 20; i++ {
			fmt.Fprintf(&b, "  <record id=\"%d\">\n", i+1)
			fmt.Fprintf(&b, "    <name>%s</name>\n", fullName(r))
			fmt.Fprintf(&b, "    <value>%.2f</value>\n", money(r, 10, 10000))
			fmt.Fprintf(&b, "    <date>%s</date>\n", isoDate(r))
			b.WriteString("  </record>\n")
		}
		b.WriteString("</records>\n")
	default: // config
		b.WriteString("<configuration>\n")
		fmt.Fprintf(&b, "  <environment>production</environment>\n")
		fmt.Fprintf(&b, "  <logLevel>INFO</logLevel>\n")
		fmt.Fprintf(&b, "  <maxConnections>%d</maxConnections>\n", 50+r.IntN(200))
		fmt.Fprintf(&b, "  <timeoutSeconds>%d</timeoutSeconds>\n", 10+r.IntN(50))
		b.WriteString("</configuration>\n")
	}
	return []byte(b.String())
}

// documentPayload renders structured plain-text stand-ins for office and PDF
// formats. Extension appropriateness is the contract here, not file-format
// validity.
func documentPayload(_, kind string, r *rand.Rand) []byte {
	var b strings.Builder
	switch kind {
	case "policy":
		fmt.Fprintf(&b, "%s POLICY\n\n", strings.ToUpper(catchphrase(r)))
		fmt.Fprintf(&b, "Effective Date: %s\nVersion: %d.%d\nApproved By: %s\n\n",
			isoDate(r), 1+r.IntN(5), r.IntN(10), fullName(r))
		for i, n := 0, 4+r.IntN(4); i < n; i++ {
			fmt.Fprintf(&b, "%d. %s\n\n%s\n\n", i+1, catchphrase(r), paragraphs(r, 2))
		}
	case "contract":
		fmt.Fprintf(&b, "%s AGREEMENT\n\n", strings.ToUpper(catchphrase(r)))
		fmt.Fprintf(&b, "Contract ID: CTR-%s\n\n", shortID(r))
		fmt.Fprintf(&b, "This agreement is entered into between %s (Party A) and %s (Party B).\n\n",
			company(r), company(r))
		fmt.Fprintf(&b, "Effective Date: %s\nContract Value: $%.2f\n\n", isoDate(r), money(r, 5000, 1000000))
		fmt.Fprintf(&b, "Terms and Conditions\n\n%s\n", paragraphs(r, 4))
	case "report", "financial":
		revenue := money(r, 100000, 10000000)
		expenses := float64(int(revenue*(0.5+r.Float64()*0.4)*100)) / 100
		fmt.Fprintf(&b, "FINANCIAL REPORT - Q%d %d\n\n", 1+r.IntN(4), 2023+r.IntN(3))
		fmt.Fprintf(&b, "Revenue: $%.2f\nExpenses: $%.2f\nNet Income: $%.2f\n\n",
			revenue, expenses, revenue-expenses)
		fmt.Fprintf(&b, "Summary\n\n%s\n", paragraphs(r, 3))
	case "presentation":
		fmt.Fprintf(&b, "%s\n%s\n\n", catchphrase(r), company(r))
		for i, n := 0, 6+r.IntN(4); i < n; i++ {
			fmt.Fprintf(&b, "--- Slide %d: %s ---\n", i+2, catchphrase(r))
			for j, m := 0, 3+r.IntN(3); j < m; j++ {
				fmt.Fprintf(&b, "* %s\n", sentence(r))
			}
			b.WriteString("\n")
		}
	case "invoice":
		out, _ := json.MarshalIndent(invoiceData(r), "", "  ")
		fmt.Fprintf(&b, "INVOICE\n\n%s\n", out)
	case "employees", "data":
		b.Write(csvPayload(kind, r))
	default: // memo and anything unmapped
		b.Write(textPayload("memo", r))
	}
	return []byte(b.String())
}

var departmentLabels = []string{
	"Finance", "Human Resources", "Marketing", "Sales",
	"Operations", "IT", "Legal", "Executive",
}

func departmentLabel(r *rand.Rand) string {
	return departmentLabels[r.IntN(len(departmentLabels))]
}
