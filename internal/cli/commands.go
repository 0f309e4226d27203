package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spec-kit/employee-dashboard/internal/analytics"
	"github.com/spec-kit/employee-dashboard/internal/api/dto"
	"github.com/spec-kit/employee-dashboard/internal/domain"
	"github.com/spec-kit/employee-dashboard/internal/export"
)

func newListCmd(opts *Options) *cobra.Command {
	var (
		query      string
		department string
		rating     int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria := domain.Criteria{SearchText: strings.TrimSpace(query)}
			if department != "" && !strings.EqualFold(department, "all") {
				dept, ok := domain.ParseDepartment(department)
				if !ok {
					return fmt.Errorf("unknown department %q", department)
				}
				criteria.Department = &dept
			}
			if rating < 0 || rating > domain.MaxRating {
				return fmt.Errorf("rating must be between 0 and %d", domain.MaxRating)
			}
			criteria.Rating = rating

			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			employees := store.List(criteria)

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				return writeJSON(out, dto.Employees(employees, nil))
			}
			if len(employees) == 0 {
				_, err := fmt.Fprintln(out, "No employees match the current filters.")
				return err
			}
			rows := make([][]string, 0, len(employees))
			for _, e := range employees {
				rows = append(rows, []string{
					strconv.Itoa(e.ID), e.Name, e.Email, string(e.Department), e.Role, formatRating(e.Rating),
				})
			}
			return renderTable(out, []string{"ID", "Name", "Email", "Department", "Role", "Rating"}, rows)
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "Search name, email or department")
	cmd.Flags().StringVar(&department, "department", "", "Filter by department")
	cmd.Flags().IntVar(&rating, "rating", 0, "Filter by exact rating (1-5)")
	return cmd
}

func newStatsCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show roster statistics and the department rollup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			stats := store.Statistics()
			departments := analytics.ByDepartment(store.All(), nil)

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				return writeJSON(out, map[string]interface{}{
					"statistics": dto.StatisticsResponse{
						TotalCount:         stats.TotalCount,
						AverageRating:      stats.AverageRating,
						HighPerformerCount: stats.HighPerformerCount,
					},
					"departments": dto.Departments(departments),
				})
			}

			if _, err := fmt.Fprintf(out, "Total employees: %d\nAverage rating: %.1f\nHigh performers: %d\n",
				stats.TotalCount, stats.AverageRating, stats.HighPerformerCount); err != nil {
				return err
			}
			rows := make([][]string, 0, len(departments))
			for _, d := range departments {
				rows = append(rows, []string{
					string(d.Department),
					strconv.Itoa(d.Employees),
					strconv.FormatFloat(analytics.RoundTenth(d.AverageRating), 'f', 1, 64),
				})
			}
			return renderTable(out, []string{"Department", "Employees", "Avg Rating"}, rows)
		},
	}
}

func newDetailCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "detail <id>",
		Short: "Show the drill-down view for one employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid employee id %q", args[0])
			}
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			detail, err := store.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.JSONOutput {
				return writeJSON(out, dto.EmployeeDetail(detail, nil))
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%s (#%d)\n", detail.Name, detail.ID)
			fmt.Fprintf(&b, "%s, %s\n", detail.Role, detail.Department)
			fmt.Fprintf(&b, "Email: %s\nPhone: %s\nAge: %d\nAddress: %s\n", detail.Email, detail.Phone, detail.Age, detail.Address)
			fmt.Fprintf(&b, "Rating: %s\nBio: %s\n", formatRating(detail.Rating), detail.Bio)
			b.WriteString("\nPerformance history:\n")
			for _, p := range detail.PerformanceHistory {
				fmt.Fprintf(&b, "  %s\n", p)
			}
			b.WriteString("\nProjects:\n")
			for _, p := range detail.Projects {
				fmt.Fprintf(&b, "  - %s\n", p)
			}
			b.WriteString("\nFeedback:\n")
			for _, f := range detail.Feedback {
				fmt.Fprintf(&b, "  - %s\n", f)
			}
			_, err = fmt.Fprint(out, b.String())
			return err
		},
	}
}

func newExportCmd(opts *Options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the roster and department rollup to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			roster := store.All()
			data, err := export.Workbook(roster, analytics.ByDepartment(roster, nil), nil)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d employees to %s\n", len(roster), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "employees.xlsx", "Destination file")
	return cmd
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64) + "/5"
}
