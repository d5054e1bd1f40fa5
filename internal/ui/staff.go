package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotacli/rota/internal/shift"
)

func (a *App) staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List staff members",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			staff, err := store.ListStaff(context.Background())
			if err != nil {
				return fmt.Errorf("listing staff: %w", err)
			}

			if len(staff) == 0 {
				fmt.Println("No staff on file. Add one with `rota staff add`.")
				return nil
			}

			fmt.Println(formatHeader("ID  Name                  Role"))
			for _, m := range staff {
				fmt.Printf("%-3d %-21s %s\n", m.ID, m.Name, formatMuted(m.Role))
			}
			return nil
		},
	}

	cmd.AddCommand(a.staffAddCmd())
	return cmd
}

func (a *App) staffAddCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a staff member",
		Example: `  rota staff add "Dana Whitfield" --role=supervisor`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			m := &shift.StaffMember{Name: args[0], Role: role}
			if err := store.CreateStaff(context.Background(), m); err != nil {
				return fmt.Errorf("creating staff: %w", err)
			}

			fmt.Printf("Added staff #%d: %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role label, e.g. supervisor")
	return cmd
}
