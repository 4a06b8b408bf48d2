package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tandoor-ordering/checkout-svc/internal/domain"
	"tandoor-ordering/checkout-svc/internal/service"
)

const atLayout = "2006-01-02 15:04"

// hoursFile is the same shape get-restaurant-hours returns, so a saved
// backend response (JSON) or a hand-written YAML file both load.
type hoursFile struct {
	Hours    domain.WeekHours      `yaml:"hours"`
	Ordering domain.OrderingPolicy `yaml:"ordering"`
}

func newSlotsCmd() *cobra.Command {
	var (
		hoursPath string
		at        string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Compute the pickup window for a schedule at a given restaurant time",
		Example: `  checkoutctl slots --hours hours.yaml
  checkoutctl slots --hours hours.json --at "2026-10-19 21:20" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			hours, policy, err := readHours(hoursPath)
			if err != nil {
				return err
			}

			now := time.Now().In(settings.Location)
			if at != "" {
				now, err = time.ParseInLocation(atLayout, at, settings.Location)
				if err != nil {
					return fmt.Errorf("invalid --at %q: want %q", at, atLayout)
				}
			}

			result := service.ComputeSlots(hours, policy, now)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printSlots(cmd.OutOrStdout(), now, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&hoursPath, "hours", "", "weekly hours and ordering policy (YAML or JSON)")
	cmd.Flags().StringVar(&at, "at", "", "restaurant wall-clock time, "+atLayout+" (default now)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	cmd.MarkFlagRequired("hours")
	return cmd
}

func readHours(path string) (domain.WeekHours, domain.OrderingPolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.OrderingPolicy{}, fmt.Errorf("read hours: %w", err)
	}
	var file hoursFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, domain.OrderingPolicy{}, fmt.Errorf("parse hours: %w", err)
	}
	if err := file.Hours.Validate(); err != nil {
		return nil, domain.OrderingPolicy{}, err
	}
	if err := file.Ordering.Validate(); err != nil {
		return nil, domain.OrderingPolicy{}, err
	}
	return file.Hours, file.Ordering, nil
}

func printSlots(w io.Writer, now time.Time, result domain.SlotResult) {
	fmt.Fprintf(w, "at %s: %s\n", now.Format("Mon 2006-01-02 15:04"), result.Kind)

	switch result.Kind {
	case domain.SlotKindClosed:
		fmt.Fprintf(w, "reason: %s\n", result.Reason)
		if result.NextOpenDay != "" {
			fmt.Fprintf(w, "next open: %s at %s\n", result.NextOpenDay, result.NextOpenAt)
		}
	case domain.SlotKindKitchenClosed:
		fmt.Fprintf(w, "opens %s at %s\n", result.OpensOn, result.OpensAt)
	default:
		if !result.OpenNow && result.OpensAt != "" {
			fmt.Fprintf(w, "opens at %s\n", result.OpensAt)
		}
		for _, slot := range result.Slots {
			fmt.Fprintf(w, "  %-6s %s\n", slot.Value, slot.Label)
		}
	}
}
